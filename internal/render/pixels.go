package render

import "image/color"

// BitAlive reports whether bit i is set in the packed cell words.
func BitAlive(words []uint64, i int) bool {
	return words[i/64]&(1<<(uint(i)%64)) != 0
}

// fillBitsRGBA converts n packed cells into RGBA pixels in buf.
func fillBitsRGBA(buf []byte, words []uint64, n int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < n; i++ {
		base := i * 4
		if BitAlive(words, i) {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
