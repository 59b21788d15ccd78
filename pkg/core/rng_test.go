package core

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
)

func TestNewRNGDeterministic(t *testing.T) {
	a, b := bitset.New(256), bitset.New(256)
	FillBits(NewRNG(7).Source(), a)
	FillBits(NewRNG(7).Source(), b)
	if !a.Equal(b) {
		t.Fatal("identically seeded RNGs filled different bits")
	}
}

func TestFillBitsKeepsLength(t *testing.T) {
	bits := bitset.New(4096)
	FillBits(NewRNG(3).Source(), bits)

	if bits.Len() != 4096 {
		t.Fatalf("length changed to %d", bits.Len())
	}
	alive := bits.Count()
	if alive < 1700 || alive > 2400 {
		t.Fatalf("expected roughly half the bits set, got %d of 4096", alive)
	}
}

func TestSimNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	defer delete(sims, "zz-test")
	defer delete(sims, "aa-test")

	names := SimNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
}
