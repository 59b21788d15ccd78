package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
	c := DefaultConfig()
	if c.Width != 64 || c.Height != 64 {
		t.Fatalf("default size %dx%d, want 64x64", c.Width, c.Height)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":     "80",
		"h":     "40",
		"seed":  "-3",
		"empty": "true",
	})
	want := Config{Width: 80, Height: 40, Seed: -3, Empty: true}
	if c != want {
		t.Fatalf("FromMap = %+v, want %+v", c, want)
	}
}

func TestFromMapVariantAndInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{
		"variant": "extended",
		"w":       "0",
		"h":       "-5",
		"seed":    "abc",
		"empty":   "maybe",
	})
	want := ExtendedConfig()
	if c != want {
		t.Fatalf("FromMap = %+v, want %+v", c, want)
	}
}
