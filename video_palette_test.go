package main

import "testing"

func TestPalette_Defaults(t *testing.T) {
	p := NewPalette()
	checks := map[uint8]RGBColour{
		0:   RGB(0, 0, 0),
		7:   RGB(192, 192, 192),
		15:  RGB(255, 255, 255),
		16:  RGB(0, 0, 0),
		21:  RGB(0, 0, 255),
		231: RGB(255, 255, 255),
		232: RGB(8, 8, 8),
		255: RGB(238, 238, 238),
	}
	for i, want := range checks {
		if got := p.At(i); got != want {
			t.Errorf("entry %d = %s, want %s", i, got, want)
		}
	}
}

func TestPalette_GetOutOfRange(t *testing.T) {
	p := NewPalette()
	if _, ok := p.Get(PALETTE_ENTRIES); ok {
		t.Fatal("expected Get(256) to fail")
	}
	if _, ok := p.Get(-1); ok {
		t.Fatal("expected Get(-1) to fail")
	}
}

func TestPalette_SetMasksAlpha(t *testing.T) {
	p := NewPalette()
	p.Set(3, RGBColour(0xFF123456))
	if got := p.At(3); got != RGB(0x12, 0x34, 0x56) {
		t.Fatalf("entry 3 = %s, want #123456", got)
	}
}

func TestPalette_SetWholePartial(t *testing.T) {
	p := NewPalette()
	n := p.SetWhole([]RGBColour{RGB(1, 1, 1), RGB(2, 2, 2)})
	if n != 2 {
		t.Fatalf("SetWhole wrote %d entries, want 2", n)
	}
	if p.At(1) != RGB(2, 2, 2) {
		t.Fatalf("entry 1 = %s", p.At(1))
	}
	if p.At(2) != RGB(0, 128, 0) {
		t.Fatalf("entry 2 changed to %s", p.At(2))
	}

	long := make([]RGBColour, 300)
	if n := p.SetWhole(long); n != PALETTE_ENTRIES {
		t.Fatalf("SetWhole wrote %d entries, want %d", n, PALETTE_ENTRIES)
	}
}

func TestPalette_Reset(t *testing.T) {
	p := NewPalette()
	p.Set(15, RGB(1, 2, 3))
	p.Reset()
	if p.At(15) != RGB(255, 255, 255) {
		t.Fatalf("entry 15 = %s after reset", p.At(15))
	}
}
