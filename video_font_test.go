package main

import "testing"

func TestFont_Heights(t *testing.T) {
	for _, h := range []int{16, 8} {
		f, ok := FontForHeight(h)
		if !ok || f.Height != h {
			t.Fatalf("FontForHeight(%d) = %v, %v", h, f, ok)
		}
	}
	if _, ok := FontForHeight(14); ok {
		t.Fatal("expected no 8x14 font")
	}
}

func TestFont_HalfHeightIsRowPairOR(t *testing.T) {
	for g := 0; g < FONT_GLYPHS; g++ {
		for line := 0; line < 8; line++ {
			want := Font8x16.Row(uint8(g), 2*line) | Font8x16.Row(uint8(g), 2*line+1)
			if got := Font8x8.Row(uint8(g), line); got != want {
				t.Fatalf("glyph 0x%02X line %d = 0x%02X, want 0x%02X", g, line, got, want)
			}
		}
	}
}

func TestFont_KnownGlyphs(t *testing.T) {
	for _, b := range Font8x16.Glyph(' ') {
		if b != 0 {
			t.Fatal("space has ink")
		}
	}
	for _, b := range Font8x16.Glyph(0xDB) {
		if b != 0xFF {
			t.Fatal("full block 0xDB is not solid")
		}
	}
	inked := 0
	for _, b := range Font8x16.Glyph('A') {
		if b != 0 {
			inked++
		}
	}
	if inked < 6 {
		t.Fatalf("'A' has only %d inked rows", inked)
	}
}

func TestFont_UpperHalfHasNoHoles(t *testing.T) {
	// Everything from 0x80 up except NBSP (0xFF) draws something.
	for g := 0x80; g < 0xFF; g++ {
		ink := false
		for _, b := range Font8x16.Glyph(uint8(g)) {
			if b != 0 {
				ink = true
				break
			}
		}
		if !ink {
			t.Errorf("glyph 0x%02X is blank", g)
		}
	}
}

func TestFont_BoxDrawingJoins(t *testing.T) {
	// Single horizontal line spans the full cell width on its middle row.
	h := Font8x16.Glyph(0xC4)
	if h[7] != 0xFF {
		t.Fatalf("0xC4 middle row = 0x%02X, want 0xFF", h[7])
	}
	// Single vertical line is continuous top to bottom.
	for line, b := range Font8x16.Glyph(0xB3) {
		if b&0x18 != 0x18 {
			t.Fatalf("0xB3 row %d = 0x%02X, missing stem", line, b)
		}
	}
}
