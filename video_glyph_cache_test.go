package main

import (
	"image/color"
	"testing"
)

func TestGlyphSlot_Injective(t *testing.T) {
	seen := make(map[int]bool, GLYPH_SLOTS)
	for g := 0; g < FONT_GLYPHS; g++ {
		for fg := 0; fg < GLYPH_FG_COLOURS; fg++ {
			s := GlyphSlot(uint8(g), uint8(fg))
			if s < 0 || s >= GLYPH_SLOTS {
				t.Fatalf("slot %d out of range", s)
			}
			if seen[s] {
				t.Fatalf("slot %d reused for glyph 0x%02X fg %d", s, g, fg)
			}
			seen[s] = true
		}
	}
	if GlyphSlot(0x41, 0x1F) != GlyphSlot(0x41, 0x0F) {
		t.Fatal("foreground above 15 must wrap to four bits")
	}
}

func TestGlyphAtlas_Pixels(t *testing.T) {
	p := NewPalette()
	cache := NewGlyphCache(p)
	for _, h := range cache.Heights() {
		atlas, ok := cache.Atlas(h)
		if !ok {
			t.Fatalf("no atlas for height %d", h)
		}
		r := atlas.SlotRect(GlyphSlot(0xDB, 12))
		if r.Dx() != FONT_WIDTH || r.Dy() != h {
			t.Fatalf("slot rect %v for height %d", r, h)
		}
		want := rgbaOf(p.At(12))
		if got := atlas.Image.RGBAAt(r.Min.X, r.Min.Y); got != want {
			t.Fatalf("full block pixel = %v, want %v", got, want)
		}
		blank := atlas.SlotRect(GlyphSlot(' ', 12))
		if got := atlas.Image.RGBAAt(blank.Min.X+3, blank.Min.Y+3); got != (color.RGBA{}) {
			t.Fatalf("space pixel = %v, want transparent", got)
		}
	}
	if _, ok := cache.Atlas(14); ok {
		t.Fatal("unexpected atlas for height 14")
	}
}

func TestGlyphCache_IgnoresLaterPaletteWrites(t *testing.T) {
	p := NewPalette()
	cache := NewGlyphCache(p)
	p.Set(15, RGB(1, 2, 3))
	atlas, _ := cache.Atlas(16)
	r := atlas.SlotRect(GlyphSlot(0xDB, 15))
	if got := atlas.Image.RGBAAt(r.Min.X, r.Min.Y); got != rgbaOf(RGB(255, 255, 255)) {
		t.Fatalf("cached glyph recoloured to %v", got)
	}
}
