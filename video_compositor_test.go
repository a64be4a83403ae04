package main

import (
	"slices"
	"testing"
)

func TestTextLayout(t *testing.T) {
	l, ok := textLayout(NewMode(Timing640x400, FormatText8x8))
	if !ok || l != (TextLayout{Cols: 80, Rows: 50, GlyphHeight: 8}) {
		t.Fatalf("layout = %+v (ok=%v)", l, ok)
	}
	if _, ok := textLayout(NewMode(Timing640x480, FormatChunky8)); ok {
		t.Fatal("chunky modes have no text layout")
	}
}

func TestTextCells_RowMajor(t *testing.T) {
	fb := newRawFramebuffer(make([]byte, 16))
	for i := 0; i < 8; i++ {
		fb.WriteAt(i*2, byte('a'+i))
		fb.WriteAt(i*2+1, byte(i))
	}
	var got []TextCell
	for c := range textCells(fb, TextLayout{Cols: 4, Rows: 2, GlyphHeight: 16}) {
		got = append(got, c)
	}
	if len(got) != 8 {
		t.Fatalf("got %d cells", len(got))
	}
	if got[5] != (TextCell{Col: 1, Row: 1, Glyph: 'f', Attr: 5}) {
		t.Fatalf("cell 5 = %+v", got[5])
	}
}

func TestTextCells_StopsEarly(t *testing.T) {
	fb := newRawFramebuffer(make([]byte, 16))
	n := 0
	for range textCells(fb, TextLayout{Cols: 4, Rows: 2, GlyphHeight: 16}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("iterated %d cells", n)
	}
}

func TestBlink_HalfPeriod(t *testing.T) {
	var visible []bool
	for f := uint64(0); f < BLINK_PERIOD; f++ {
		visible = append(visible, blinkVisible(f))
	}
	on := slices.Index(visible, false)
	if on != BLINK_PERIOD/2 {
		t.Fatalf("blink goes dark at frame %d, want %d", on, BLINK_PERIOD/2)
	}
	if !glyphVisible(NewAttr(15, 0, false), BLINK_PERIOD-1) {
		t.Fatal("non-blinking cell hidden")
	}
	if glyphVisible(NewAttr(15, 0, true), BLINK_PERIOD-1) {
		t.Fatal("blinking cell visible in the off phase")
	}
}

func TestTextCompositor_Render(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	c := NewTextCompositor(NewGlyphCache(m.Palette), m.Palette)

	// Cell (1,0): full block, yellow on navy, blinking.
	m.Frame.WriteAt(2, 0xDB)
	m.Frame.WriteAt(3, byte(NewAttr(11, 4, true)))
	// Cell (2,0): space on maroon.
	m.Frame.WriteAt(4, ' ')
	m.Frame.WriteAt(5, byte(NewAttr(15, 1, false)))

	img, ok := c.Render(m.Frame, m.Video.Mode(), 0)
	if !ok {
		t.Fatal("render failed")
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 480 {
		t.Fatalf("frame bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(8, 5); got != rgbaOf(m.Palette.At(11)) {
		t.Fatalf("block pixel = %v, want yellow", got)
	}
	if got := img.RGBAAt(17, 5); got != rgbaOf(m.Palette.At(1)) {
		t.Fatalf("space pixel = %v, want maroon background", got)
	}

	img, _ = c.Render(m.Frame, m.Video.Mode(), BLINK_PERIOD/2)
	if got := img.RGBAAt(8, 5); got != rgbaOf(m.Palette.At(4)) {
		t.Fatalf("blinking block pixel = %v, want navy background while hidden", got)
	}

	// Background reads the live palette.
	m.Palette.Set(1, RGB(10, 20, 30))
	img, _ = c.Render(m.Frame, m.Video.Mode(), 0)
	if got := img.RGBAAt(17, 5); got != rgbaOf(RGB(10, 20, 30)) {
		t.Fatalf("background = %v after palette write", got)
	}
}

func TestTextCompositor_ModeSwitch(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	c := NewTextCompositor(NewGlyphCache(m.Palette), m.Palette)
	mode := NewMode(Timing640x400, FormatText8x8)
	img, ok := c.Render(m.Frame, mode, 0)
	if !ok || img.Bounds().Dy() != 400 {
		t.Fatalf("render in %s: ok=%v bounds=%v", mode, ok, img.Bounds())
	}
	if _, ok := c.Render(m.Frame, NewMode(Timing640x480, FormatChunky8), 0); ok {
		t.Fatal("chunky frame rendered")
	}
}
