/*
video_compositor.go - Text compositor for the shared framebuffer

Each frame the compositor walks the text cells of the current mode in
row-major order. For every cell it fills the cell rectangle with the
background palette colour, then overlays the cached glyph image for the
cell's glyph and foreground colour.

Signal Flow:
1. The OS writes (glyph, attribute) pairs into video RAM
2. The presentation loop calls BeginFrame on the frame store
3. textCells yields one TextCell per cell of the current mode
4. A backend draws each cell (ebiten images, software RGBA or ANSI text)
*/

package main

import (
	"image"
	"image/color"
	"iter"
	"time"
)

const (
	COMPOSITOR_REFRESH_RATE     = TARGET_TPS
	COMPOSITOR_REFRESH_INTERVAL = time.Second / COMPOSITOR_REFRESH_RATE
)

type TextCell struct {
	Col, Row int
	Glyph    uint8
	Attr     Attr
}

// TextLayout describes how video RAM is read for a text mode.
type TextLayout struct {
	Cols, Rows  int
	GlyphHeight int
}

// textLayout reports false for formats the compositor cannot draw; the
// caller skips the frame.
func textLayout(m Mode) (TextLayout, bool) {
	cols, rows, ok := m.TextSize()
	if !ok {
		return TextLayout{}, false
	}
	h, _ := m.GlyphHeight()
	return TextLayout{Cols: cols, Rows: rows, GlyphHeight: h}, true
}

// textCells yields the cells of one frame. Every byte is read exactly once
// through the frame store's bounds-checked accessor.
func textCells(fb FrameStore, l TextLayout) iter.Seq[TextCell] {
	return func(yield func(TextCell) bool) {
		off := 0
		for row := range l.Rows {
			for col := range l.Cols {
				c := TextCell{
					Col:   col,
					Row:   row,
					Glyph: fb.ReadAt(off),
					Attr:  Attr(fb.ReadAt(off + 1)),
				}
				off += 2
				if !yield(c) {
					return
				}
			}
		}
	}
}

// blinkVisible reports whether blinking cells show their glyph on frame n.
func blinkVisible(frame uint64) bool {
	return frame%BLINK_PERIOD < BLINK_PERIOD/2
}

// glyphVisible is false only for blinking cells in the off phase.
func glyphVisible(a Attr, frame uint64) bool {
	return !a.Blink() || blinkVisible(frame)
}

// TextCompositor renders text modes into an RGBA image without a GPU. The
// headless backend and the tests use it.
type TextCompositor struct {
	cache   *GlyphCache
	palette *Palette
	frame   *image.RGBA
}

func NewTextCompositor(cache *GlyphCache, palette *Palette) *TextCompositor {
	return &TextCompositor{cache: cache, palette: palette}
}

// Render draws one frame of mode m. It returns false, and draws nothing,
// when m is not a text mode.
func (c *TextCompositor) Render(fb FrameStore, m Mode, frameNo uint64) (*image.RGBA, bool) {
	l, ok := textLayout(m)
	if !ok {
		return nil, false
	}
	atlas, ok := c.cache.Atlas(l.GlyphHeight)
	if !ok {
		return nil, false
	}
	bounds := image.Rect(0, 0, l.Cols*FONT_WIDTH, l.Rows*l.GlyphHeight)
	if c.frame == nil || c.frame.Bounds() != bounds {
		c.frame = image.NewRGBA(bounds)
	}

	fb.BeginFrame()
	for cell := range textCells(fb, l) {
		x0, y0 := cell.Col*FONT_WIDTH, cell.Row*l.GlyphHeight
		bg := rgbaOf(c.palette.At(cell.Attr.Background()))
		fillRect(c.frame, image.Rect(x0, y0, x0+FONT_WIDTH, y0+l.GlyphHeight), bg)
		if !glyphVisible(cell.Attr, frameNo) {
			continue
		}
		src := atlas.SlotRect(GlyphSlot(cell.Glyph, cell.Attr.Foreground()))
		overlay(c.frame, x0, y0, atlas.Image, src)
	}
	return c.frame, true
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// overlay copies the opaque pixels of src onto dst at (x0, y0).
func overlay(dst *image.RGBA, x0, y0 int, src *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := src.RGBAAt(x, y)
			if p.A == 0 {
				continue
			}
			dst.SetRGBA(x0+x-r.Min.X, y0+y-r.Min.Y, p)
		}
	}
}
