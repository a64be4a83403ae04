// video_glyph_cache.go - Pre-rendered coloured glyph atlases

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package main

import (
	"image"
	"image/color"
)

const (
	GLYPH_FG_COLOURS = 16
	GLYPH_SLOTS      = FONT_GLYPHS * GLYPH_FG_COLOURS
	GLYPH_ATLAS_COLS = GLYPH_FG_COLOURS
)

// GlyphSlot addresses the cached image of a glyph in one foreground colour.
// Only the low four bits of fg are used.
func GlyphSlot(glyph, fg uint8) int {
	return int(glyph)*GLYPH_FG_COLOURS + int(fg&0x0F)
}

// GlyphAtlas holds every slot of one font as a single RGBA image, slot s at
// column s%16 and row s/16. Unset pixels are transparent.
type GlyphAtlas struct {
	Font  *Font
	Image *image.RGBA
}

func (a *GlyphAtlas) SlotRect(slot int) image.Rectangle {
	x := (slot % GLYPH_ATLAS_COLS) * FONT_WIDTH
	y := (slot / GLYPH_ATLAS_COLS) * a.Font.Height
	return image.Rect(x, y, x+FONT_WIDTH, y+a.Font.Height)
}

// BuildGlyphAtlas paints the set bits of every glyph once per colour.
func BuildGlyphAtlas(f *Font, fg [GLYPH_FG_COLOURS]RGBColour) *GlyphAtlas {
	rows := GLYPH_SLOTS / GLYPH_ATLAS_COLS
	a := &GlyphAtlas{
		Font:  f,
		Image: image.NewRGBA(image.Rect(0, 0, GLYPH_ATLAS_COLS*FONT_WIDTH, rows*f.Height)),
	}
	for g := 0; g < FONT_GLYPHS; g++ {
		for c := 0; c < GLYPH_FG_COLOURS; c++ {
			r := a.SlotRect(GlyphSlot(uint8(g), uint8(c)))
			ink := rgbaOf(fg[c])
			for line := 0; line < f.Height; line++ {
				bits := f.Row(uint8(g), line)
				for x := 0; x < FONT_WIDTH; x++ {
					if bits&(0x80>>x) != 0 {
						a.Image.SetRGBA(r.Min.X+x, r.Min.Y+line, ink)
					}
				}
			}
		}
	}
	return a
}

func rgbaOf(c RGBColour) color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 0xFF}
}

// GlyphCache has one atlas per supported font height. It is built once
// and never changes, so later palette writes to entries 0-15 do not
// recolour text.
type GlyphCache struct {
	atlases map[int]*GlyphAtlas
}

func NewGlyphCache(p *Palette) *GlyphCache {
	fg := p.TextForeground()
	return &GlyphCache{atlases: map[int]*GlyphAtlas{
		Font8x16.Height: BuildGlyphAtlas(Font8x16, fg),
		Font8x8.Height:  BuildGlyphAtlas(Font8x8, fg),
	}}
}

func (c *GlyphCache) Atlas(height int) (*GlyphAtlas, bool) {
	a, ok := c.atlases[height]
	return a, ok
}

// Heights lists the font heights present, tallest first.
func (c *GlyphCache) Heights() []int {
	return []int{Font8x16.Height, Font8x8.Height}
}
