// video_palette.go - 256 entry colour palette

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

import "sync/atomic"

// Palette holds 256 colours. Every slot is independently atomic so the OS
// thread and the renderer never need a lock.
type Palette struct {
	entries [PALETTE_ENTRIES]atomic.Uint32
}

// NewPalette returns a palette loaded with the standard 256-colour
// terminal set.
func NewPalette() *Palette {
	p := &Palette{}
	p.Reset()
	return p
}

// xterm system colours 0-15
var systemColours = [16]RGBColour{
	RGB(0, 0, 0),       // Black
	RGB(128, 0, 0),     // Maroon
	RGB(0, 128, 0),     // Green
	RGB(128, 128, 0),   // Olive
	RGB(0, 0, 128),     // Navy
	RGB(128, 0, 128),   // Purple
	RGB(0, 128, 128),   // Teal
	RGB(192, 192, 192), // Silver
	RGB(128, 128, 128), // Grey
	RGB(255, 0, 0),     // Red
	RGB(0, 255, 0),     // Lime
	RGB(255, 255, 0),   // Yellow
	RGB(0, 0, 255),     // Blue
	RGB(255, 0, 255),   // Fuchsia
	RGB(0, 255, 255),   // Aqua
	RGB(255, 255, 255), // White
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// defaultColour computes entry i of the standard palette:
// 16 system colours, a 6x6x6 colour cube, then 24 greys.
func defaultColour(i int) RGBColour {
	switch {
	case i < 16:
		return systemColours[i]
	case i < 232:
		c := i - 16
		return RGB(cubeLevels[c/36], cubeLevels[(c/6)%6], cubeLevels[c%6])
	default:
		g := uint8(8 + 10*(i-232))
		return RGB(g, g, g)
	}
}

func (p *Palette) Reset() {
	for i := range p.entries {
		p.entries[i].Store(uint32(defaultColour(i)))
	}
}

func (p *Palette) Get(index int) (RGBColour, bool) {
	if index < 0 || index >= PALETTE_ENTRIES {
		return 0, false
	}
	return RGBColour(p.entries[index].Load()), true
}

// At is Get for a byte-wide index, which is always in range.
func (p *Palette) At(index uint8) RGBColour {
	return RGBColour(p.entries[index].Load())
}

func (p *Palette) Set(index uint8, c RGBColour) {
	p.entries[index].Store(uint32(c) & 0xFFFFFF)
}

// SetWhole replaces as many entries as colours supplies, starting at 0.
// Entries past the end of colours are left alone.
func (p *Palette) SetWhole(colours []RGBColour) int {
	n := min(len(colours), PALETTE_ENTRIES)
	for i := 0; i < n; i++ {
		p.entries[i].Store(uint32(colours[i]) & 0xFFFFFF)
	}
	return n
}

// TextForeground returns the 16 entries used for text glyphs.
func (p *Palette) TextForeground() [16]RGBColour {
	var out [16]RGBColour
	for i := range out {
		out[i] = RGBColour(p.entries[i].Load())
	}
	return out
}
