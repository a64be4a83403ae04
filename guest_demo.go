// guest_demo.go - Built-in demonstration OS

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
	"fmt"
	"unsafe"
)

// demoScreen writes text straight into video RAM the way a real OS does,
// through the pointer returned by video_get_framebuffer.
type demoScreen struct {
	b    *BIOS
	mem  []byte
	cols int
	rows int
	lock bool
}

func newDemoScreen(b *BIOS) *demoScreen {
	s := &demoScreen{b: b}
	s.mem = unsafe.Slice((*byte)(b.VideoGetFramebuffer()), FRAMEBUFFER_SIZE)
	s.resize()
	return s
}

func (s *demoScreen) resize() {
	s.cols, s.rows, _ = s.b.VideoGetMode().TextSize()
}

func (s *demoScreen) acquire() {
	for !s.b.CompareAndSwapBool(&s.lock, false, true) {
		s.b.PowerIdle()
	}
}

func (s *demoScreen) release() {
	s.b.CompareAndSwapBool(&s.lock, true, false)
}

func (s *demoScreen) put(col, row int, glyph byte, attr Attr) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	off := (row*s.cols + col) * 2
	s.mem[off] = glyph
	s.mem[off+1] = byte(attr)
}

func (s *demoScreen) print(col, row int, attr Attr, text string) {
	for i := 0; i < len(text); i++ {
		s.put(col+i, row, text[i], attr)
	}
}

func (s *demoScreen) clear(attr Attr) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.put(col, row, ' ', attr)
		}
	}
}

// frame draws a double-line box.
func (s *demoScreen) frame(x0, y0, x1, y1 int, attr Attr) {
	for x := x0 + 1; x < x1; x++ {
		s.put(x, y0, 0xCD, attr)
		s.put(x, y1, 0xCD, attr)
	}
	for y := y0 + 1; y < y1; y++ {
		s.put(x0, y, 0xBA, attr)
		s.put(x1, y, 0xBA, attr)
	}
	s.put(x0, y0, 0xC9, attr)
	s.put(x1, y0, 0xBB, attr)
	s.put(x0, y1, 0xC8, attr)
	s.put(x1, y1, 0xBC, attr)
}

var (
	demoBackground = NewAttr(TextColourWhite, 4, false)
	demoHighlight  = NewAttr(14, 4, false)
	demoBlink      = NewAttr(10, 4, true)
)

// runDemoGuest is a small OS that reports what the BIOS offers and echoes
// key presses. F1 switches between 8x16 and 8x8 text, Escape powers off.
func runDemoGuest(b *BIOS) error {
	s := newDemoScreen(b)
	modes := []Mode{NewMode(Timing640x480, FormatText8x16), NewMode(Timing640x480, FormatText8x8)}
	current := 0
	if b.VideoGetMode() == modes[1] {
		current = 1
	}
	s.drawStatic()

	lastSecond := Ticks(0)
	pressed := 0
	for {
		ev, ok, err := b.HIDGetEvent()
		if err != nil {
			return err
		}
		if !ok {
			if now := b.TimeTicksGet() / b.TimeTicksPerSecond(); now != lastSecond {
				lastSecond = now
				s.acquire()
				s.print(2, s.rows-2, demoBackground, fmt.Sprintf("Uptime %6ds", now))
				s.release()
			}
			b.PowerIdle()
			continue
		}
		if ev.Kind != HIDKeyPress {
			continue
		}
		pressed++
		switch ev.Key {
		case KeyEscape:
			b.PowerControl(PowerOff)
			return nil
		case KeyF1:
			current = 1 - current
			if err := b.VideoSetMode(modes[current]); err != nil {
				return err
			}
			s.resize()
			s.drawStatic()
		}
		s.acquire()
		s.print(2, 12, demoHighlight, fmt.Sprintf("Last key: %-14s count %5d", ev.Key, pressed))
		s.release()
	}
}

func (s *demoScreen) drawStatic() {
	b := s.b
	s.acquire()
	defer s.release()

	s.clear(demoBackground)
	s.frame(0, 0, s.cols-1, s.rows-1, demoBackground)
	s.print(2, 1, demoHighlight, fmt.Sprintf("%s, API %s", b.BIOSVersion(), b.APIVersion()))
	s.print(2, 2, demoBackground, fmt.Sprintf("Video mode %s, %dx%d cells", b.VideoGetMode(), s.cols, s.rows))

	if r, ok := b.MemoryGetRegion(MEMORY_REGION_RAM); ok {
		s.print(2, 4, demoBackground, fmt.Sprintf("Memory region 0: %d KiB at 0x%X", r.Length/1024, r.Start))
	} else {
		s.print(2, 4, demoBackground, "Memory region 0: unavailable")
	}

	if info, ok := b.BlockDevGetInfo(BLOCK_DEVICE_ID); ok && info.MediaPresent {
		s.print(2, 5, demoBackground, fmt.Sprintf("Disk %s: %d blocks of %d bytes, read-only %v",
			info.Name, info.NumBlocks, info.BlockSize, info.ReadOnly))
		sector := make([]byte, BLOCK_SIZE)
		if err := b.BlockRead(BLOCK_DEVICE_ID, 0, 1, sector); err != nil {
			s.print(2, 6, demoBackground, "Block 0: "+err.Error())
		} else {
			s.print(2, 6, demoBackground, fmt.Sprintf("Block 0: % X", sector[:16]))
		}
	} else {
		s.print(2, 5, demoBackground, "Disk: no media")
	}

	s.print(2, 8, demoBackground, "Palette:")
	for i := 0; i < GLYPH_FG_COLOURS; i++ {
		s.put(11+i, 8, 0xDB, NewAttr(uint8(i), 4, false))
	}
	s.print(2, 10, demoBlink, "Press keys. F1 toggles font height, Esc powers off.")
}
