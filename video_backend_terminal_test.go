package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/log"
)

func newTestTerminal(t *testing.T) (*TerminalOutput, *Machine) {
	t.Helper()
	m := newTestMachine(t, MachineConfig{})
	cfg := FrontendConfig{Scale: 1, RefreshRate: TARGET_TPS, Logger: log.NewTestLogger(t)}
	// fd -1 makes GetSize fail, so nothing is clipped.
	return newTerminalOutput(m, cfg, &bytes.Buffer{}, -1), m
}

func TestTerminal_RendersOnlyOnChange(t *testing.T) {
	out, m := newTestTerminal(t)
	if !out.renderFrame() {
		t.Fatal("first frame not written")
	}
	if out.renderFrame() {
		t.Fatal("unchanged frame written again")
	}
	m.Frame.WriteAt(0, 'H')
	if !out.renderFrame() {
		t.Fatal("changed frame not written")
	}
}

func TestTerminal_FrameContent(t *testing.T) {
	out, m := newTestTerminal(t)
	m.Frame.WriteAt(0, 'H')
	m.Frame.WriteAt(2, 0xDB)
	m.Frame.WriteAt(3, byte(NewAttr(9, 1, false)))
	out.renderFrame()
	frame := out.frame.String()

	if !strings.HasPrefix(frame, "\x1b[1;1H") {
		t.Fatalf("frame does not start at home: %q", frame[:min(len(frame), 16)])
	}
	if !strings.Contains(frame, "H") || !strings.Contains(frame, "█") {
		t.Fatal("glyphs missing from frame")
	}
	if !strings.Contains(frame, "\x1b[38;2;255;0;0m\x1b[48;2;128;0;0m") {
		t.Fatal("palette colours not emitted for red on maroon")
	}
	if got := strings.Count(frame, ";1H"); got != 30 {
		t.Fatalf("positioned %d rows, want 30", got)
	}
}

func TestTerminal_FollowsModeAndPalette(t *testing.T) {
	out, m := newTestTerminal(t)
	out.renderFrame()
	if err := m.Video.SetMode(NewMode(Timing640x480, FormatText8x8)); err != nil {
		t.Fatal(err)
	}
	out.renderFrame()
	if got := strings.Count(out.frame.String(), ";1H"); got != 60 {
		t.Fatalf("positioned %d rows, want 60", got)
	}

	m.Palette.Set(0, RGB(1, 2, 3))
	if !out.renderFrame() {
		t.Fatal("palette change did not redraw")
	}
	if !strings.Contains(out.frame.String(), "48;2;1;2;3m") {
		t.Fatal("new background colour not used")
	}
}

func TestTerminal_BlinkHidesGlyph(t *testing.T) {
	out, m := newTestTerminal(t)
	m.Frame.WriteAt(0, 'B')
	m.Frame.WriteAt(1, byte(NewAttr(15, 0, true)))
	out.frameNo = BLINK_PERIOD/2 - 1
	out.renderFrame()
	if strings.Contains(out.frame.String(), "B") {
		t.Fatal("blinking glyph shown in off phase")
	}
}

func TestTerminal_InputQuits(t *testing.T) {
	out, m := newTestTerminal(t)
	out.handleInput([]byte("a"))
	if m.HID.Len() != 2 || out.quit.Load() {
		t.Fatalf("queued %d events, quit=%v", m.HID.Len(), out.quit.Load())
	}
	out.handleInput([]byte{TERMINAL_QUIT_BYTE})
	if !out.quit.Load() {
		t.Fatal("Ctrl+] did not request quit")
	}
}

func TestCP437Runes(t *testing.T) {
	checks := map[byte]rune{'A': 'A', 0xB3: '│', 0xC9: '╔', 0xDB: '█', 0x00: ' ', 0xFF: ' '}
	for b, want := range checks {
		if got := cp437Runes[b]; got != want {
			t.Errorf("cp437Runes[0x%02X] = %q, want %q", b, got, want)
		}
	}
}
