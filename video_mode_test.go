package main

import (
	"errors"
	"testing"
)

func TestVideoState_SupportedModes(t *testing.T) {
	v := NewVideoState()
	if v.Mode() != StartupMode {
		t.Fatalf("startup mode = %s", v.Mode())
	}
	for _, m := range supportedModes {
		if err := v.SetMode(m); err != nil {
			t.Errorf("SetMode(%s): %v", m, err)
		}
		if v.Mode() != m {
			t.Errorf("Mode() = %s after setting %s", v.Mode(), m)
		}
	}
}

func TestVideoState_RejectsUnsupported(t *testing.T) {
	v := NewVideoState()
	bad := []Mode{
		NewMode(Timing800x600, FormatText8x16),
		NewMode(Timing640x480, FormatChunky8),
		Mode(uint8(NewMode(Timing800x600, FormatText8x8)) | 0x80),
	}
	for _, m := range bad {
		err := v.SetMode(m)
		if !errors.Is(err, UnsupportedConfiguration(uint16(m))) {
			t.Errorf("SetMode(%s) = %v, want unsupported configuration", m, err)
		}
		if v.Mode() != StartupMode {
			t.Fatalf("mode changed to %s after rejected set", v.Mode())
		}
	}
}

func TestVideoState_LineDoubledModes(t *testing.T) {
	v := NewVideoState()
	for _, raw := range []uint8{0x80, 0x81, 0x90, 0x91} {
		m := Mode(raw)
		if err := v.SetMode(m); err != nil {
			t.Fatalf("SetMode(0x%02X): %v", raw, err)
		}
		if v.Mode() != m {
			t.Fatalf("Mode() = %s, want raw 0x%02X kept", v.Mode(), raw)
		}
	}

	m := Mode(0x80)
	if m.VerticalLines() != 240 {
		t.Fatalf("VerticalLines = %d, want 240", m.VerticalLines())
	}
	cols, rows, ok := m.TextSize()
	if !ok || cols != 80 || rows != 15 {
		t.Fatalf("TextSize = %d x %d (%v), want 80 x 15", cols, rows, ok)
	}
	if m.FrameSizeBytes() > FRAMEBUFFER_SIZE {
		t.Fatal("doubled mode does not fit video RAM")
	}
	if displayLines(m) != 480 || displayLines(StartupMode) != 480 {
		t.Fatalf("displayLines = %d and %d, want 480", displayLines(m), displayLines(StartupMode))
	}
}

func TestVideoState_Generation(t *testing.T) {
	v := NewVideoState()
	_ = v.SetMode(StartupMode)
	if v.Generation() != 0 {
		t.Fatal("setting the current mode counted as a change")
	}
	_ = v.SetMode(NewMode(Timing640x480, FormatText8x8))
	if v.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", v.Generation())
	}
	if v.NeedsVRAM(StartupMode) {
		t.Fatal("no mode should need extra VRAM")
	}
}
