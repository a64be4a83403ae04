package main

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewGuestRuntime_Selection(t *testing.T) {
	if _, err := NewGuestRuntime(""); err == nil {
		t.Fatal("expected error for empty OS")
	}

	_, err := NewGuestRuntime("builtin:nope")
	var ge *GuestError
	if !errors.As(err, &ge) || !strings.Contains(ge.Details, "builtin:demo") {
		t.Fatalf("expected GuestError listing built-ins, got %v", err)
	}

	g, err := NewGuestRuntime("builtin:demo")
	if err != nil {
		t.Fatalf("builtin:demo: %v", err)
	}
	if g.Name() != "builtin:demo" || g.Open() != nil {
		t.Fatalf("unexpected built-in guest %q", g.Name())
	}

	g, err = NewGuestRuntime("./os.so")
	if err != nil || g.Name() != "./os.so" {
		t.Fatalf("shared object guest = %v, %v", g, err)
	}
}

func TestBuiltinGuestNames(t *testing.T) {
	names := builtinGuestNames()
	if !slices.Contains(names, "builtin:demo") || !slices.IsSorted(names) {
		t.Fatalf("names = %v", names)
	}
}

func TestBuiltinGuest_EnterWrapsError(t *testing.T) {
	boom := errors.New("boom")
	g := newBuiltinGuest("builtin:x", func(*BIOS) error { return boom })
	err := g.Enter(nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Enter() = %v, want wrapped boom", err)
	}
}

func TestSharedObjectGuest_EnterBeforeOpen(t *testing.T) {
	g, _ := NewGuestRuntime("/nonexistent.so")
	var ge *GuestError
	if err := g.Enter(nil); !errors.As(err, &ge) {
		t.Fatalf("Enter() = %v, want GuestError", err)
	}
}

func TestDemoGuest_RunsAndPowersOff(t *testing.T) {
	rec := &exitRecorder{}
	b := newTestBIOS(t, MachineConfig{ExitFunc: rec.exit, DiskPath: writeTestImage(t, 2)})
	b.m.HID.PushAll(tap(KeyA))
	b.m.HID.PushAll(tap(KeyF1))
	b.m.HID.PushAll(tap(KeyEscape))

	if err := runDemoGuest(b); err != nil {
		t.Fatalf("runDemoGuest: %v", err)
	}
	if len(rec.codes) != 1 || rec.codes[0] != 0 {
		t.Fatalf("exit codes %v, want [0]", rec.codes)
	}
	if b.VideoGetMode() != NewMode(Timing640x480, FormatText8x8) {
		t.Fatalf("mode = %s, want 8x8 text after F1", b.VideoGetMode())
	}

	row := readTextRow(b.m, 80, 1)
	if !strings.Contains(row, BIOS_VERSION_STRING) {
		t.Fatalf("row 1 = %q, want the BIOS version", row)
	}
	if b.m.Status().blockReads == 0 {
		t.Fatal("demo did not read block 0")
	}
}

func readTextRow(m *Machine, cols, row int) string {
	var sb strings.Builder
	for col := 0; col < cols; col++ {
		sb.WriteByte(m.Frame.ReadAt((row*cols + col) * 2))
	}
	return sb.String()
}
