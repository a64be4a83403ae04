//go:build !headless

package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestClipboardPaste_Normalize(t *testing.T) {
	in := []byte("a\r\nb\rc\n")
	got := normalizePasteText(in)
	want := "a\nb\nc\n"
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestClipboardPaste_Cap(t *testing.T) {
	in := make([]byte, 5000)
	got := capPasteText(in, PASTE_MAX_BYTES)
	if len(got) != PASTE_MAX_BYTES {
		t.Fatalf("expected capped length %d, got %d", PASTE_MAX_BYTES, len(got))
	}
}

func TestClipboardPaste_Events(t *testing.T) {
	evs := pasteEvents([]byte("a\r\n"))
	want := []HIDEvent{
		KeyPressEvent(KeyA), KeyReleaseEvent(KeyA),
		KeyPressEvent(KeyReturn), KeyReleaseEvent(KeyReturn),
	}
	if len(evs) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(evs), evs)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Fatalf("event %d: expected %v, got %v", i, want[i], evs[i])
		}
	}
}

func TestKeyTranslation_Enter(t *testing.T) {
	code, ok := translateKey(ebiten.KeyEnter)
	if !ok {
		t.Fatal("expected enter translation")
	}
	if code != KeyReturn {
		t.Fatalf("expected Return, got %v", code)
	}
}

func TestKeyTranslation_ArrowLeft(t *testing.T) {
	code, ok := translateKey(ebiten.KeyArrowLeft)
	if !ok || code != KeyArrowLeft {
		t.Fatalf("expected ArrowLeft, got %v (ok=%v)", code, ok)
	}
}

func TestKeyTranslation_Letters(t *testing.T) {
	cases := map[ebiten.Key]KeyCode{
		ebiten.KeyA: KeyA,
		ebiten.KeyM: KeyM,
		ebiten.KeyZ: KeyZ,
	}
	for k, want := range cases {
		if code, ok := translateKey(k); !ok || code != want {
			t.Errorf("%s: expected %v, got %v (ok=%v)", k, want, code, ok)
		}
	}
}

func TestKeyTranslation_UnmappedFallsBack(t *testing.T) {
	code, ok := translateKey(ebiten.KeyIntlBackslash)
	if ok {
		t.Fatal("expected IntlBackslash to be unmapped")
	}
	if code != KeyUnmapped {
		t.Fatalf("expected fallback %v, got %v", KeyUnmapped, code)
	}
}

func TestKeyTranslation_Modifiers(t *testing.T) {
	cases := map[ebiten.Key]KeyCode{
		ebiten.KeyShiftLeft:    KeyLShift,
		ebiten.KeyShiftRight:   KeyRShift,
		ebiten.KeyControlLeft:  KeyLControl,
		ebiten.KeyControlRight: KeyRControl,
		ebiten.KeyAltRight:     KeyRAltGr,
	}
	for k, want := range cases {
		if code, ok := translateKey(k); !ok || code != want {
			t.Errorf("%s: expected %v, got %v", k, want, code)
		}
	}
}

func TestStatusOverlay_Lines(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	lines := m.Status().overlayLines(59.7)
	if len(lines) != 3 {
		t.Fatalf("expected 3 overlay lines, got %d", len(lines))
	}
	if lines[0].tokens[0].name != BootInitializing.String() {
		t.Fatalf("expected boot state first, got %q", lines[0].tokens[0].name)
	}
	if lines[2].tokens[0].name != "no disk" || lines[2].tokens[0].enabled {
		t.Fatalf("expected disabled 'no disk' token, got %+v", lines[2].tokens[0])
	}
}
