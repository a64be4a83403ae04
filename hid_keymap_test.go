package main

import (
	"slices"
	"testing"
)

func TestASCII_ShiftedCharacters(t *testing.T) {
	cases := map[byte]keyStroke{
		'a':  {key: KeyA},
		'Q':  {key: KeyQ, shift: true},
		'7':  {key: Key7},
		'"':  {key: Key2, shift: true},
		'@':  {key: KeyOem3, shift: true},
		'#':  {key: KeyOem7},
		'~':  {key: KeyOem7, shift: true},
		'|':  {key: KeyOem5, shift: true},
		'\n': {key: KeyReturn},
		0x03: {key: KeyC, ctrl: true},
	}
	for b, want := range cases {
		got, ok := asciiToKeyStroke(b)
		if !ok || got != want {
			t.Errorf("asciiToKeyStroke(%q) = %+v (ok=%v), want %+v", b, got, ok, want)
		}
	}
	if _, ok := asciiToKeyStroke(0x80); ok {
		t.Error("expected no key for 0x80")
	}
}

func TestASCII_EventsOrder(t *testing.T) {
	got := keyStroke{key: KeyA, shift: true, ctrl: true}.events()
	want := []HIDEvent{
		KeyPressEvent(KeyLControl), KeyPressEvent(KeyLShift),
		KeyPressEvent(KeyA), KeyReleaseEvent(KeyA),
		KeyReleaseEvent(KeyLShift), KeyReleaseEvent(KeyLControl),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestTextToEvents_CRLF(t *testing.T) {
	got := textToEvents([]byte("\r\n"))
	want := []HIDEvent{KeyPressEvent(KeyReturn), KeyReleaseEvent(KeyReturn)}
	if !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestTerminalInput_Sequences(t *testing.T) {
	cases := []struct {
		in   string
		want KeyCode
	}{
		{"\x1b[A", KeyArrowUp},
		{"\x1b[D", KeyArrowLeft},
		{"\x1b[3~", KeyDelete},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[15~", KeyF5},
		{"\x1b[24~", KeyF12},
		{"\x1bOP", KeyF1},
		{"\x1bOS", KeyF4},
	}
	for _, c := range cases {
		evs, quit := terminalInputToEvents([]byte(c.in))
		if quit {
			t.Fatalf("%q: unexpected quit", c.in)
		}
		if !slices.Equal(evs, tap(c.want)) {
			t.Errorf("%q: events %v, want tap of %v", c.in, evs, c.want)
		}
	}
}

func TestTerminalInput_LoneEscape(t *testing.T) {
	evs, _ := terminalInputToEvents([]byte{0x1B})
	if !slices.Equal(evs, tap(KeyEscape)) {
		t.Fatalf("events %v, want Escape tap", evs)
	}
}

func TestTerminalInput_UnknownSequenceFallsThrough(t *testing.T) {
	// ESC [ Z is not decoded, so the bytes are typed as keys.
	evs, _ := terminalInputToEvents([]byte("\x1b[Z"))
	if len(evs) == 0 || evs[0] != KeyPressEvent(KeyEscape) {
		t.Fatalf("events %v, want Escape first", evs)
	}
}

func TestTerminalInput_TextAndQuit(t *testing.T) {
	evs, quit := terminalInputToEvents([]byte("hi\r\n\x1dx"))
	if !quit {
		t.Fatal("expected quit")
	}
	want := slices.Concat(tap(KeyH), tap(KeyI), tap(KeyReturn))
	if !slices.Equal(evs, want) {
		t.Fatalf("events %v, want %v", evs, want)
	}
}
