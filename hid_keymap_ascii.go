// hid_keymap_ascii.go - Text to key stroke translation

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

// keyStroke is one ASCII character expressed as physical keys on a UK
// PC keyboard.
type keyStroke struct {
	key   KeyCode
	shift bool
	ctrl  bool
}

var asciiDigits = [10]KeyCode{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}

var asciiLetters = [26]KeyCode{
	KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
	KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
}

var asciiPunct = map[byte]keyStroke{
	' ':  {key: KeySpacebar},
	'!':  {key: Key1, shift: true},
	'"':  {key: Key2, shift: true},
	'$':  {key: Key4, shift: true},
	'%':  {key: Key5, shift: true},
	'^':  {key: Key6, shift: true},
	'&':  {key: Key7, shift: true},
	'*':  {key: Key8, shift: true},
	'(':  {key: Key9, shift: true},
	')':  {key: Key0, shift: true},
	'-':  {key: KeyOemMinus},
	'_':  {key: KeyOemMinus, shift: true},
	'=':  {key: KeyOemPlus},
	'+':  {key: KeyOemPlus, shift: true},
	'[':  {key: KeyOem4},
	'{':  {key: KeyOem4, shift: true},
	']':  {key: KeyOem6},
	'}':  {key: KeyOem6, shift: true},
	';':  {key: KeyOem1},
	':':  {key: KeyOem1, shift: true},
	'\'': {key: KeyOem3},
	'@':  {key: KeyOem3, shift: true},
	'#':  {key: KeyOem7},
	'~':  {key: KeyOem7, shift: true},
	'\\': {key: KeyOem5},
	'|':  {key: KeyOem5, shift: true},
	',':  {key: KeyOemComma},
	'<':  {key: KeyOemComma, shift: true},
	'.':  {key: KeyOemPeriod},
	'>':  {key: KeyOemPeriod, shift: true},
	'/':  {key: KeyOem2},
	'?':  {key: KeyOem2, shift: true},
	'`':  {key: KeyOem8},
}

// asciiToKeyStroke maps one byte of host text input to physical keys.
func asciiToKeyStroke(b byte) (keyStroke, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return keyStroke{key: asciiLetters[b-'a']}, true
	case b >= 'A' && b <= 'Z':
		return keyStroke{key: asciiLetters[b-'A'], shift: true}, true
	case b >= '0' && b <= '9':
		return keyStroke{key: asciiDigits[b-'0']}, true
	}
	switch b {
	case '\r', '\n':
		return keyStroke{key: KeyReturn}, true
	case '\t':
		return keyStroke{key: KeyTab}, true
	case 0x08, 0x7F:
		return keyStroke{key: KeyBackspace}, true
	case 0x1B:
		return keyStroke{key: KeyEscape}, true
	}
	if b >= 0x01 && b <= 0x1A {
		return keyStroke{key: asciiLetters[b-1], ctrl: true}, true
	}
	ks, ok := asciiPunct[b]
	return ks, ok
}

// events expands a stroke into modifier presses, the key press and
// release, then modifier releases.
func (ks keyStroke) events() []HIDEvent {
	evs := make([]HIDEvent, 0, 6)
	if ks.ctrl {
		evs = append(evs, KeyPressEvent(KeyLControl))
	}
	if ks.shift {
		evs = append(evs, KeyPressEvent(KeyLShift))
	}
	evs = append(evs, KeyPressEvent(ks.key), KeyReleaseEvent(ks.key))
	if ks.shift {
		evs = append(evs, KeyReleaseEvent(KeyLShift))
	}
	if ks.ctrl {
		evs = append(evs, KeyReleaseEvent(KeyLControl))
	}
	return evs
}

// textToEvents converts text into key events, skipping bytes that have
// no key on the keyboard.
func textToEvents(text []byte) []HIDEvent {
	evs := make([]HIDEvent, 0, len(text)*2)
	for i := 0; i < len(text); i++ {
		// CRLF is a single Return.
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			continue
		}
		if ks, ok := asciiToKeyStroke(text[i]); ok {
			evs = append(evs, ks.events()...)
		}
	}
	return evs
}
