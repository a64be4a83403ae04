package main

// TERMINAL_QUIT_BYTE is Ctrl+], which leaves the terminal frontend.
const TERMINAL_QUIT_BYTE = 0x1D

// ansiFinal maps CSI final bytes to cursor keys.
var ansiFinal = map[byte]KeyCode{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ansiTilde maps CSI n ~ sequences.
var ansiTilde = map[string]KeyCode{
	"1":  KeyHome,
	"2":  KeyInsert,
	"3":  KeyDelete,
	"4":  KeyEnd,
	"5":  KeyPageUp,
	"6":  KeyPageDown,
	"11": KeyF1,
	"12": KeyF2,
	"13": KeyF3,
	"14": KeyF4,
	"15": KeyF5,
	"17": KeyF6,
	"18": KeyF7,
	"19": KeyF8,
	"20": KeyF9,
	"21": KeyF10,
	"23": KeyF11,
	"24": KeyF12,
}

// ss3Final covers ESC O P..S for F1-F4.
var ss3Final = map[byte]KeyCode{
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'H': KeyHome,
	'F': KeyEnd,
}

func tap(k KeyCode) []HIDEvent {
	return []HIDEvent{KeyPressEvent(k), KeyReleaseEvent(k)}
}

// terminalInputToEvents decodes one read from a raw terminal. An escape
// byte at the end of the chunk is a lone Escape key. quit is set when the
// chunk holds Ctrl+]; bytes after it are dropped.
func terminalInputToEvents(chunk []byte) (evs []HIDEvent, quit bool) {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		if b == TERMINAL_QUIT_BYTE {
			return evs, true
		}
		if b == 0x1B && i+1 < len(chunk) {
			if k, n, ok := decodeEscape(chunk[i+1:]); ok {
				evs = append(evs, tap(k)...)
				i += n
				continue
			}
		}
		// Raw mode delivers CR for Enter. A following LF is the same key.
		if b == '\r' && i+1 < len(chunk) && chunk[i+1] == '\n' {
			i++
		}
		if ks, ok := asciiToKeyStroke(b); ok {
			evs = append(evs, ks.events()...)
		}
	}
	return evs, false
}

// decodeEscape parses the bytes after ESC and reports how many it used.
func decodeEscape(rest []byte) (KeyCode, int, bool) {
	if len(rest) < 2 {
		return 0, 0, false
	}
	switch rest[0] {
	case 'O':
		k, ok := ss3Final[rest[1]]
		return k, 2, ok
	case '[':
		if k, ok := ansiFinal[rest[1]]; ok {
			return k, 2, true
		}
		for j := 1; j < len(rest) && j < 4; j++ {
			c := rest[j]
			if c == '~' {
				k, ok := ansiTilde[string(rest[1:j])]
				return k, j + 1, ok
			}
			if c < '0' || c > '9' {
				break
			}
		}
	}
	return 0, 0, false
}
