//go:build !headless

// hid_keymap_ebiten.go - Ebiten key to Neotron key translation

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

import "github.com/hajimehoshi/ebiten/v2"

// ebitenKeys maps host keys by name. Keys missing here arrive as
// KeyUnmapped.
var ebitenKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyBackspace:    KeyBackspace,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyEnter:        KeyReturn,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeySpace:        KeySpacebar,
	ebiten.KeyQuote:        KeyOem3,
	ebiten.KeyComma:        KeyOemComma,
	ebiten.KeyMinus:        KeyOemMinus,
	ebiten.KeyPeriod:       KeyOemPeriod,
	ebiten.KeySlash:        KeyOem2,
	ebiten.KeyDigit0:       Key0,
	ebiten.KeyDigit1:       Key1,
	ebiten.KeyDigit2:       Key2,
	ebiten.KeyDigit3:       Key3,
	ebiten.KeyDigit4:       Key4,
	ebiten.KeyDigit5:       Key5,
	ebiten.KeyDigit6:       Key6,
	ebiten.KeyDigit7:       Key7,
	ebiten.KeyDigit8:       Key8,
	ebiten.KeyDigit9:       Key9,
	ebiten.KeySemicolon:    KeyOem1,
	ebiten.KeyEqual:        KeyOemPlus,
	ebiten.KeyBracketLeft:  KeyOem4,
	ebiten.KeyBackslash:    KeyOem5,
	ebiten.KeyBracketRight: KeyOem6,
	ebiten.KeyBackquote:    KeyOem8,
	ebiten.KeyA:            KeyA,
	ebiten.KeyB:            KeyB,
	ebiten.KeyC:            KeyC,
	ebiten.KeyD:            KeyD,
	ebiten.KeyE:            KeyE,
	ebiten.KeyF:            KeyF,
	ebiten.KeyG:            KeyG,
	ebiten.KeyH:            KeyH,
	ebiten.KeyI:            KeyI,
	ebiten.KeyJ:            KeyJ,
	ebiten.KeyK:            KeyK,
	ebiten.KeyL:            KeyL,
	ebiten.KeyM:            KeyM,
	ebiten.KeyN:            KeyN,
	ebiten.KeyO:            KeyO,
	ebiten.KeyP:            KeyP,
	ebiten.KeyQ:            KeyQ,
	ebiten.KeyR:            KeyR,
	ebiten.KeyS:            KeyS,
	ebiten.KeyT:            KeyT,
	ebiten.KeyU:            KeyU,
	ebiten.KeyV:            KeyV,
	ebiten.KeyW:            KeyW,
	ebiten.KeyX:            KeyX,
	ebiten.KeyY:            KeyY,
	ebiten.KeyZ:            KeyZ,
	ebiten.KeyDelete:       KeyDelete,
	ebiten.KeyCapsLock:     KeyCapsLock,
	ebiten.KeyF1:           KeyF1,
	ebiten.KeyF2:           KeyF2,
	ebiten.KeyF3:           KeyF3,
	ebiten.KeyF4:           KeyF4,
	ebiten.KeyF5:           KeyF5,
	ebiten.KeyF6:           KeyF6,
	ebiten.KeyF7:           KeyF7,
	ebiten.KeyF8:           KeyF8,
	ebiten.KeyF9:           KeyF9,
	ebiten.KeyF10:          KeyF10,
	ebiten.KeyF11:          KeyF11,
	ebiten.KeyF12:          KeyF12,
	ebiten.KeyPrintScreen:  KeyPrintScreen,
	ebiten.KeyScrollLock:   KeyScrollLock,
	ebiten.KeyPause:        KeyPauseBreak,
	ebiten.KeyInsert:       KeyInsert,
	ebiten.KeyHome:         KeyHome,
	ebiten.KeyPageUp:       KeyPageUp,
	ebiten.KeyEnd:          KeyEnd,
	ebiten.KeyPageDown:     KeyPageDown,
	ebiten.KeyArrowRight:   KeyArrowRight,
	ebiten.KeyArrowLeft:    KeyArrowLeft,
	ebiten.KeyArrowDown:    KeyArrowDown,
	ebiten.KeyArrowUp:      KeyArrowUp,

	ebiten.KeyNumLock:        KeyNumpadLock,
	ebiten.KeyNumpadDivide:   KeyNumpadDivide,
	ebiten.KeyNumpadMultiply: KeyNumpadMultiply,
	ebiten.KeyNumpadSubtract: KeyNumpadSubtract,
	ebiten.KeyNumpadAdd:      KeyNumpadAdd,
	ebiten.KeyNumpadEnter:    KeyNumpadEnter,
	ebiten.KeyNumpad0:        KeyNumpad0,
	ebiten.KeyNumpad1:        KeyNumpad1,
	ebiten.KeyNumpad2:        KeyNumpad2,
	ebiten.KeyNumpad3:        KeyNumpad3,
	ebiten.KeyNumpad4:        KeyNumpad4,
	ebiten.KeyNumpad5:        KeyNumpad5,
	ebiten.KeyNumpad6:        KeyNumpad6,
	ebiten.KeyNumpad7:        KeyNumpad7,
	ebiten.KeyNumpad8:        KeyNumpad8,
	ebiten.KeyNumpad9:        KeyNumpad9,
	ebiten.KeyNumpadDecimal:  KeyNumpadPeriod,

	ebiten.KeyControlLeft:  KeyLControl,
	ebiten.KeyShiftLeft:    KeyLShift,
	ebiten.KeyAltLeft:      KeyLAlt,
	ebiten.KeyMetaLeft:     KeyLWin,
	ebiten.KeyControlRight: KeyRControl,
	ebiten.KeyShiftRight:   KeyRShift,
	ebiten.KeyAltRight:     KeyRAltGr,
	ebiten.KeyMetaRight:    KeyRWin,
	ebiten.KeyContextMenu:  KeyApps,
}

// translateKey reports false when the key falls back to KeyUnmapped.
func translateKey(k ebiten.Key) (KeyCode, bool) {
	if code, ok := ebitenKeys[k]; ok {
		return code, true
	}
	return KeyUnmapped, false
}
