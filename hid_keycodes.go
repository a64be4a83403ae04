// hid_keycodes.go - Neotron key codes and HID events

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

import "fmt"

// KeyCode is a physical key in the OS's keyboard vocabulary. Values are
// part of the binary contract and follow UK PC keyboard scan order.
type KeyCode uint8

const (
	KeyEscape KeyCode = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeySysRq
	KeyScrollLock
	KeyPauseBreak
	KeyOem8
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyOemMinus
	KeyOemPlus
	KeyBackspace
	KeyInsert
	KeyHome
	KeyPageUp
	KeyNumpadLock
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyOem4
	KeyOem6
	KeyOem5
	KeyOem7
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyOem1
	KeyOem3
	KeyReturn
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyLShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyOemComma
	KeyOemPeriod
	KeyOem2
	KeyRShift
	KeyArrowUp
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpadEnter
	KeyLControl
	KeyLWin
	KeyLAlt
	KeySpacebar
	KeyRAltGr
	KeyRWin
	KeyApps
	KeyRControl
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeyNumpad0
	KeyNumpadPeriod
	KeyOem9
	KeyOem10
	KeyOem11
	KeyOem12
	KeyOem13
	KeyPrevTrack
	KeyNextTrack
	KeyMute
	KeyCalculator
	KeyPlay
	KeyStop
	KeyVolumeDown
	KeyVolumeUp
	KeyWWWHome

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	"Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10",
	"F11", "F12", "PrintScreen", "SysRq", "ScrollLock", "PauseBreak", "Oem8",
	"Key1", "Key2", "Key3", "Key4", "Key5", "Key6", "Key7", "Key8", "Key9",
	"Key0", "OemMinus", "OemPlus", "Backspace", "Insert", "Home", "PageUp",
	"NumpadLock", "NumpadDivide", "NumpadMultiply", "NumpadSubtract", "Tab",
	"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "Oem4", "Oem6", "Oem5",
	"Oem7", "Delete", "End", "PageDown", "Numpad7", "Numpad8", "Numpad9",
	"NumpadAdd", "CapsLock", "A", "S", "D", "F", "G", "H", "J", "K", "L",
	"Oem1", "Oem3", "Return", "Numpad4", "Numpad5", "Numpad6", "LShift", "Z",
	"X", "C", "V", "B", "N", "M", "OemComma", "OemPeriod", "Oem2", "RShift",
	"ArrowUp", "Numpad1", "Numpad2", "Numpad3", "NumpadEnter", "LControl",
	"LWin", "LAlt", "Spacebar", "RAltGr", "RWin", "Apps", "RControl",
	"ArrowLeft", "ArrowDown", "ArrowRight", "Numpad0", "NumpadPeriod", "Oem9",
	"Oem10", "Oem11", "Oem12", "Oem13", "PrevTrack", "NextTrack", "Mute",
	"Calculator", "Play", "Stop", "VolumeDown", "VolumeUp", "WWWHome",
}

func (k KeyCode) String() string {
	if k < keyCodeCount {
		return keyCodeNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k))
}

// KeyUnmapped is delivered for host keys with no Neotron equivalent.
const KeyUnmapped = KeyX
