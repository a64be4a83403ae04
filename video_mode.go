// video_mode.go - Video mode negotiation

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

import "sync/atomic"

// supportedModes is the full set of modes the renderer can draw.
var supportedModes = [...]Mode{
	NewMode(Timing640x480, FormatText8x16),
	NewMode(Timing640x480, FormatText8x8),
	NewMode(Timing640x400, FormatText8x16),
	NewMode(Timing640x400, FormatText8x8),
}

// StartupMode is 80x30 text on a 640x480 raster.
var StartupMode = NewMode(Timing640x480, FormatText8x16)

// IsSupportedMode checks timing and format only. Line doubling may be
// combined with any of them.
func IsSupportedMode(m Mode) bool {
	base := NewMode(m.Timing(), m.Format())
	for _, s := range supportedModes {
		if s == base {
			return true
		}
	}
	return false
}

// VideoState is the current mode, readable from both threads.
type VideoState struct {
	mode    atomic.Uint32
	changes atomic.Uint64
}

func NewVideoState() *VideoState {
	v := &VideoState{}
	v.mode.Store(uint32(StartupMode))
	return v
}

func (v *VideoState) Mode() Mode {
	return Mode(v.mode.Load())
}

// SetMode stores m if it is supported. Framebuffer contents are left
// untouched; the OS is expected to redraw.
func (v *VideoState) SetMode(m Mode) error {
	if !IsSupportedMode(m) {
		return UnsupportedConfiguration(uint16(m))
	}
	if Mode(v.mode.Swap(uint32(m))) != m {
		v.changes.Add(1)
	}
	return nil
}

// Generation increments every time the mode actually changes.
func (v *VideoState) Generation() uint64 {
	return v.changes.Load()
}

// NeedsVRAM is always false: the framebuffer covers the largest mode.
func (v *VideoState) NeedsVRAM(Mode) bool {
	return false
}

// displayLines is the window height in host pixels. Line-doubled modes
// show every raster line twice.
func displayLines(m Mode) int {
	if m.IsVertDouble() {
		return m.VerticalLines() * 2
	}
	return m.VerticalLines()
}
