// video_interface.go - Frontend interface and registry

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

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// VideoError provides detailed error context for presentation failures
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error { return e.Err }

// Frontend owns the main goroutine: it presents video RAM and feeds host
// input into the HID queue. Run calls ready exactly when the OS may start
// and returns when the user closes the display.
type Frontend interface {
	Run(ready func()) error
}

// FrontendConfig contains the host-side display settings
type FrontendConfig struct {
	Scale       int
	RefreshRate int
	Logger      *log.Logger
}

// Predefined frontend types
const (
	FRONTEND_EBITEN   = "ebiten"   // Window with GPU-drawn glyphs
	FRONTEND_TERMINAL = "terminal" // ANSI text in the controlling terminal
)

var frontendNames = []string{FRONTEND_EBITEN, FRONTEND_TERMINAL}

// NewFrontend creates the presentation backend for a machine
func NewFrontend(kind string, m *Machine, cfg FrontendConfig) (Frontend, error) {
	if cfg.Scale <= 0 {
		cfg.Scale = DEFAULT_SCALE
	}
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = TARGET_TPS
	}
	if cfg.Logger == nil {
		cfg.Logger = m.Logger()
	}
	switch kind {
	case FRONTEND_EBITEN:
		return NewEbitenFrontend(m, cfg)
	case FRONTEND_TERMINAL:
		return NewTerminalFrontend(m, cfg)
	}
	return nil, &VideoError{
		Operation: "frontend creation",
		Details:   fmt.Sprintf("unknown frontend type: %q", kind),
	}
}
