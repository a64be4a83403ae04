// video_backend_terminal.go - ANSI terminal frontend

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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiClear      = "\x1b[2J"
	ansiReset      = "\x1b[0m"
)

// TerminalOutput draws text modes as 24-bit ANSI text. Each frame is
// built in full and only written when it differs from the last one.
type TerminalOutput struct {
	m       *Machine
	logger  *log.Logger
	cfg     FrontendConfig
	out     io.Writer
	outFd   int
	frame   bytes.Buffer
	last    []byte
	frameNo uint64
	quit    atomic.Bool
	sizeErr bool
}

func init() {
	compiledFeatures = append(compiledFeatures, "video:terminal")
}

func NewTerminalFrontend(m *Machine, cfg FrontendConfig) (Frontend, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, &VideoError{
			Operation: "frontend creation",
			Details:   "the terminal frontend needs an interactive terminal on stdin and stdout",
		}
	}
	return newTerminalOutput(m, cfg, os.Stdout, fd), nil
}

func newTerminalOutput(m *Machine, cfg FrontendConfig, out io.Writer, fd int) *TerminalOutput {
	return &TerminalOutput{m: m, logger: cfg.Logger, cfg: cfg, out: out, outFd: fd}
}

// handleInput receives raw stdin chunks from the TerminalHost.
func (t *TerminalOutput) handleInput(chunk []byte) {
	evs, quit := terminalInputToEvents(chunk)
	t.m.HID.PushAll(evs)
	if quit {
		t.quit.Store(true)
	}
}

func (t *TerminalOutput) Run(ready func()) error {
	ctx := app.Context()

	host := NewTerminalHost(t.handleInput)
	if err := host.Start(); err != nil {
		return err
	}
	defer host.Stop()

	w := bufio.NewWriter(t.out)
	fmt.Fprint(w, ansiHideCursor+ansiClear)
	_ = w.Flush()
	defer func() {
		fmt.Fprint(w, ansiReset+ansiShowCursor+"\r\n")
		_ = w.Flush()
	}()

	// No glyph images to build; CP437 runes are a static table.
	ready()

	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.RefreshRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Signal received, leaving terminal frontend")
			return nil
		case <-ticker.C:
		}
		if t.quit.Load() {
			return nil
		}
		if t.renderFrame() {
			if _, err := w.Write(t.frame.Bytes()); err != nil {
				return &VideoError{Operation: "terminal write", Details: "stdout", Err: err}
			}
			if err := w.Flush(); err != nil {
				return &VideoError{Operation: "terminal write", Details: "stdout", Err: err}
			}
		}
	}
}

// renderFrame builds the ANSI text for the current frame into t.frame and
// reports whether it needs writing.
func (t *TerminalOutput) renderFrame() bool {
	t.frameNo++
	l, ok := textLayout(t.m.Video.Mode())
	if !ok {
		return false
	}
	cols, rows := l.Cols, l.Rows
	if w, h, err := term.GetSize(t.outFd); err == nil {
		if (w < cols || h < rows) && !t.sizeErr {
			t.logger.Warn("Terminal smaller than the text mode, clipping",
				log.Int("cols", w), log.Int("rows", h),
				log.Int("need_cols", cols), log.Int("need_rows", rows))
			t.sizeErr = true
		}
		cols, rows = min(cols, w), min(rows, h)
	}

	t.frame.Reset()
	t.m.Frame.BeginFrame()
	lastAttr := -1
	for cell := range textCells(t.m.Frame, l) {
		if cell.Col >= cols || cell.Row >= rows {
			continue
		}
		if cell.Col == 0 {
			t.frame.WriteString("\x1b[")
			t.frame.WriteString(strconv.Itoa(cell.Row + 1))
			t.frame.WriteString(";1H")
		}
		if int(cell.Attr) != lastAttr {
			t.writeColours(cell.Attr)
			lastAttr = int(cell.Attr)
		}
		r := ' '
		if glyphVisible(cell.Attr, t.frameNo) {
			r = cp437Runes[cell.Glyph]
		}
		t.frame.WriteRune(r)
	}
	// Attributes can change colour without changing bytes, so compare
	// the final text rather than video RAM.
	if bytes.Equal(t.frame.Bytes(), t.last) {
		return false
	}
	t.last = append(t.last[:0], t.frame.Bytes()...)
	return true
}

func (t *TerminalOutput) writeColours(a Attr) {
	fg := t.m.Palette.At(a.Foreground())
	bg := t.m.Palette.At(a.Background())
	fmt.Fprintf(&t.frame, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm",
		fg.Red(), fg.Green(), fg.Blue(), bg.Red(), bg.Green(), bg.Blue())
}
