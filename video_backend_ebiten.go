//go:build !headless

// video_backend_ebiten.go - Ebiten windowed frontend

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
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
)

// EbitenOutput is the windowed frontend. Glyphs are uploaded once as GPU
// atlases and every cell is drawn as a background rectangle plus one
// sub-image.
type EbitenOutput struct {
	m      *Machine
	logger *log.Logger
	cfg    FrontendConfig
	ready  func()

	cache  *GlyphCache
	slots  map[int][]*ebiten.Image
	mode   Mode
	width  int
	height int

	// lines holds the raster of a line-doubled mode before it is
	// stretched onto the screen.
	lines *ebiten.Image

	frameCount uint64

	pressed  []ebiten.Key
	released []ebiten.Key
	unmapped map[ebiten.Key]bool

	bufferMutex   sync.RWMutex
	showStatusBar bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

func NewEbitenFrontend(m *Machine, cfg FrontendConfig) (Frontend, error) {
	mode := m.Video.Mode()
	return &EbitenOutput{
		m:        m,
		logger:   cfg.Logger,
		cfg:      cfg,
		mode:     mode,
		width:    mode.HorizontalPixels(),
		height:   displayLines(mode),
		unmapped: make(map[ebiten.Key]bool),
	}, nil
}

func (eo *EbitenOutput) Run(ready func()) error {
	eo.ready = ready
	ebiten.SetWindowTitle(WINDOW_TITLE)
	ebiten.SetWindowSize(eo.width*eo.cfg.Scale, eo.height*eo.cfg.Scale)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(eo.cfg.RefreshRate)

	if err := ebiten.RunGame(eo); err != nil && !errors.Is(err, ebiten.Termination) {
		return &VideoError{Operation: "run", Details: "ebiten game loop", Err: err}
	}
	return nil
}

// buildGlyphCache uploads every slot of both fonts. It runs inside the
// game loop because ebiten images need the graphics driver.
func (eo *EbitenOutput) buildGlyphCache() {
	eo.cache = NewGlyphCache(eo.m.Palette)
	eo.slots = make(map[int][]*ebiten.Image)
	for _, h := range eo.cache.Heights() {
		atlas, _ := eo.cache.Atlas(h)
		img := ebiten.NewImageFromImage(atlas.Image)
		slots := make([]*ebiten.Image, GLYPH_SLOTS)
		for s := range slots {
			slots[s] = img.SubImage(atlas.SlotRect(s)).(*ebiten.Image)
		}
		eo.slots[h] = slots
	}
	eo.logger.Debug("Glyph cache built", log.Int("slots", GLYPH_SLOTS*len(eo.slots)))
}

func (eo *EbitenOutput) Update() error {
	if eo.cache == nil {
		eo.buildGlyphCache()
		eo.ready()
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if mode := eo.m.Video.Mode(); mode != eo.mode {
		eo.applyMode(mode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.bufferMutex.Lock()
		eo.showStatusBar = !eo.showStatusBar
		eo.bufferMutex.Unlock()
	}
	eo.handleKeyboardInput()
	return nil
}

// applyMode resizes the window to the new raster at the same scale.
func (eo *EbitenOutput) applyMode(mode Mode) {
	eo.logger.Debug("Video mode changed", log.Stringer("from", eo.mode), log.Stringer("to", mode))
	eo.mode = mode
	eo.width, eo.height = mode.HorizontalPixels(), displayLines(mode)
	if !ebiten.IsFullscreen() {
		ebiten.SetWindowSize(eo.width*eo.cfg.Scale, eo.height*eo.cfg.Scale)
	}
}

// handleKeyboardInput queues this tick's presses before its releases.
func (eo *EbitenOutput) handleKeyboardInput() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	eo.pressed = inpututil.AppendJustPressedKeys(eo.pressed[:0])
	eo.released = inpututil.AppendJustReleasedKeys(eo.released[:0])

	for _, k := range eo.pressed {
		// Clipboard paste: Ctrl+Shift+V
		if ctrl && shift && k == ebiten.KeyV {
			eo.handleClipboardPaste()
			continue
		}
		if k == ebiten.KeyF12 {
			continue
		}
		eo.m.HID.Push(KeyPressEvent(eo.keyCode(k)))
	}
	for _, k := range eo.released {
		if k == ebiten.KeyF12 || (ctrl && shift && k == ebiten.KeyV) {
			continue
		}
		eo.m.HID.Push(KeyReleaseEvent(eo.keyCode(k)))
	}
}

func (eo *EbitenOutput) keyCode(k ebiten.Key) KeyCode {
	code, ok := translateKey(k)
	if !ok && !eo.unmapped[k] {
		eo.unmapped[k] = true
		eo.logger.Debug("Host key has no Neotron equivalent", log.String("key", k.String()),
			log.Stringer("delivered_as", code))
	}
	return code
}

func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	return raw[:max]
}

// pasteEvents turns clipboard text into the key strokes that would type it.
func pasteEvents(raw []byte) []HIDEvent {
	return textToEvents(capPasteText(normalizePasteText(raw), PASTE_MAX_BYTES))
}

func (eo *EbitenOutput) handleClipboardPaste() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
		if !eo.clipboardOK {
			eo.logger.Warn("Clipboard unavailable, paste disabled")
		}
	})
	if !eo.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	evs := pasteEvents(data)
	eo.m.HID.PushAll(evs)
	eo.logger.Debug("Pasted clipboard", log.Int("bytes", len(data)), log.Int("events", len(evs)))
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.frameCount++
	l, ok := textLayout(eo.mode)
	if !ok {
		return
	}
	slots, ok := eo.slots[l.GlyphHeight]
	if !ok {
		return
	}

	target := screen
	if eo.mode.IsVertDouble() {
		if eo.lines == nil || eo.lines.Bounds().Dx() != eo.width || eo.lines.Bounds().Dy() != eo.mode.VerticalLines() {
			eo.lines = ebiten.NewImage(eo.width, eo.mode.VerticalLines())
		}
		eo.lines.Clear()
		target = eo.lines
	}

	eo.m.Frame.BeginFrame()
	var bgs [8]color.RGBA
	for i := range bgs {
		bgs[i] = rgbaOf(eo.m.Palette.At(uint8(i)))
	}
	op := &ebiten.DrawImageOptions{}
	for cell := range textCells(eo.m.Frame, l) {
		x := float64(cell.Col * FONT_WIDTH)
		y := float64(cell.Row * l.GlyphHeight)
		ebitenutil.DrawRect(target, x, y, FONT_WIDTH, float64(l.GlyphHeight), bgs[cell.Attr.Background()])
		if !glyphVisible(cell.Attr, eo.frameCount) {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(x, y)
		target.DrawImage(slots[GlyphSlot(cell.Glyph, cell.Attr.Foreground())], op)
	}
	if target != screen {
		op.GeoM.Reset()
		op.GeoM.Scale(1, 2)
		screen.DrawImage(target, op)
	}

	eo.bufferMutex.RLock()
	showStatusBar := eo.showStatusBar
	eo.bufferMutex.RUnlock()
	if showStatusBar {
		eo.drawRuntimeStatusBar(screen)
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

