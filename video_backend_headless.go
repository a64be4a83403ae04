//go:build headless

package main

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

// HeadlessOutput stands in for the window in headless builds. It composes
// frames in software so blink timing and palette reads behave as they do
// on screen, and keeps the latest frame for inspection.
type HeadlessOutput struct {
	m      *Machine
	logger *log.Logger
	cfg    FrontendConfig

	compositor *TextCompositor
	frameCount atomic.Uint64

	mu   sync.Mutex
	last *image.RGBA

	stop chan struct{}
	once sync.Once
}

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless")
}

func NewEbitenFrontend(m *Machine, cfg FrontendConfig) (Frontend, error) {
	return &HeadlessOutput{
		m:      m,
		logger: cfg.Logger,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}, nil
}

func (h *HeadlessOutput) Run(ready func()) error {
	h.compositor = NewTextCompositor(NewGlyphCache(h.m.Palette), h.m.Palette)
	ready()

	ctx := app.Context()
	interval := time.Second / time.Duration(h.cfg.RefreshRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Signal received, leaving headless frontend")
			return nil
		case <-h.stop:
			return nil
		case <-ticker.C:
			h.renderFrame()
		}
	}
}

// renderFrame composes under mu because the compositor reuses its image
// and LastFrame copies from it.
func (h *HeadlessOutput) renderFrame() {
	n := h.frameCount.Add(1)
	h.mu.Lock()
	defer h.mu.Unlock()
	if img, ok := h.compositor.Render(h.m.Frame, h.m.Video.Mode(), n); ok {
		h.last = img
	}
}

// Close ends Run as a window close would.
func (h *HeadlessOutput) Close() {
	h.once.Do(func() { close(h.stop) })
}

func (h *HeadlessOutput) FrameCount() uint64 {
	return h.frameCount.Load()
}

// LastFrame returns a copy of the most recent composed frame, or nil.
func (h *HeadlessOutput) LastFrame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	cp := image.NewRGBA(h.last.Bounds())
	copy(cp.Pix, h.last.Pix)
	return cp
}
