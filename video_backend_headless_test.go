//go:build headless

package main

import (
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/log"
)

func TestHeadlessOutput_RendersUntilClosed(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	fe, err := NewFrontend(FRONTEND_EBITEN, m, FrontendConfig{Logger: log.NewTestLogger(t)})
	if err != nil {
		t.Fatal(err)
	}
	h := fe.(*HeadlessOutput)
	m.Frame.WriteAt(0, 0xDB)

	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- h.Run(func() { close(ready) }) }()

	<-ready
	deadline := time.After(2 * time.Second)
	for h.FrameCount() < 2 {
		select {
		case <-deadline:
			t.Fatal("no frames rendered")
		case <-time.After(COMPOSITOR_REFRESH_INTERVAL):
		}
	}
	h.Close()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	img := h.LastFrame()
	if img == nil {
		t.Fatal("no frame kept")
	}
	if got := img.RGBAAt(0, 0); got != rgbaOf(m.Palette.At(TextColourWhite)) {
		t.Fatalf("pixel = %v, want white block", got)
	}
}

func TestHeadlessOutput_LastFrameIsStable(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	fe, err := NewFrontend(FRONTEND_EBITEN, m, FrontendConfig{Logger: log.NewTestLogger(t)})
	if err != nil {
		t.Fatal(err)
	}
	h := fe.(*HeadlessOutput)
	h.compositor = NewTextCompositor(NewGlyphCache(m.Palette), m.Palette)

	m.Frame.WriteAt(0, 0xDB)
	h.renderFrame()
	first := h.LastFrame()
	white := rgbaOf(m.Palette.At(TextColourWhite))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 20 {
			if img := h.LastFrame(); img == nil {
				t.Error("frame dropped")
				return
			}
		}
	}()
	m.Frame.WriteAt(0, ' ')
	for range 20 {
		h.renderFrame()
	}
	wg.Wait()

	if got := first.RGBAAt(0, 0); got != white {
		t.Fatalf("earlier copy changed to %v", got)
	}
	if got := h.LastFrame().RGBAAt(0, 0); got == white {
		t.Fatal("latest frame still shows the block")
	}
}
