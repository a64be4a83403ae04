// boot_signal.go - One-shot handshake between frontend and OS thread

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
	"sync"
	"sync/atomic"

	"github.com/retroenv/retrogolib/log"
)

type BootState uint32

const (
	BootInitializing BootState = iota
	BootAwaitingGuest
	BootRunning
	BootTerminating
)

func (s BootState) String() string {
	switch s {
	case BootInitializing:
		return "initializing"
	case BootAwaitingGuest:
		return "awaiting-guest-start"
	case BootRunning:
		return "running"
	case BootTerminating:
		return "terminating"
	}
	return "unknown"
}

type bootStateValue struct {
	v atomic.Uint32
}

func (b *bootStateValue) get() BootState { return BootState(b.v.Load()) }

// set moves forward only; Terminating is final.
func (b *bootStateValue) set(logger *log.Logger, s BootState) bool {
	for {
		cur := b.v.Load()
		if BootState(cur) >= s {
			return false
		}
		if b.v.CompareAndSwap(cur, uint32(s)) {
			logger.Debug("Boot state", log.Stringer("from", BootState(cur)), log.Stringer("to", s))
			return true
		}
	}
}

// bootSignal releases the OS thread once the renderer is ready. It can
// fire only once; later calls are ignored.
type bootSignal struct {
	once  sync.Once
	ready chan struct{}
	fired atomic.Bool
}

func newBootSignal() *bootSignal {
	return &bootSignal{ready: make(chan struct{})}
}

// Fire reports whether this call was the one that released the waiter.
func (s *bootSignal) Fire() bool {
	first := false
	s.once.Do(func() {
		first = true
		s.fired.Store(true)
		close(s.ready)
	})
	return first
}

func (s *bootSignal) Wait() {
	<-s.ready
}

func (s *bootSignal) Done() <-chan struct{} {
	return s.ready
}

func (s *bootSignal) Fired() bool {
	return s.fired.Load()
}
