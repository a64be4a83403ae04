// boot.go - Start-up sequence for the OS and frontend threads

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
	"runtime"

	"github.com/retroenv/retrogolib/log"
)

// Boot wires the two threads together. The frontend owns the main
// goroutine; the OS gets a goroutine locked to its own thread that waits
// for the frontend to finish building the glyph cache.
type Boot struct {
	logger   *log.Logger
	machine  *Machine
	bios     *BIOS
	guest    GuestRuntime
	frontend Frontend
	signal   *bootSignal
	checkABI func() error
}

func NewBoot(m *Machine, guest GuestRuntime, frontend Frontend) *Boot {
	return &Boot{
		logger:   m.Logger(),
		machine:  m,
		bios:     NewBIOS(m),
		guest:    guest,
		frontend: frontend,
		signal:   newBootSignal(),
		checkABI: checkTableLayout,
	}
}

func (b *Boot) BIOS() *BIOS { return b.bios }

// Run loads the OS, starts its thread and hands the main goroutine to the
// frontend. It returns when the frontend stops; the caller then exits.
func (b *Boot) Run() error {
	if err := b.checkABI(); err != nil {
		return err
	}
	bindBIOS(b.bios)
	if err := b.guest.Open(); err != nil {
		return err
	}
	b.logger.Info("OS loaded", log.String("os", b.guest.Name()))

	b.machine.state.set(b.logger, BootAwaitingGuest)
	go b.guestThread()

	return b.frontend.Run(b.ready)
}

// ready is called by the frontend once its glyph cache exists. Extra calls
// have no effect.
func (b *Boot) ready() {
	if b.signal.Fire() {
		b.logger.Debug("Frontend ready, releasing OS thread")
	}
}

func (b *Boot) guestThread() {
	// The OS may keep thread-local state and never gives the thread back.
	runtime.LockOSThread()
	b.signal.Wait()
	if !b.machine.state.set(b.logger, BootRunning) {
		return
	}
	defer b.machine.Exit(1, "OS returned")
	err := b.guest.Enter(b.bios)
	if b.machine.State() == BootTerminating {
		// power_control already shut the machine down.
		return
	}
	b.logger.Error("OS stopped", log.String("os", b.guest.Name()), log.Err(err))
}
