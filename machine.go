// machine.go - Shared machine state for the BIOS

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
	"os"
	"sync"
	"time"
	"unsafe"

	"github.com/retroenv/retrogolib/log"
)

// Machine is the emulated Neotron: everything the capability table
// touches lives here.
type Machine struct {
	logger *log.Logger

	Palette *Palette
	Video   *VideoState
	Frame   FrameStore
	Disk    *BlockDevice
	HID     *HIDQueue

	// bootTime is fixed in NewMachine and never written again.
	bootTime time.Time

	regionOnce sync.Once
	region     []byte
	regionErr  error

	exitOnce sync.Once
	exitFunc func(code int)

	state bootStateValue
	stats runtimeCounters
}

type MachineConfig struct {
	DiskPath         string
	DiskReadOnly     bool
	SnapshotFrame    bool
	ExitFunc         func(code int)
	FramebufferAlloc func(size int) ([]byte, error)
}

func NewMachine(logger *log.Logger, cfg MachineConfig) (*Machine, error) {
	alloc := cfg.FramebufferAlloc
	if alloc == nil {
		alloc = allocArena
	}
	mem, err := alloc(FRAMEBUFFER_SIZE)
	if err != nil {
		return nil, fmt.Errorf("allocating video RAM: %w", err)
	}
	if len(mem) != FRAMEBUFFER_SIZE {
		return nil, fmt.Errorf("video RAM is %d bytes, want %d", len(mem), FRAMEBUFFER_SIZE)
	}

	var fb FrameStore
	if cfg.SnapshotFrame {
		fb = newSnapshotFramebuffer(mem)
	} else {
		fb = newRawFramebuffer(mem)
	}

	m := &Machine{
		logger:   logger,
		Palette:  NewPalette(),
		Video:    NewVideoState(),
		Frame:    fb,
		Disk:     NewBlockDevice(logger),
		HID:      NewHIDQueue(),
		bootTime: time.Now(),
		exitFunc: cfg.ExitFunc,
	}
	if m.exitFunc == nil {
		m.exitFunc = os.Exit
	}
	clearText(fb, BOOT_TEXT_COLS, BOOT_TEXT_ROWS, ' ', NewAttr(TextColourWhite, TextColourBlack, false))

	if cfg.DiskPath != "" {
		if err := m.Disk.Attach(cfg.DiskPath, cfg.DiskReadOnly); err != nil {
			return nil, err
		}
		logger.Info("Disk image attached",
			log.String("path", cfg.DiskPath),
			log.String("access", accessLabel(m.Disk)))
	}
	return m, nil
}

func accessLabel(d *BlockDevice) string {
	info, ok := d.Info(BLOCK_DEVICE_ID)
	switch {
	case !ok:
		return "none"
	case info.ReadOnly:
		return "read-only"
	default:
		return "read-write"
	}
}

func (m *Machine) Logger() *log.Logger { return m.logger }

func (m *Machine) State() BootState { return m.state.get() }

// Uptime is the time since the machine was built.
func (m *Machine) Uptime() time.Duration {
	return time.Since(m.bootTime)
}

// FramebufferBase is the address the OS draws into.
func (m *Machine) FramebufferBase() unsafe.Pointer {
	return m.Frame.Base()
}

// RAMRegion returns memory region 0, allocating it on first use. It is
// never released.
func (m *Machine) RAMRegion() ([]byte, error) {
	m.regionOnce.Do(func() {
		m.region, m.regionErr = allocArena(MEMORY_REGION_RAM_SIZE)
		if m.regionErr == nil {
			m.logger.Debug("Memory region 0 allocated",
				log.Hex("start", uintptr(unsafe.Pointer(&m.region[0]))),
				log.Int("length", len(m.region)))
		}
	})
	return m.region, m.regionErr
}

// Exit tears the whole process down. Nothing survives it, including the
// OS thread, which has no way to be told to stop.
func (m *Machine) Exit(code int, reason string) {
	m.exitOnce.Do(func() {
		m.state.set(m.logger, BootTerminating)
		m.logger.Info("Shutting down", log.String("reason", reason), log.Int("status", code))
		if err := m.Disk.Close(); err != nil {
			m.logger.Error("Closing disk image failed", log.Err(err))
		}
		m.exitFunc(code)
	})
}
