//go:build darwin || freebsd || linux

// guest_shared_object.go - Guest OS loaded from a shared library

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

/*
#include "bios_abi.h"
*/
import "C"

import (
	"github.com/ebitengine/purego"
)

func init() {
	compiledFeatures = append(compiledFeatures, "guest:shared-object")
}

const guestEntrySymbol = "os_main"

// sharedObjectGuest is an OS built as a shared library exporting
// os_main(const bios_api_t *).
type sharedObjectGuest struct {
	path   string
	handle uintptr
	entry  uintptr
}

func newSharedObjectGuest(path string) *sharedObjectGuest {
	return &sharedObjectGuest{path: path}
}

func (g *sharedObjectGuest) Name() string { return g.path }

func (g *sharedObjectGuest) Open() error {
	h, err := purego.Dlopen(g.path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return &GuestError{Operation: "load", Details: g.path, Err: err}
	}
	sym, err := purego.Dlsym(h, guestEntrySymbol)
	if err != nil {
		purego.Dlclose(h)
		return &GuestError{Operation: "load", Details: "no " + guestEntrySymbol + " in " + g.path, Err: err}
	}
	g.handle, g.entry = h, sym
	return nil
}

// Enter must run on a locked OS thread; the OS keeps it for its lifetime.
func (g *sharedObjectGuest) Enter(b *BIOS) error {
	if g.entry == 0 {
		return &GuestError{Operation: "enter", Details: g.path + " is not open"}
	}
	C.neotron_enter_os(C.uintptr_t(g.entry))
	return &GuestError{Operation: "run", Details: guestEntrySymbol + " returned"}
}
