// guest_runtime.go - Loading and entering the guest OS

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
	"sort"
	"strings"
)

// GuestRuntime is a loadable OS. Open resolves the entry point on the main
// goroutine so load failures surface before any window opens; Enter runs
// the OS on the calling thread and only returns if the OS does.
type GuestRuntime interface {
	Name() string
	Open() error
	Enter(b *BIOS) error
}

const builtinGuestPrefix = "builtin:"

// builtinGuests are OS images written in Go, selected with -os builtin:<name>.
var builtinGuests = map[string]func(*BIOS) error{
	"demo": runDemoGuest,
}

func builtinGuestNames() []string {
	names := make([]string, 0, len(builtinGuests))
	for n := range builtinGuests {
		names = append(names, builtinGuestPrefix+n)
	}
	sort.Strings(names)
	return names
}

// NewGuestRuntime picks a runtime for the -os argument.
func NewGuestRuntime(target string) (GuestRuntime, error) {
	if target == "" {
		return nil, &GuestError{Operation: "load", Details: "no OS given"}
	}
	if name, ok := strings.CutPrefix(target, builtinGuestPrefix); ok {
		run, ok := builtinGuests[name]
		if !ok {
			return nil, &GuestError{
				Operation: "load",
				Details:   fmt.Sprintf("unknown built-in OS %q (have %s)", name, strings.Join(builtinGuestNames(), ", ")),
			}
		}
		return newBuiltinGuest(target, run), nil
	}
	return newSharedObjectGuest(target), nil
}

// builtinGuest runs a Go function as the OS.
type builtinGuest struct {
	name string
	run  func(*BIOS) error
}

func newBuiltinGuest(name string, run func(*BIOS) error) *builtinGuest {
	return &builtinGuest{name: name, run: run}
}

func (g *builtinGuest) Name() string { return g.name }
func (g *builtinGuest) Open() error  { return nil }

func (g *builtinGuest) Enter(b *BIOS) error {
	if err := g.run(b); err != nil {
		return &GuestError{Operation: "run", Details: g.name, Err: err}
	}
	return &GuestError{Operation: "run", Details: g.name + " returned"}
}
