//go:build !(darwin || freebsd || linux)

package main

import "runtime"

// Shared-object guests need dlopen, which purego only offers on Unix.
type sharedObjectGuest struct {
	path string
}

func newSharedObjectGuest(path string) *sharedObjectGuest {
	return &sharedObjectGuest{path: path}
}

func (g *sharedObjectGuest) Name() string { return g.path }

func (g *sharedObjectGuest) Open() error {
	return &GuestError{Operation: "load", Details: "shared-object guests are not supported on " + runtime.GOOS}
}

func (g *sharedObjectGuest) Enter(*BIOS) error {
	return g.Open()
}
