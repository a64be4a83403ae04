// video_framebuffer.go - Off-heap video RAM and frame snapshots

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

import "unsafe"

// FrameStore is video RAM as seen by the renderer. The OS writes through
// the raw base pointer, so writes from the host side are rare (boot clear
// and tests).
type FrameStore interface {
	ReadAt(off int) byte
	WriteAt(off int, b byte)
	Len() int
	Base() unsafe.Pointer
	// BeginFrame is called once before the renderer reads a frame.
	BeginFrame()
}

// rawFramebuffer reads straight from shared memory. A glyph and its
// attribute can tear for a frame when the OS writes mid-scan.
type rawFramebuffer struct {
	mem []byte
}

func newRawFramebuffer(mem []byte) *rawFramebuffer {
	return &rawFramebuffer{mem: mem}
}

func (f *rawFramebuffer) ReadAt(off int) byte {
	if uint(off) >= uint(len(f.mem)) {
		violate("framebuffer read at offset %d (size %d)", off, len(f.mem))
	}
	return f.mem[off]
}

func (f *rawFramebuffer) WriteAt(off int, b byte) {
	if uint(off) >= uint(len(f.mem)) {
		violate("framebuffer write at offset %d (size %d)", off, len(f.mem))
	}
	f.mem[off] = b
}

func (f *rawFramebuffer) Len() int             { return len(f.mem) }
func (f *rawFramebuffer) Base() unsafe.Pointer { return unsafe.Pointer(&f.mem[0]) }
func (f *rawFramebuffer) BeginFrame()          {}

// snapshotFramebuffer copies shared memory once per frame so every cell
// of one frame comes from one pass over video RAM. Writes still land in
// shared memory. BeginFrame and ReadAt must be called from the render
// goroutine.
type snapshotFramebuffer struct {
	rawFramebuffer
	shot  []byte
	valid bool
}

func newSnapshotFramebuffer(mem []byte) *snapshotFramebuffer {
	return &snapshotFramebuffer{
		rawFramebuffer: rawFramebuffer{mem: mem},
		shot:           make([]byte, len(mem)),
	}
}

func (f *snapshotFramebuffer) BeginFrame() {
	copy(f.shot, f.mem)
	f.valid = true
}

func (f *snapshotFramebuffer) ReadAt(off int) byte {
	if uint(off) >= uint(len(f.mem)) {
		violate("framebuffer read at offset %d (size %d)", off, len(f.mem))
	}
	if !f.valid {
		return f.mem[off]
	}
	return f.shot[off]
}

// clearText fills cols*rows cells with glyph and attr.
func clearText(fb FrameStore, cols, rows int, glyph byte, attr Attr) {
	for i := 0; i < cols*rows; i++ {
		fb.WriteAt(i*2, glyph)
		fb.WriteAt(i*2+1, byte(attr))
	}
}
