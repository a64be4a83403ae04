// bios_types.go - Carrier types shared with the OS

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

import "fmt"

// Version is packed as major<<16 | minor<<8 | patch.
type Version uint32

func NewVersion(major, minor, patch uint8) Version {
	return Version(uint32(major)<<16 | uint32(minor)<<8 | uint32(patch))
}

func (v Version) Major() uint8 { return uint8(v >> 16) }
func (v Version) Minor() uint8 { return uint8(v >> 8) }
func (v Version) Patch() uint8 { return uint8(v) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

var APIVersion = NewVersion(BIOS_API_MAJOR, BIOS_API_MINOR, BIOS_API_PATCH)

// Time is the BIOS wall clock, relative to 2000-01-01T00:00:00Z.
type Time struct {
	Secs  uint32
	Nsecs uint32
}

type Ticks uint64

// Timing selects the scan-out resolution of a video mode.
type Timing uint8

const (
	Timing640x480 Timing = iota
	Timing640x400
	Timing800x600
)

// Format selects how the framebuffer is interpreted.
type Format uint8

const (
	FormatText8x16 Format = iota
	FormatText8x8
	FormatChunky32
	FormatChunky16
	FormatChunky8
	FormatChunky4
	FormatChunky2
	FormatChunky1
)

func (f Format) String() string {
	switch f {
	case FormatText8x16:
		return "Text8x16"
	case FormatText8x8:
		return "Text8x8"
	case FormatChunky32:
		return "Chunky32"
	case FormatChunky16:
		return "Chunky16"
	case FormatChunky8:
		return "Chunky8"
	case FormatChunky4:
		return "Chunky4"
	case FormatChunky2:
		return "Chunky2"
	case FormatChunky1:
		return "Chunky1"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Mode packs format in bits 0-3, timing in bits 4-6 and vertical
// line doubling in bit 7.
type Mode uint8

const (
	modeFormatMask  = 0x0F
	modeTimingShift = 4
	modeTimingMask  = 0x07
	modeVertDouble  = 0x80
)

func NewMode(t Timing, f Format) Mode {
	return Mode(uint8(f)&modeFormatMask | (uint8(t)&modeTimingMask)<<modeTimingShift)
}

func (m Mode) Format() Format { return Format(uint8(m) & modeFormatMask) }
func (m Mode) Timing() Timing { return Timing((uint8(m) >> modeTimingShift) & modeTimingMask) }
func (m Mode) IsVertDouble() bool {
	return uint8(m)&modeVertDouble != 0
}

func (m Mode) HorizontalPixels() int {
	switch m.Timing() {
	case Timing640x480, Timing640x400:
		return 640
	case Timing800x600:
		return 800
	}
	return 0
}

func (m Mode) VerticalLines() int {
	lines := 0
	switch m.Timing() {
	case Timing640x480:
		lines = 480
	case Timing640x400:
		lines = 400
	case Timing800x600:
		lines = 600
	}
	if m.IsVertDouble() {
		lines /= 2
	}
	return lines
}

// GlyphHeight is the cell height for text formats.
func (m Mode) GlyphHeight() (int, bool) {
	switch m.Format() {
	case FormatText8x16:
		return 16, true
	case FormatText8x8:
		return 8, true
	}
	return 0, false
}

// TextSize returns columns and rows for text formats.
func (m Mode) TextSize() (cols, rows int, ok bool) {
	h, ok := m.GlyphHeight()
	if !ok {
		return 0, 0, false
	}
	return m.HorizontalPixels() / 8, m.VerticalLines() / h, true
}

// FrameSizeBytes is the framebuffer footprint of the mode.
func (m Mode) FrameSizeBytes() int {
	if cols, rows, ok := m.TextSize(); ok {
		return cols * rows * 2
	}
	px := m.HorizontalPixels() * m.VerticalLines()
	switch m.Format() {
	case FormatChunky32:
		return px * 4
	case FormatChunky16:
		return px * 2
	case FormatChunky8:
		return px
	case FormatChunky4:
		return px / 2
	case FormatChunky2:
		return px / 4
	case FormatChunky1:
		return px / 8
	}
	return 0
}

func (m Mode) String() string {
	w, h := m.HorizontalPixels(), m.VerticalLines()
	return fmt.Sprintf("%dx%d %s (0x%02X)", w, h, m.Format(), uint8(m))
}

// Attr is a text cell attribute: fg in bits 0-3, bg in bits 4-6, blink in bit 7.
type Attr uint8

const (
	TextColourBlack = 0
	TextColourWhite = 15
)

func NewAttr(fg, bg uint8, blink bool) Attr {
	a := Attr(fg&0x0F | (bg&0x07)<<4)
	if blink {
		a |= 0x80
	}
	return a
}

func (a Attr) Foreground() uint8 { return uint8(a) & 0x0F }
func (a Attr) Background() uint8 { return (uint8(a) >> 4) & 0x07 }
func (a Attr) Blink() bool       { return uint8(a)&0x80 != 0 }

// RGBColour is packed as 0x00RRGGBB.
type RGBColour uint32

func RGB(r, g, b uint8) RGBColour {
	return RGBColour(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c RGBColour) Red() uint8   { return uint8(c >> 16) }
func (c RGBColour) Green() uint8 { return uint8(c >> 8) }
func (c RGBColour) Blue() uint8  { return uint8(c) }

func (c RGBColour) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// HIDEventKind tags a HIDEvent.
type HIDEventKind uint8

const (
	HIDKeyPress HIDEventKind = iota
	HIDKeyRelease
	HIDMouseInput
)

type HIDEvent struct {
	Kind HIDEventKind
	Key  KeyCode
}

func KeyPressEvent(k KeyCode) HIDEvent   { return HIDEvent{Kind: HIDKeyPress, Key: k} }
func KeyReleaseEvent(k KeyCode) HIDEvent { return HIDEvent{Kind: HIDKeyRelease, Key: k} }

func (e HIDEvent) String() string {
	switch e.Kind {
	case HIDKeyPress:
		return fmt.Sprintf("KeyPress(%s)", e.Key)
	case HIDKeyRelease:
		return fmt.Sprintf("KeyRelease(%s)", e.Key)
	}
	return "MouseInput"
}

type PowerMode uint32

const (
	PowerOff PowerMode = iota
	PowerReset
	PowerBootloader
)

func (p PowerMode) String() string {
	switch p {
	case PowerOff:
		return "Off"
	case PowerReset:
		return "Reset"
	case PowerBootloader:
		return "Bootloader"
	}
	return fmt.Sprintf("PowerMode(%d)", uint32(p))
}

type MemoryKind uint32

const (
	MemoryKindRAM MemoryKind = iota
	MemoryKindROM
	MemoryKindReserved
)

// MemoryRegion describes a block of host memory lent to the OS.
type MemoryRegion struct {
	Start  uintptr
	Length uintptr
	Kind   MemoryKind
}

type BlockDeviceType uint32

const (
	BlockDeviceSDCard BlockDeviceType = iota
	BlockDeviceHardDisk
	BlockDeviceFloppy
	BlockDeviceCompactFlash
)

type BlockDeviceInfo struct {
	Name         string
	Type         BlockDeviceType
	BlockSize    uint32
	NumBlocks    uint64
	Ejectable    bool
	Removable    bool
	MediaPresent bool
	ReadOnly     bool
}
