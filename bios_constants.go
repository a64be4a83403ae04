// bios_constants.go - Capability table constants

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

import "time"

// API revision implemented by the capability table.
const (
	BIOS_API_MAJOR = 0
	BIOS_API_MINOR = 8
	BIOS_API_PATCH = 0
)

const BIOS_VERSION_STRING = "Neotron Desktop BIOS"

// Seconds between 1970-01-01 and 2000-01-01, the BIOS clock epoch.
const BIOS_EPOCH_UNIX = 946684800

const (
	TICKS_PER_SECOND = 1000
	POWER_IDLE_SLEEP = time.Millisecond
)

// Shared video memory, sized for 640x480 at 8 bits per pixel.
const (
	FRAMEBUFFER_WIDTH  = 640
	FRAMEBUFFER_HEIGHT = 480
	FRAMEBUFFER_SIZE   = FRAMEBUFFER_WIDTH * FRAMEBUFFER_HEIGHT
)

// Largest text layout (640x480 with 8x8 glyphs) cleared at boot.
const (
	BOOT_TEXT_COLS = 80
	BOOT_TEXT_ROWS = 60
	BOOT_TEXT_ATTR = 0x0F
)

// Memory region 0 handed to the OS for its own use.
const (
	MEMORY_REGION_RAM      = 0
	MEMORY_REGION_RAM_SIZE = 256 * 1024
)

const PALETTE_ENTRIES = 256

// Number of function pointers in bios_api_t.
const BIOS_TABLE_ENTRIES = 50

// Block device emulation
const (
	BLOCK_SIZE       = 512
	BLOCK_DEVICE_ID  = 0
	BLOCK_DEVICE_TAG = "File0"
)

// Device error sub-codes reported by the block device.
const (
	BLOCK_ERR_IO        = 0
	BLOCK_ERR_VERIFY    = 1
	BLOCK_ERR_READ_ONLY = 2
)

const (
	WINDOW_TITLE    = "Neotron Desktop BIOS"
	DEFAULT_SCALE   = 2
	TARGET_TPS      = 60
	BLINK_PERIOD    = 64 // frames per blink cycle
	PASTE_MAX_BYTES = 4096
)
