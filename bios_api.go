// bios_api.go - BIOS operations exposed to the guest OS

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
	"time"
	"unsafe"

	"github.com/retroenv/retrogolib/log"
)

// BIOS implements the capability table on top of a Machine. Every method
// maps one entry of bios_api_t; the cgo layer only converts arguments.
type BIOS struct {
	m      *Machine
	logger *log.Logger
	now    func() time.Time
	sleep  func(time.Duration)
}

func NewBIOS(m *Machine) *BIOS {
	return &BIOS{
		m:      m,
		logger: m.logger,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

func (b *BIOS) Machine() *Machine { return b.m }

func (b *BIOS) APIVersion() Version {
	b.logger.Debug("api_version_get()")
	return APIVersion
}

func (b *BIOS) BIOSVersion() string {
	b.logger.Debug("bios_version_get()")
	return BIOS_VERSION_STRING
}

// TimeClockGet returns wall-clock time since 2000-01-01. A host clock set
// before the epoch reads as zero. Times past 2136 cannot be represented
// and abort.
func (b *BIOS) TimeClockGet() Time {
	epoch := time.Unix(BIOS_EPOCH_UNIX, 0)
	diff := b.now().Sub(epoch)
	if diff < 0 {
		diff = 0
	}
	secs := uint64(diff / time.Second)
	if secs > 0xFFFFFFFF {
		violate("wall clock is %d seconds past the epoch, beyond 32 bits", secs)
	}
	t := Time{Secs: uint32(secs), Nsecs: uint32(diff % time.Second)}
	b.logger.Debug("time_clock_get()", log.Int("secs", int(t.Secs)), log.Int("nsecs", int(t.Nsecs)))
	return t
}

// TimeClockSet is accepted and discarded; there is no battery-backed clock.
func (b *BIOS) TimeClockSet(t Time) {
	b.logger.Info("time_clock_set() ignored", log.Int("secs", int(t.Secs)), log.Int("nsecs", int(t.Nsecs)))
}

func (b *BIOS) ConfigurationGet(buf []byte) (int, error) {
	b.logger.Debug("configuration_get()", log.Int("len", len(buf)))
	return 0, ErrUnimplemented
}

func (b *BIOS) ConfigurationSet(data []byte) error {
	b.logger.Debug("configuration_set()", log.Int("len", len(data)))
	return ErrUnimplemented
}

func (b *BIOS) VideoIsValidMode(m Mode) bool {
	b.logger.Debug("video_is_valid_mode()", log.Stringer("mode", m))
	return IsSupportedMode(m)
}

func (b *BIOS) VideoModeNeedsVRAM(m Mode) bool {
	b.logger.Debug("video_mode_needs_vram()", log.Stringer("mode", m))
	return b.m.Video.NeedsVRAM(m)
}

func (b *BIOS) VideoSetMode(m Mode) error {
	b.logger.Info("video_set_mode()", log.Stringer("mode", m))
	if err := b.m.Video.SetMode(m); err != nil {
		b.logger.Warn("Rejected video mode", log.Hex("mode", uint8(m)))
		return err
	}
	b.m.stats.modeSets.Add(1)
	return nil
}

func (b *BIOS) VideoGetMode() Mode {
	return b.m.Video.Mode()
}

func (b *BIOS) VideoGetFramebuffer() unsafe.Pointer {
	p := b.m.FramebufferBase()
	b.logger.Debug("video_get_framebuffer()", log.Hex("ptr", uintptr(p)))
	return p
}

// VideoSetFramebuffer is unsupported: video RAM is fixed.
func (b *BIOS) VideoSetFramebuffer(unsafe.Pointer) error {
	b.logger.Debug("video_set_framebuffer()")
	return ErrUnimplemented
}

// VideoWaitForLine returns at once; scan-out is not timed.
func (b *BIOS) VideoWaitForLine(line uint16) {}

func (b *BIOS) MemoryGetRegion(region uint8) (MemoryRegion, bool) {
	b.logger.Debug("memory_get_region()", log.Uint8("region", region))
	if region != MEMORY_REGION_RAM {
		return MemoryRegion{}, false
	}
	mem, err := b.m.RAMRegion()
	if err != nil {
		b.logger.Error("Memory region 0 unavailable", log.Err(err))
		return MemoryRegion{}, false
	}
	return MemoryRegion{
		Start:  uintptr(unsafe.Pointer(&mem[0])),
		Length: uintptr(len(mem)),
		Kind:   MemoryKindRAM,
	}, true
}

// HIDGetEvent never blocks.
func (b *BIOS) HIDGetEvent() (HIDEvent, bool, error) {
	ev, ok := b.m.HID.Poll()
	if ok {
		b.m.stats.hidDelivered.Add(1)
		b.logger.Debug("hid_get_event()", log.Stringer("event", ev))
	}
	return ev, ok, nil
}

func (b *BIOS) HIDSetLEDs(leds uint8) error {
	b.logger.Debug("hid_set_leds()", log.Uint8("leds", leds))
	return ErrUnimplemented
}

func (b *BIOS) VideoGetPalette(index uint8) (RGBColour, bool) {
	b.logger.Debug("video_get_palette()", log.Uint8("index", index))
	return b.m.Palette.Get(int(index))
}

func (b *BIOS) VideoSetPalette(index uint8, c RGBColour) {
	b.logger.Debug("video_set_palette()", log.Uint8("index", index), log.Stringer("rgb", c))
	b.m.Palette.Set(index, c)
	b.m.stats.paletteWrites.Add(1)
}

func (b *BIOS) VideoSetWholePalette(colours []RGBColour) {
	b.logger.Debug("video_set_whole_palette()", log.Int("len", len(colours)))
	n := b.m.Palette.SetWhole(colours)
	b.m.stats.paletteWrites.Add(uint64(n))
}

func (b *BIOS) TimeTicksGet() Ticks {
	return Ticks(b.m.Uptime() / time.Millisecond)
}

func (b *BIOS) TimeTicksPerSecond() Ticks {
	b.logger.Debug("time_ticks_per_second()")
	return TICKS_PER_SECOND
}

func (b *BIOS) BlockDevGetInfo(dev uint8) (BlockDeviceInfo, bool) {
	b.logger.Debug("block_dev_get_info()", log.Uint8("dev_id", dev))
	return b.m.Disk.Info(dev)
}

func (b *BIOS) BlockDevEject(dev uint8) error {
	b.logger.Debug("block_dev_eject()", log.Uint8("dev_id", dev))
	return b.m.Disk.Eject(dev)
}

func (b *BIOS) BlockWrite(dev uint8, block uint64, count uint8, buf []byte) error {
	b.logger.Debug("block_write()", log.Uint8("dev_id", dev), log.Hex("block", block),
		log.Uint8("num_blocks", count), log.Int("buffer_len", len(buf)))
	b.m.stats.blockWrites.Add(1)
	return b.m.Disk.Write(dev, block, count, buf)
}

func (b *BIOS) BlockRead(dev uint8, block uint64, count uint8, buf []byte) error {
	b.logger.Debug("block_read()", log.Uint8("dev_id", dev), log.Hex("block", block),
		log.Uint8("num_blocks", count), log.Int("buffer_len", len(buf)))
	b.m.stats.blockReads.Add(1)
	return b.m.Disk.Read(dev, block, count, buf)
}

func (b *BIOS) BlockVerify(dev uint8, block uint64, count uint8, buf []byte) error {
	b.logger.Debug("block_verify()", log.Uint8("dev_id", dev), log.Hex("block", block),
		log.Uint8("num_blocks", count), log.Int("buffer_len", len(buf)))
	b.m.stats.blockVerifies.Add(1)
	return b.m.Disk.Verify(dev, block, count, buf)
}

func (b *BIOS) PowerIdle() {
	b.sleep(POWER_IDLE_SLEEP)
}

// PowerControl ends the process for every mode, including Reset and
// Bootloader.
func (b *BIOS) PowerControl(mode PowerMode) {
	b.logger.Info("power_control()", log.Stringer("mode", mode))
	b.m.Exit(0, "power control "+mode.String())
}
