package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func newTestBIOS(t *testing.T, cfg MachineConfig) *BIOS {
	t.Helper()
	b := NewBIOS(newTestMachine(t, cfg))
	b.sleep = func(time.Duration) {}
	return b
}

func TestBIOS_Versions(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	assert.Equal(t, APIVersion, b.APIVersion())
	assert.Equal(t, BIOS_VERSION_STRING, b.BIOSVersion())
}

func TestBIOS_TimeClockGet(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	b.now = func() time.Time { return time.Unix(BIOS_EPOCH_UNIX+90, 250) }
	got := b.TimeClockGet()
	assert.Equal(t, uint32(90), got.Secs)
	assert.Equal(t, uint32(250), got.Nsecs)

	b.now = func() time.Time { return time.Unix(BIOS_EPOCH_UNIX-10, 0) }
	assert.Equal(t, Time{}, b.TimeClockGet())
}

func TestBIOS_TimeClockOverflowPanics(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	b.now = func() time.Time { return time.Unix(BIOS_EPOCH_UNIX+1<<32, 0) }
	defer func() {
		if _, ok := recover().(contractViolation); !ok {
			t.Fatal("expected contractViolation panic")
		}
	}()
	b.TimeClockGet()
}

func TestBIOS_TimeClockSetIgnored(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	fixed := time.Unix(BIOS_EPOCH_UNIX+5, 0)
	b.now = func() time.Time { return fixed }
	b.TimeClockSet(Time{Secs: 1000})
	assert.Equal(t, uint32(5), b.TimeClockGet().Secs)
}

func TestBIOS_Ticks(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	assert.Equal(t, Ticks(TICKS_PER_SECOND), b.TimeTicksPerSecond())
	first := b.TimeTicksGet()
	time.Sleep(3 * time.Millisecond)
	if second := b.TimeTicksGet(); second <= first {
		t.Fatalf("ticks did not advance: %d then %d", first, second)
	}
}

func TestBIOS_VideoModes(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	assert.Equal(t, StartupMode, b.VideoGetMode())
	assert.True(t, b.VideoIsValidMode(NewMode(Timing640x400, FormatText8x8)))
	assert.False(t, b.VideoIsValidMode(NewMode(Timing800x600, FormatText8x16)))
	assert.False(t, b.VideoModeNeedsVRAM(StartupMode))

	m8 := NewMode(Timing640x480, FormatText8x8)
	assert.NoError(t, b.VideoSetMode(m8))
	assert.Equal(t, m8, b.VideoGetMode())

	err := b.VideoSetMode(NewMode(Timing640x480, FormatChunky1))
	assert.True(t, errors.Is(err, UnsupportedConfiguration(uint16(NewMode(Timing640x480, FormatChunky1)))))
	assert.Equal(t, m8, b.VideoGetMode())
	assert.Equal(t, uint64(1), b.m.stats.modeSets.Load())
}

func TestBIOS_VideoLineDoubledMode(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	doubled := Mode(0x80)
	assert.True(t, b.VideoIsValidMode(doubled))
	assert.True(t, b.VideoIsValidMode(Mode(0x91)))
	assert.False(t, b.VideoIsValidMode(Mode(0xA0)))

	assert.NoError(t, b.VideoSetMode(doubled))
	assert.Equal(t, doubled, b.VideoGetMode())
	assert.True(t, b.VideoGetMode().IsVertDouble())
}

func TestBIOS_Framebuffer(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	if b.VideoGetFramebuffer() != b.m.FramebufferBase() {
		t.Fatal("framebuffer pointer is not video RAM")
	}
	assert.True(t, errors.Is(b.VideoSetFramebuffer(nil), ErrUnimplemented))
	b.VideoWaitForLine(100)
}

func TestBIOS_MemoryRegion(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	r, ok := b.MemoryGetRegion(MEMORY_REGION_RAM)
	assert.True(t, ok)
	assert.Equal(t, uintptr(MEMORY_REGION_RAM_SIZE), r.Length)
	assert.Equal(t, MemoryKindRAM, r.Kind)
	if r.Start == 0 {
		t.Fatal("region start is nil")
	}
	again, _ := b.MemoryGetRegion(MEMORY_REGION_RAM)
	assert.Equal(t, r, again)

	_, ok = b.MemoryGetRegion(1)
	assert.False(t, ok)
}

func TestBIOS_HIDGetEvent(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	_, ok, err := b.HIDGetEvent()
	assert.NoError(t, err)
	assert.False(t, ok)

	b.m.HID.Push(KeyPressEvent(KeyF1))
	ev, ok, err := b.HIDGetEvent()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KeyPressEvent(KeyF1), ev)
	assert.True(t, errors.Is(b.HIDSetLEDs(0x07), ErrUnimplemented))
}

func TestBIOS_Palette(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	c, ok := b.VideoGetPalette(15)
	assert.True(t, ok)
	assert.Equal(t, RGB(255, 255, 255), c)

	b.VideoSetPalette(15, RGB(1, 2, 3))
	c, _ = b.VideoGetPalette(15)
	assert.Equal(t, RGB(1, 2, 3), c)

	b.VideoSetWholePalette([]RGBColour{RGB(9, 9, 9)})
	c, _ = b.VideoGetPalette(0)
	assert.Equal(t, RGB(9, 9, 9), c)
	assert.Equal(t, uint64(2), b.m.stats.paletteWrites.Load())
}

func TestBIOS_Configuration(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	n, err := b.ConfigurationGet(make([]byte, 16))
	assert.Equal(t, 0, n)
	assert.True(t, errors.Is(err, ErrUnimplemented))
	assert.True(t, errors.Is(b.ConfigurationSet([]byte{1}), ErrUnimplemented))
}

func TestBIOS_BlockDevice(t *testing.T) {
	path := writeTestImage(t, 3)
	b := newTestBIOS(t, MachineConfig{DiskPath: path})

	info, ok := b.BlockDevGetInfo(BLOCK_DEVICE_ID)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), info.NumBlocks)
	assert.NoError(t, b.BlockDevEject(BLOCK_DEVICE_ID))

	buf := make([]byte, BLOCK_SIZE)
	assert.NoError(t, b.BlockRead(BLOCK_DEVICE_ID, 2, 1, buf))
	assert.Equal(t, byte(2), buf[0])

	out := bytes.Repeat([]byte{7}, BLOCK_SIZE)
	assert.NoError(t, b.BlockWrite(BLOCK_DEVICE_ID, 0, 1, out))
	assert.NoError(t, b.BlockVerify(BLOCK_DEVICE_ID, 0, 1, out))
	assert.True(t, errors.Is(b.BlockRead(BLOCK_DEVICE_ID, 3, 1, buf), ErrBlockOutOfBounds))

	st := b.m.Status()
	assert.Equal(t, uint64(2), st.blockReads)
	assert.Equal(t, uint64(1), st.blockWrites)
	assert.Equal(t, uint64(1), st.blockVerifies)
}

func TestBIOS_PowerControlExits(t *testing.T) {
	for _, mode := range []PowerMode{PowerOff, PowerReset, PowerBootloader} {
		rec := &exitRecorder{}
		b := newTestBIOS(t, MachineConfig{ExitFunc: rec.exit})
		b.PowerControl(mode)
		if len(rec.codes) != 1 || rec.codes[0] != 0 {
			t.Errorf("%s: exit codes %v, want [0]", mode, rec.codes)
		}
	}
}

func TestBIOS_PowerIdleSleeps(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	var slept time.Duration
	b.sleep = func(d time.Duration) { slept = d }
	b.PowerIdle()
	assert.Equal(t, POWER_IDLE_SLEEP, slept)
}

func TestBIOS_Stubs(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	assert.False(t, b.SerialGetInfo(0))
	assert.True(t, errors.Is(b.SerialConfigure(0), ErrUnimplemented))
	_, err := b.SerialWrite(0, []byte("x"))
	assert.True(t, errors.Is(err, ErrUnimplemented))
	_, err = b.SerialRead(0, make([]byte, 1))
	assert.True(t, errors.Is(err, ErrUnimplemented))

	assert.False(t, b.I2CBusGetInfo(0))
	assert.True(t, errors.Is(b.I2CWriteRead(0, 0x50), ErrUnimplemented))

	assert.False(t, b.AudioMixerChannelGetInfo(0))
	assert.True(t, errors.Is(b.AudioMixerChannelSetLevel(0, 10), ErrUnimplemented))
	assert.True(t, errors.Is(b.AudioOutputSetConfig(), ErrUnimplemented))
	assert.True(t, errors.Is(b.AudioOutputGetConfig(), ErrUnimplemented))
	_, err = b.AudioOutputData(make([]byte, 4))
	assert.True(t, errors.Is(err, ErrUnimplemented))
	_, err = b.AudioOutputGetSpace()
	assert.True(t, errors.Is(err, ErrUnimplemented))
	assert.True(t, errors.Is(b.AudioInputSetConfig(), ErrUnimplemented))
	assert.True(t, errors.Is(b.AudioInputGetConfig(), ErrUnimplemented))
	_, err = b.AudioInputData(make([]byte, 4))
	assert.True(t, errors.Is(err, ErrUnimplemented))
	_, err = b.AudioInputGetCount()
	assert.True(t, errors.Is(err, ErrUnimplemented))

	b.BusSelect(1, true)
	assert.False(t, b.BusGetInfo(0))
	assert.True(t, errors.Is(b.BusWriteRead(), ErrUnimplemented))
	assert.True(t, errors.Is(b.BusExchange(make([]byte, 2)), ErrUnimplemented))
	assert.Equal(t, uint32(0), b.BusInterruptStatus())
}

func TestBIOS_AsBIOSError(t *testing.T) {
	if asBIOSError(nil) != nil {
		t.Fatal("nil error must stay nil")
	}
	be := asBIOSError(errors.New("disk on fire"))
	assert.Equal(t, ErrKindDeviceError, be.Kind)
	assert.Equal(t, uint16(BLOCK_ERR_IO), be.Code)
	assert.Equal(t, ErrInvalidDevice, asBIOSError(ErrInvalidDevice))
}
