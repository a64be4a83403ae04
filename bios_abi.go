// bios_abi.go - C capability table and exported Go entry points

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
#cgo CFLAGS: -std=c11 -O2
#include <stdlib.h>
#include "bios_abi.h"
*/
import "C"

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// activeBIOS is the BIOS the C table dispatches to. The table is a single
// static object, so only one BIOS can be bound per process.
var activeBIOS atomic.Pointer[BIOS]

// bindBIOS makes b the target of every C entry point.
func bindBIOS(b *BIOS) {
	activeBIOS.Store(b)
}

func boundBIOS() *BIOS {
	b := activeBIOS.Load()
	if b == nil {
		violate("capability table called before a BIOS was bound")
	}
	return b
}

// BIOSTable is the address handed to os_main.
func BIOSTable() unsafe.Pointer {
	return unsafe.Pointer(C.neotron_bios_table())
}

// checkTableLayout compares the compiled table against the fixed entry
// order. A mismatch means the OS would call the wrong functions.
func checkTableLayout() error {
	ptr := uintptr(unsafe.Sizeof(uintptr(0)))
	if got, want := uintptr(C.neotron_table_size()), BIOS_TABLE_ENTRIES*ptr; got != want {
		return fmt.Errorf("capability table is %d bytes, want %d", got, want)
	}
	for _, field := range []int{0, 6, 10, 17, 20, 23, 25, 35, 39, 42, 47, 49} {
		if got, want := uintptr(C.neotron_table_offset(C.int(field))), uintptr(field)*ptr; got != want {
			return fmt.Errorf("capability table entry %d at offset %d, want %d", field, got, want)
		}
	}
	return nil
}

// CompareAndSwapBool is the atomic the OS uses for its own locks.
func (b *BIOS) CompareAndSwapBool(item *bool, old, new bool) bool {
	return bool(C.neotron_cas_bool((*C.bool)(unsafe.Pointer(item)), C.bool(old), C.bool(new)))
}

// C strings handed to the OS live for the whole process.
var ffiStrings struct {
	mu    sync.Mutex
	cache map[string]C.ffi_string_t
}

// ffiString returns s as a C string. withNUL counts the terminator in the
// reported length.
func ffiString(s string, withNUL bool) C.ffi_string_t {
	key := s
	if withNUL {
		key += "\x00"
	}
	ffiStrings.mu.Lock()
	defer ffiStrings.mu.Unlock()
	if v, ok := ffiStrings.cache[key]; ok {
		return v
	}
	if ffiStrings.cache == nil {
		ffiStrings.cache = make(map[string]C.ffi_string_t)
	}
	var v C.ffi_string_t
	v.data = (*C.uint8_t)(unsafe.Pointer(C.CString(s)))
	v.data_len = C.size_t(len(key))
	ffiStrings.cache[key] = v
	return v
}

// writeResult fills err and reports success to the trampoline.
func writeResult(out *C.bios_error_t, err error) C.bool {
	be := asBIOSError(err)
	if be == nil {
		return C.bool(true)
	}
	out.tag = C.uint32_t(be.Kind)
	out.value = C.uint16_t(be.Code)
	return C.bool(false)
}

func byteView(data *C.uint8_t, n C.size_t) []byte {
	if data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), int(n))
}

//export neotronAPIVersion
func neotronAPIVersion() C.uint32_t {
	return C.uint32_t(boundBIOS().APIVersion())
}

//export neotronBIOSVersion
func neotronBIOSVersion(out *C.ffi_string_t) {
	*out = ffiString(boundBIOS().BIOSVersion(), true)
}

//export neotronSerialGetInfo
func neotronSerialGetInfo(dev C.uint8_t) C.bool {
	return C.bool(boundBIOS().SerialGetInfo(uint8(dev)))
}

//export neotronSerialConfigure
func neotronSerialConfigure(dev C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().SerialConfigure(uint8(dev)))
}

//export neotronSerialWrite
func neotronSerialWrite(dev C.uint8_t, data *C.uint8_t, length C.size_t, n *C.size_t, err *C.bios_error_t) C.bool {
	written, e := boundBIOS().SerialWrite(uint8(dev), byteView(data, length))
	*n = C.size_t(written)
	return writeResult(err, e)
}

//export neotronSerialRead
func neotronSerialRead(dev C.uint8_t, data *C.uint8_t, length C.size_t, n *C.size_t, err *C.bios_error_t) C.bool {
	read, e := boundBIOS().SerialRead(uint8(dev), byteView(data, length))
	*n = C.size_t(read)
	return writeResult(err, e)
}

//export neotronTimeClockGet
func neotronTimeClockGet(secs, nsecs *C.uint32_t) {
	t := boundBIOS().TimeClockGet()
	*secs = C.uint32_t(t.Secs)
	*nsecs = C.uint32_t(t.Nsecs)
}

//export neotronTimeClockSet
func neotronTimeClockSet(secs, nsecs C.uint32_t) {
	boundBIOS().TimeClockSet(Time{Secs: uint32(secs), Nsecs: uint32(nsecs)})
}

//export neotronConfigurationGet
func neotronConfigurationGet(data *C.uint8_t, length C.size_t, n *C.size_t, err *C.bios_error_t) C.bool {
	got, e := boundBIOS().ConfigurationGet(byteView(data, length))
	*n = C.size_t(got)
	return writeResult(err, e)
}

//export neotronConfigurationSet
func neotronConfigurationSet(data *C.uint8_t, length C.size_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().ConfigurationSet(byteView(data, length)))
}

//export neotronVideoIsValidMode
func neotronVideoIsValidMode(mode C.uint8_t) C.bool {
	return C.bool(boundBIOS().VideoIsValidMode(Mode(mode)))
}

//export neotronVideoModeNeedsVRAM
func neotronVideoModeNeedsVRAM(mode C.uint8_t) C.bool {
	return C.bool(boundBIOS().VideoModeNeedsVRAM(Mode(mode)))
}

//export neotronVideoSetMode
func neotronVideoSetMode(mode C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().VideoSetMode(Mode(mode)))
}

//export neotronVideoGetMode
func neotronVideoGetMode() C.uint8_t {
	return C.uint8_t(boundBIOS().VideoGetMode())
}

//export neotronVideoGetFramebuffer
func neotronVideoGetFramebuffer() *C.uint8_t {
	return (*C.uint8_t)(boundBIOS().VideoGetFramebuffer())
}

//export neotronVideoSetFramebuffer
func neotronVideoSetFramebuffer(err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().VideoSetFramebuffer(nil))
}

//export neotronVideoWaitForLine
func neotronVideoWaitForLine(line C.uint16_t) {
	boundBIOS().VideoWaitForLine(uint16(line))
}

//export neotronMemoryGetRegion
func neotronMemoryGetRegion(region C.uint8_t, out *C.memory_region_t) C.bool {
	r, ok := boundBIOS().MemoryGetRegion(uint8(region))
	if !ok {
		return C.bool(false)
	}
	out.start = (*C.uint8_t)(unsafe.Pointer(r.Start))
	out.length = C.size_t(r.Length)
	out.kind = C.uint32_t(r.Kind)
	return C.bool(true)
}

//export neotronHIDGetEvent
func neotronHIDGetEvent(kind *C.uint32_t, key *C.uint8_t) C.bool {
	ev, ok, _ := boundBIOS().HIDGetEvent()
	if !ok {
		return C.bool(false)
	}
	*kind = C.uint32_t(ev.Kind)
	*key = C.uint8_t(ev.Key)
	return C.bool(true)
}

//export neotronHIDSetLEDs
func neotronHIDSetLEDs(leds C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().HIDSetLEDs(uint8(leds)))
}

//export neotronVideoGetPalette
func neotronVideoGetPalette(index C.uint8_t, rgb *C.uint32_t) C.bool {
	c, ok := boundBIOS().VideoGetPalette(uint8(index))
	if ok {
		*rgb = C.uint32_t(c)
	}
	return C.bool(ok)
}

//export neotronVideoSetPalette
func neotronVideoSetPalette(index C.uint8_t, rgb C.uint32_t) {
	boundBIOS().VideoSetPalette(uint8(index), RGBColour(rgb))
}

//export neotronVideoSetWholePalette
func neotronVideoSetWholePalette(palette *C.uint32_t, length C.size_t) {
	var colours []RGBColour
	if palette != nil && length > 0 {
		colours = unsafe.Slice((*RGBColour)(unsafe.Pointer(palette)), int(length))
	}
	boundBIOS().VideoSetWholePalette(colours)
}

//export neotronI2CBusGetInfo
func neotronI2CBusGetInfo(bus C.uint8_t) C.bool {
	return C.bool(boundBIOS().I2CBusGetInfo(uint8(bus)))
}

//export neotronI2CWriteRead
func neotronI2CWriteRead(bus, addr C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().I2CWriteRead(uint8(bus), uint8(addr)))
}

//export neotronAudioMixerChannelGetInfo
func neotronAudioMixerChannelGetInfo(id C.uint8_t) C.bool {
	return C.bool(boundBIOS().AudioMixerChannelGetInfo(uint8(id)))
}

//export neotronAudioMixerChannelSetLevel
func neotronAudioMixerChannelSetLevel(id, level C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().AudioMixerChannelSetLevel(uint8(id), uint8(level)))
}

//export neotronAudioOutputSetConfig
func neotronAudioOutputSetConfig(err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().AudioOutputSetConfig())
}

//export neotronAudioOutputGetConfig
func neotronAudioOutputGetConfig(cfg *C.audio_config_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().AudioOutputGetConfig())
}

//export neotronAudioOutputData
func neotronAudioOutputData(data *C.uint8_t, length C.size_t, n *C.size_t, err *C.bios_error_t) C.bool {
	got, e := boundBIOS().AudioOutputData(byteView(data, length))
	*n = C.size_t(got)
	return writeResult(err, e)
}

//export neotronAudioOutputGetSpace
func neotronAudioOutputGetSpace(n *C.size_t, err *C.bios_error_t) C.bool {
	got, e := boundBIOS().AudioOutputGetSpace()
	*n = C.size_t(got)
	return writeResult(err, e)
}

//export neotronAudioInputSetConfig
func neotronAudioInputSetConfig(err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().AudioInputSetConfig())
}

//export neotronAudioInputGetConfig
func neotronAudioInputGetConfig(cfg *C.audio_config_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().AudioInputGetConfig())
}

//export neotronAudioInputData
func neotronAudioInputData(data *C.uint8_t, length C.size_t, n *C.size_t, err *C.bios_error_t) C.bool {
	got, e := boundBIOS().AudioInputData(byteView(data, length))
	*n = C.size_t(got)
	return writeResult(err, e)
}

//export neotronAudioInputGetCount
func neotronAudioInputGetCount(n *C.size_t, err *C.bios_error_t) C.bool {
	got, e := boundBIOS().AudioInputGetCount()
	*n = C.size_t(got)
	return writeResult(err, e)
}

//export neotronBusSelect
func neotronBusSelect(some C.bool, peripheral C.uint8_t) {
	boundBIOS().BusSelect(uint8(peripheral), bool(some))
}

//export neotronBusGetInfo
func neotronBusGetInfo(peripheral C.uint8_t) C.bool {
	return C.bool(boundBIOS().BusGetInfo(uint8(peripheral)))
}

//export neotronBusWriteRead
func neotronBusWriteRead(err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BusWriteRead())
}

//export neotronBusExchange
func neotronBusExchange(data *C.uint8_t, length C.size_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BusExchange(byteView(data, length)))
}

//export neotronTimeTicksGet
func neotronTimeTicksGet() C.uint64_t {
	return C.uint64_t(boundBIOS().TimeTicksGet())
}

//export neotronTimeTicksPerSecond
func neotronTimeTicksPerSecond() C.uint64_t {
	return C.uint64_t(boundBIOS().TimeTicksPerSecond())
}

//export neotronBusInterruptStatus
func neotronBusInterruptStatus() C.uint32_t {
	return C.uint32_t(boundBIOS().BusInterruptStatus())
}

//export neotronBlockDevGetInfo
func neotronBlockDevGetInfo(dev C.uint8_t, out *C.block_dev_info_t) C.bool {
	info, ok := boundBIOS().BlockDevGetInfo(uint8(dev))
	if !ok {
		return C.bool(false)
	}
	out.name = ffiString(info.Name, false)
	out.device_type = C.uint32_t(info.Type)
	out.block_size = C.uint32_t(info.BlockSize)
	out.num_blocks = C.uint64_t(info.NumBlocks)
	out.ejectable = C.bool(info.Ejectable)
	out.removable = C.bool(info.Removable)
	out.media_present = C.bool(info.MediaPresent)
	out.read_only = C.bool(info.ReadOnly)
	return C.bool(true)
}

//export neotronBlockDevEject
func neotronBlockDevEject(dev C.uint8_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BlockDevEject(uint8(dev)))
}

//export neotronBlockWrite
func neotronBlockWrite(dev C.uint8_t, block C.uint64_t, count C.uint8_t, data *C.uint8_t, length C.size_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BlockWrite(uint8(dev), uint64(block), uint8(count), byteView(data, length)))
}

//export neotronBlockRead
func neotronBlockRead(dev C.uint8_t, block C.uint64_t, count C.uint8_t, data *C.uint8_t, length C.size_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BlockRead(uint8(dev), uint64(block), uint8(count), byteView(data, length)))
}

//export neotronBlockVerify
func neotronBlockVerify(dev C.uint8_t, block C.uint64_t, count C.uint8_t, data *C.uint8_t, length C.size_t, err *C.bios_error_t) C.bool {
	return writeResult(err, boundBIOS().BlockVerify(uint8(dev), uint64(block), uint8(count), byteView(data, length)))
}

//export neotronPowerIdle
func neotronPowerIdle() {
	boundBIOS().PowerIdle()
}

//export neotronPowerControl
func neotronPowerControl(mode C.uint32_t) {
	boundBIOS().PowerControl(PowerMode(mode))
	// Exit already ran on another caller; wait for the process to end.
	select {}
}
