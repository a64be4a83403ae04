// bios_stubs.go - Unimplemented BIOS operations

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

import "github.com/retroenv/retrogolib/log"

// Peripherals the desktop build does not model. Each call reports that
// nothing is there and keeps no state.

func (b *BIOS) SerialGetInfo(dev uint8) bool {
	b.logger.Debug("serial_get_info()", log.Uint8("device", dev))
	return false
}

func (b *BIOS) SerialConfigure(dev uint8) error {
	b.logger.Debug("serial_configure()", log.Uint8("device", dev))
	return ErrUnimplemented
}

func (b *BIOS) SerialWrite(dev uint8, data []byte) (int, error) {
	b.logger.Debug("serial_write()", log.Uint8("device", dev), log.Int("len", len(data)))
	return 0, ErrUnimplemented
}

func (b *BIOS) SerialRead(dev uint8, buf []byte) (int, error) {
	b.logger.Debug("serial_read()", log.Uint8("device", dev), log.Int("len", len(buf)))
	return 0, ErrUnimplemented
}

func (b *BIOS) I2CBusGetInfo(bus uint8) bool {
	b.logger.Debug("i2c_bus_get_info()", log.Uint8("bus", bus))
	return false
}

func (b *BIOS) I2CWriteRead(bus, addr uint8) error {
	b.logger.Debug("i2c_write_read()", log.Uint8("bus", bus), log.Hex("address", addr))
	return ErrUnimplemented
}

func (b *BIOS) AudioMixerChannelGetInfo(id uint8) bool {
	b.logger.Debug("audio_mixer_channel_get_info()", log.Uint8("mixer", id))
	return false
}

func (b *BIOS) AudioMixerChannelSetLevel(id, level uint8) error {
	b.logger.Debug("audio_mixer_channel_set_level()", log.Uint8("mixer", id), log.Uint8("level", level))
	return ErrUnimplemented
}

func (b *BIOS) AudioOutputSetConfig() error {
	b.logger.Debug("audio_output_set_config()")
	return ErrUnimplemented
}

func (b *BIOS) AudioOutputGetConfig() error {
	b.logger.Debug("audio_output_get_config()")
	return ErrUnimplemented
}

func (b *BIOS) AudioOutputData(samples []byte) (int, error) {
	b.logger.Debug("audio_output_data()", log.Int("len", len(samples)))
	return 0, ErrUnimplemented
}

func (b *BIOS) AudioOutputGetSpace() (int, error) {
	b.logger.Debug("audio_output_get_space()")
	return 0, ErrUnimplemented
}

func (b *BIOS) AudioInputSetConfig() error {
	b.logger.Debug("audio_input_set_config()")
	return ErrUnimplemented
}

func (b *BIOS) AudioInputGetConfig() error {
	b.logger.Debug("audio_input_get_config()")
	return ErrUnimplemented
}

func (b *BIOS) AudioInputData(buf []byte) (int, error) {
	b.logger.Debug("audio_input_data()", log.Int("len", len(buf)))
	return 0, ErrUnimplemented
}

func (b *BIOS) AudioInputGetCount() (int, error) {
	b.logger.Debug("audio_input_get_count()")
	return 0, ErrUnimplemented
}

// BusSelect is accepted and ignored.
func (b *BIOS) BusSelect(peripheral uint8, selected bool) {
	b.logger.Debug("bus_select()", log.Uint8("peripheral", peripheral))
}

func (b *BIOS) BusGetInfo(peripheral uint8) bool {
	b.logger.Debug("bus_get_info()", log.Uint8("peripheral", peripheral))
	return false
}

func (b *BIOS) BusWriteRead() error {
	b.logger.Debug("bus_write_read()")
	return ErrUnimplemented
}

func (b *BIOS) BusExchange(buf []byte) error {
	b.logger.Debug("bus_exchange()", log.Int("len", len(buf)))
	return ErrUnimplemented
}

func (b *BIOS) BusInterruptStatus() uint32 {
	return 0
}
