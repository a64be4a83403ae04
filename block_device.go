// block_device.go - Disk image backed block device

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
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/retroenv/retrogolib/log"
)

// BlockDevice serves 512 byte sectors of a raw disk image as device 0.
// Every call holds mu for its own duration only.
type BlockDevice struct {
	logger   *log.Logger
	mu       sync.Mutex
	file     *os.File
	path     string
	readOnly bool
	scratch  []byte
}

// NewBlockDevice returns a device with no backing image.
func NewBlockDevice(logger *log.Logger) *BlockDevice {
	return &BlockDevice{logger: logger}
}

// Attach opens path as the disk image. A read-write open is tried first
// unless forceReadOnly is set; any failure other than a missing file
// falls back to read-only.
func (d *BlockDevice) Attach(path string, forceReadOnly bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var (
		f   *os.File
		err error
	)
	readOnly := forceReadOnly
	if !readOnly {
		f, err = os.OpenFile(path, os.O_RDWR, 0)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			d.logger.Warn("Disk image is not writable, attaching read-only",
				log.String("path", path), log.Err(err))
			readOnly = true
		}
	}
	if readOnly {
		f, err = os.Open(path)
	}
	if err != nil {
		return fmt.Errorf("opening disk image %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat disk image %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		_ = f.Close()
		return fmt.Errorf("disk image %s is not a regular file", path)
	}
	if st.Size()%BLOCK_SIZE != 0 {
		d.logger.Warn("Disk image has a partial trailing block",
			log.String("path", path),
			log.Int("trailing_bytes", int(st.Size()%BLOCK_SIZE)))
	}

	if d.file != nil {
		_ = d.file.Close()
	}
	d.file = f
	d.path = path
	d.readOnly = readOnly
	return nil
}

// Close flushes and releases the image.
func (d *BlockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	var syncErr error
	if !d.readOnly {
		syncErr = d.file.Sync()
	}
	err := d.file.Close()
	d.file = nil
	return errors.Join(syncErr, err)
}

func (d *BlockDevice) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}

// Info reports device 0, or false if it has no media.
func (d *BlockDevice) Info(dev uint8) (BlockDeviceInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if dev != BLOCK_DEVICE_ID || d.file == nil {
		return BlockDeviceInfo{}, false
	}
	size, err := d.sizeLocked()
	if err != nil {
		d.logger.Warn("Failed to stat disk image", log.Err(err))
		return BlockDeviceInfo{}, false
	}
	return BlockDeviceInfo{
		Name:         BLOCK_DEVICE_TAG,
		Type:         BlockDeviceHardDisk,
		BlockSize:    BLOCK_SIZE,
		NumBlocks:    uint64(size) / BLOCK_SIZE,
		Ejectable:    false,
		Removable:    false,
		MediaPresent: true,
		ReadOnly:     d.readOnly,
	}, true
}

// Eject succeeds without effect; the image is not removable.
func (d *BlockDevice) Eject(dev uint8) error {
	if dev != BLOCK_DEVICE_ID {
		return ErrInvalidDevice
	}
	return nil
}

func (d *BlockDevice) Read(dev uint8, block uint64, count uint8, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	off, n, err := d.checkLocked(dev, block, count, len(buf))
	if err != nil {
		return err
	}
	if _, err := d.file.ReadAt(buf[:n], off); err != nil {
		d.logger.Warn("Failed to read from disk image", log.Err(err), log.Hex("block", block))
		return DeviceError(BLOCK_ERR_IO)
	}
	return nil
}

func (d *BlockDevice) Write(dev uint8, block uint64, count uint8, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	off, n, err := d.checkLocked(dev, block, count, len(buf))
	if err != nil {
		return err
	}
	if d.readOnly {
		return DeviceError(BLOCK_ERR_READ_ONLY)
	}
	if _, err := d.file.WriteAt(buf[:n], off); err != nil {
		d.logger.Warn("Failed to write to disk image", log.Err(err), log.Hex("block", block))
		return DeviceError(BLOCK_ERR_IO)
	}
	return nil
}

// Verify compares buf against the image without modifying it.
func (d *BlockDevice) Verify(dev uint8, block uint64, count uint8, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	off, n, err := d.checkLocked(dev, block, count, len(buf))
	if err != nil {
		return err
	}
	if cap(d.scratch) < n {
		d.scratch = make([]byte, n)
	}
	scratch := d.scratch[:n]
	if _, err := d.file.ReadAt(scratch, off); err != nil {
		d.logger.Warn("Failed to read from disk image for verify", log.Err(err), log.Hex("block", block))
		return DeviceError(BLOCK_ERR_IO)
	}
	if !bytes.Equal(scratch, buf[:n]) {
		return DeviceError(BLOCK_ERR_VERIFY)
	}
	return nil
}

// checkLocked validates a transfer of count blocks starting at block and
// returns its byte offset and length.
func (d *BlockDevice) checkLocked(dev uint8, block uint64, count uint8, bufLen int) (int64, int, error) {
	if dev != BLOCK_DEVICE_ID {
		return 0, 0, ErrInvalidDevice
	}
	if d.file == nil {
		return 0, 0, DeviceError(BLOCK_ERR_IO)
	}
	size, err := d.sizeLocked()
	if err != nil {
		d.logger.Warn("Failed to stat disk image", log.Err(err))
		return 0, 0, DeviceError(BLOCK_ERR_IO)
	}
	blocks := uint64(size) / BLOCK_SIZE
	if block > blocks || uint64(count) > blocks-block {
		return 0, 0, ErrBlockOutOfBounds
	}
	n := int(count) * BLOCK_SIZE
	if bufLen < n {
		d.logger.Warn("Block transfer buffer too small",
			log.Int("have", bufLen), log.Int("want", n))
		return 0, 0, DeviceError(BLOCK_ERR_IO)
	}
	return int64(block * BLOCK_SIZE), n, nil
}

func (d *BlockDevice) sizeLocked() (int64, error) {
	st, err := d.file.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

var _ io.Closer = (*BlockDevice)(nil)
