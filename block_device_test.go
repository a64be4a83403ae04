package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func attachTestDisk(t *testing.T, blocks int, readOnly bool) (*BlockDevice, string) {
	t.Helper()
	path := writeTestImage(t, blocks)
	d := NewBlockDevice(log.NewTestLogger(t))
	if err := d.Attach(path, readOnly); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d, path
}

func TestBlockDevice_Info(t *testing.T) {
	d, _ := attachTestDisk(t, 8, false)
	info, ok := d.Info(BLOCK_DEVICE_ID)
	assert.True(t, ok)
	assert.Equal(t, BLOCK_DEVICE_TAG, info.Name)
	assert.Equal(t, uint32(BLOCK_SIZE), info.BlockSize)
	assert.Equal(t, uint64(8), info.NumBlocks)
	assert.True(t, info.MediaPresent)
	assert.False(t, info.ReadOnly)
	assert.False(t, info.Removable)

	_, ok = d.Info(1)
	assert.False(t, ok)
}

func TestBlockDevice_NoMedia(t *testing.T) {
	d := NewBlockDevice(log.NewTestLogger(t))
	_, ok := d.Info(BLOCK_DEVICE_ID)
	assert.False(t, ok)
	err := d.Read(BLOCK_DEVICE_ID, 0, 1, make([]byte, BLOCK_SIZE))
	assert.True(t, errors.Is(err, DeviceError(BLOCK_ERR_IO)))
}

func TestBlockDevice_ReadWriteRoundTrip(t *testing.T) {
	d, path := attachTestDisk(t, 4, false)

	buf := make([]byte, 2*BLOCK_SIZE)
	assert.NoError(t, d.Read(BLOCK_DEVICE_ID, 1, 2, buf))
	if buf[0] != 1 || buf[BLOCK_SIZE] != 2 {
		t.Fatalf("read wrong blocks: %d %d", buf[0], buf[BLOCK_SIZE])
	}

	payload := bytes.Repeat([]byte{0x5A}, BLOCK_SIZE)
	assert.NoError(t, d.Write(BLOCK_DEVICE_ID, 3, 1, payload))
	assert.NoError(t, d.Verify(BLOCK_DEVICE_ID, 3, 1, payload))
	assert.NoError(t, d.Close())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	if !bytes.Equal(data[3*BLOCK_SIZE:], payload) {
		t.Fatal("write did not reach the image file")
	}
}

func TestBlockDevice_VerifyMismatch(t *testing.T) {
	d, _ := attachTestDisk(t, 2, false)
	buf := make([]byte, BLOCK_SIZE)
	err := d.Verify(BLOCK_DEVICE_ID, 1, 1, buf)
	assert.True(t, errors.Is(err, DeviceError(BLOCK_ERR_VERIFY)))
}

func TestBlockDevice_Bounds(t *testing.T) {
	d, _ := attachTestDisk(t, 4, false)
	buf := make([]byte, 4*BLOCK_SIZE)

	assert.NoError(t, d.Read(BLOCK_DEVICE_ID, 0, 4, buf))
	assert.NoError(t, d.Read(BLOCK_DEVICE_ID, 4, 0, buf))
	assert.True(t, errors.Is(d.Read(BLOCK_DEVICE_ID, 3, 2, buf), ErrBlockOutOfBounds))
	assert.True(t, errors.Is(d.Read(BLOCK_DEVICE_ID, 5, 0, buf), ErrBlockOutOfBounds))
	assert.True(t, errors.Is(d.Read(BLOCK_DEVICE_ID, ^uint64(0), 1, buf), ErrBlockOutOfBounds))
	assert.True(t, errors.Is(d.Read(2, 0, 1, buf), ErrInvalidDevice))
}

func TestBlockDevice_ShortBuffer(t *testing.T) {
	d, _ := attachTestDisk(t, 4, false)
	err := d.Read(BLOCK_DEVICE_ID, 0, 2, make([]byte, BLOCK_SIZE))
	assert.True(t, errors.Is(err, DeviceError(BLOCK_ERR_IO)))
}

func TestBlockDevice_ReadOnly(t *testing.T) {
	d, path := attachTestDisk(t, 2, true)
	info, _ := d.Info(BLOCK_DEVICE_ID)
	assert.True(t, info.ReadOnly)

	err := d.Write(BLOCK_DEVICE_ID, 0, 1, make([]byte, BLOCK_SIZE))
	assert.True(t, errors.Is(err, DeviceError(BLOCK_ERR_READ_ONLY)))

	data, _ := os.ReadFile(path)
	if data[BLOCK_SIZE] != 1 {
		t.Fatal("read-only image was modified")
	}
}

func TestBlockDevice_PartialTrailingBlockIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.img")
	assert.NoError(t, os.WriteFile(path, make([]byte, 2*BLOCK_SIZE+100), 0644))
	d := NewBlockDevice(log.NewTestLogger(t))
	assert.NoError(t, d.Attach(path, false))
	defer d.Close()
	info, _ := d.Info(BLOCK_DEVICE_ID)
	assert.Equal(t, uint64(2), info.NumBlocks)
}

func TestBlockDevice_AttachDirectoryFails(t *testing.T) {
	d := NewBlockDevice(log.NewTestLogger(t))
	assert.Error(t, d.Attach(t.TempDir(), true))
}

func TestBlockDevice_Eject(t *testing.T) {
	d, _ := attachTestDisk(t, 1, false)
	assert.NoError(t, d.Eject(BLOCK_DEVICE_ID))
	_, ok := d.Info(BLOCK_DEVICE_ID)
	assert.True(t, ok, "eject must leave the fixed disk attached")
	assert.True(t, errors.Is(d.Eject(3), ErrInvalidDevice))
}
