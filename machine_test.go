package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// exitRecorder stands in for os.Exit.
type exitRecorder struct {
	codes []int
}

func (r *exitRecorder) exit(code int) { r.codes = append(r.codes, code) }

func newTestMachine(t *testing.T, cfg MachineConfig) *Machine {
	t.Helper()
	if cfg.ExitFunc == nil {
		rec := &exitRecorder{}
		cfg.ExitFunc = rec.exit
	}
	if cfg.FramebufferAlloc == nil {
		cfg.FramebufferAlloc = func(size int) ([]byte, error) { return make([]byte, size), nil }
	}
	return newTestMachineWithLogger(t, cfg, log.NewTestLogger(t))
}

// newTestMachineWithLogger is for tests that expect error records, which
// log.NewTestLogger turns into test failures.
func newTestMachineWithLogger(t *testing.T, cfg MachineConfig, logger *log.Logger) *Machine {
	t.Helper()
	m, err := NewMachine(logger, cfg)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	t.Cleanup(func() { _ = m.Disk.Close() })
	return m
}

type testLogWriter struct {
	t *testing.T
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// newRecordingLogger logs every level to t without failing on errors.
func newRecordingLogger(t *testing.T) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.DebugLevel
	cfg.Output = testLogWriter{t: t}
	cfg.TimeFormat = "-"
	return log.NewWithConfig(cfg)
}

// writeTestImage creates a disk image of blocks sectors, each filled with
// its own block number.
func writeTestImage(t *testing.T, blocks int) string {
	t.Helper()
	data := make([]byte, blocks*BLOCK_SIZE)
	for i := range data {
		data[i] = byte(i / BLOCK_SIZE)
	}
	path := filepath.Join(t.TempDir(), "disk.img")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMachine_BootScreenCleared(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	for cell := 0; cell < BOOT_TEXT_COLS*BOOT_TEXT_ROWS; cell++ {
		if g := m.Frame.ReadAt(cell * 2); g != ' ' {
			t.Fatalf("cell %d glyph = 0x%02X, want space", cell, g)
		}
		if a := m.Frame.ReadAt(cell*2 + 1); a != BOOT_TEXT_ATTR {
			t.Fatalf("cell %d attr = 0x%02X, want 0x%02X", cell, a, BOOT_TEXT_ATTR)
		}
	}
	assert.Equal(t, StartupMode, m.Video.Mode())
	assert.Equal(t, BootInitializing, m.State())
}

func TestMachine_AttachesDisk(t *testing.T) {
	path := writeTestImage(t, 4)
	m := newTestMachine(t, MachineConfig{DiskPath: path})
	info, ok := m.Disk.Info(BLOCK_DEVICE_ID)
	assert.True(t, ok)
	assert.Equal(t, uint64(4), info.NumBlocks)
	assert.Equal(t, "read-write", accessLabel(m.Disk))
}

func TestMachine_MissingDiskFails(t *testing.T) {
	_, err := NewMachine(log.NewTestLogger(t), MachineConfig{
		DiskPath:         filepath.Join(t.TempDir(), "absent.img"),
		FramebufferAlloc: func(size int) ([]byte, error) { return make([]byte, size), nil },
	})
	assert.Error(t, err)
}

func TestMachine_WrongFramebufferSize(t *testing.T) {
	_, err := NewMachine(log.NewTestLogger(t), MachineConfig{
		FramebufferAlloc: func(int) ([]byte, error) { return make([]byte, 16), nil },
	})
	assert.Error(t, err)
}

func TestMachine_ExitRunsOnce(t *testing.T) {
	rec := &exitRecorder{}
	m := newTestMachine(t, MachineConfig{ExitFunc: rec.exit})
	m.Exit(0, "first")
	m.Exit(1, "second")
	if len(rec.codes) != 1 || rec.codes[0] != 0 {
		t.Fatalf("exit codes = %v, want [0]", rec.codes)
	}
	assert.Equal(t, BootTerminating, m.State())
}

func TestMachine_RAMRegionStable(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	a, err := m.RAMRegion()
	assert.NoError(t, err)
	b, err := m.RAMRegion()
	assert.NoError(t, err)
	assert.Equal(t, MEMORY_REGION_RAM_SIZE, len(a))
	if &a[0] != &b[0] {
		t.Fatal("RAM region moved between calls")
	}
}

func TestMachine_SnapshotFrame(t *testing.T) {
	m := newTestMachine(t, MachineConfig{SnapshotFrame: true})
	m.Frame.BeginFrame()
	m.Frame.WriteAt(0, 'Z')
	if got := m.Frame.ReadAt(0); got != ' ' {
		t.Fatalf("snapshot read = %q, want the value at BeginFrame", got)
	}
	m.Frame.BeginFrame()
	if got := m.Frame.ReadAt(0); got != 'Z' {
		t.Fatalf("snapshot read after BeginFrame = %q, want Z", got)
	}
}

func TestMachine_UptimeConcurrentReads(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := time.Duration(0)
			for range 100 {
				up := m.Uptime()
				if up < prev {
					t.Errorf("uptime went backwards: %v then %v", prev, up)
					return
				}
				prev = up
			}
		}()
	}
	wg.Wait()
	time.Sleep(2 * time.Millisecond)
	assert.True(t, m.Uptime() >= 2*time.Millisecond)
}
