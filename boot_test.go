package main

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fakeFrontend signals readiness at once and then blocks until the
// machine exits, as a window would.
type fakeFrontend struct {
	runErr    error
	skipReady bool
	exited    chan struct{}
}

func (f *fakeFrontend) Run(ready func()) error {
	if f.runErr != nil {
		return f.runErr
	}
	if !f.skipReady {
		ready()
		ready()
	}
	select {
	case <-f.exited:
	case <-time.After(5 * time.Second):
		return errors.New("machine never exited")
	}
	return nil
}

type exitLatch struct {
	mu    sync.Mutex
	codes []int
	done  chan struct{}
	once  sync.Once
}

func newExitLatch() *exitLatch { return &exitLatch{done: make(chan struct{})} }

func (l *exitLatch) exit(code int) {
	l.mu.Lock()
	l.codes = append(l.codes, code)
	l.mu.Unlock()
	l.once.Do(func() { close(l.done) })
}

func (l *exitLatch) exitCodes() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.codes...)
}

func TestBootSignal_FiresOnce(t *testing.T) {
	s := newBootSignal()
	assert.False(t, s.Fired())
	assert.True(t, s.Fire())
	assert.False(t, s.Fire())
	assert.True(t, s.Fired())
	s.Wait()
	select {
	case <-s.Done():
	default:
		t.Fatal("Done channel not closed")
	}
}

func TestBootState_ForwardOnly(t *testing.T) {
	var v bootStateValue
	logger := log.NewTestLogger(t)
	assert.True(t, v.set(logger, BootAwaitingGuest))
	assert.False(t, v.set(logger, BootInitializing))
	assert.True(t, v.set(logger, BootTerminating))
	assert.False(t, v.set(logger, BootRunning))
	assert.Equal(t, BootTerminating, v.get())
}

func TestBoot_GuestReturnExitsWithFailure(t *testing.T) {
	latch := newExitLatch()
	m := newTestMachineWithLogger(t, MachineConfig{ExitFunc: latch.exit}, newRecordingLogger(t))

	var sawBound bool
	var sawState BootState
	guest := newBuiltinGuest("builtin:test", func(b *BIOS) error {
		sawBound = boundBIOS() == b
		sawState = b.Machine().State()
		return nil
	})
	boot := NewBoot(m, guest, &fakeFrontend{exited: latch.done})
	boot.checkABI = func() error { return nil }

	assert.NoError(t, boot.Run())
	assert.True(t, sawBound, "OS saw a different BIOS than the bound one")
	assert.Equal(t, BootRunning, sawState)
	codes := latch.exitCodes()
	if len(codes) != 1 || codes[0] != 1 {
		t.Fatalf("exit codes %v, want [1]", codes)
	}
}

func TestBoot_PowerOffExitsCleanly(t *testing.T) {
	latch := newExitLatch()
	m := newTestMachine(t, MachineConfig{ExitFunc: latch.exit})
	guest := newBuiltinGuest("builtin:off", func(b *BIOS) error {
		b.PowerControl(PowerOff)
		return nil
	})
	boot := NewBoot(m, guest, &fakeFrontend{exited: latch.done})
	boot.checkABI = func() error { return nil }

	assert.NoError(t, boot.Run())
	codes := latch.exitCodes()
	if len(codes) != 1 || codes[0] != 0 {
		t.Fatalf("exit codes %v, want [0]", codes)
	}
	assert.Equal(t, BootTerminating, m.State())
}

func TestBoot_GuestErrorStillExits(t *testing.T) {
	latch := newExitLatch()
	m := newTestMachineWithLogger(t, MachineConfig{ExitFunc: latch.exit}, newRecordingLogger(t))
	guest := newBuiltinGuest("builtin:fail", func(*BIOS) error {
		return errors.New("kernel panic")
	})
	boot := NewBoot(m, guest, &fakeFrontend{exited: latch.done})
	boot.checkABI = func() error { return nil }

	assert.NoError(t, boot.Run())
	codes := latch.exitCodes()
	if len(codes) != 1 || codes[0] != 1 {
		t.Fatalf("exit codes %v, want [1]", codes)
	}
}

func TestBoot_GuestWaitsForReady(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	entered := make(chan struct{})
	guest := newBuiltinGuest("builtin:wait", func(*BIOS) error {
		close(entered)
		return nil
	})
	boot := NewBoot(m, guest, &fakeFrontend{runErr: errors.New("no display")})
	boot.checkABI = func() error { return nil }

	assert.Error(t, boot.Run())
	select {
	case <-entered:
		t.Fatal("OS entered although the frontend never became ready")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, BootAwaitingGuest, m.State())
}

func TestBoot_ABICheckFailureStopsBoot(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	guest := newBuiltinGuest("builtin:never", func(*BIOS) error {
		t.Error("OS must not run")
		return nil
	})
	boot := NewBoot(m, guest, &fakeFrontend{runErr: errors.New("unreachable")})
	boot.checkABI = func() error { return errors.New("layout mismatch") }
	err := boot.Run()
	if err == nil || err.Error() != "layout mismatch" {
		t.Fatalf("Run() = %v, want layout mismatch", err)
	}
	assert.Equal(t, BootInitializing, m.State())
}

func TestBoot_OpenFailureStopsBoot(t *testing.T) {
	m := newTestMachine(t, MachineConfig{})
	guest, err := NewGuestRuntime("/nonexistent/neotron-os.so")
	assert.NoError(t, err)
	boot := NewBoot(m, guest, &fakeFrontend{runErr: errors.New("unreachable")})
	boot.checkABI = func() error { return nil }

	err = boot.Run()
	var ge *GuestError
	if !errors.As(err, &ge) {
		t.Fatalf("Run() = %v, want GuestError", err)
	}
}

func TestBIOSTable_Layout(t *testing.T) {
	assert.NoError(t, checkTableLayout())
	if BIOSTable() == nil {
		t.Fatal("capability table address is nil")
	}
}

func TestCompareAndSwapBool(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{})
	var flag bool
	assert.True(t, b.CompareAndSwapBool(&flag, false, true))
	assert.True(t, flag)
	assert.False(t, b.CompareAndSwapBool(&flag, false, true))
	assert.True(t, b.CompareAndSwapBool(&flag, true, false))
	assert.False(t, flag)
}
