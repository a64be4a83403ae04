package main

import (
	"testing"
	"unsafe"
)

func TestRawFramebuffer_SharesMemory(t *testing.T) {
	mem := make([]byte, 64)
	fb := newRawFramebuffer(mem)
	mem[10] = 0xAB
	if fb.ReadAt(10) != 0xAB {
		t.Fatal("read did not see shared write")
	}
	fb.WriteAt(11, 0xCD)
	if mem[11] != 0xCD {
		t.Fatal("write did not reach shared memory")
	}
	if fb.Base() != unsafe.Pointer(&mem[0]) {
		t.Fatal("base is not the start of shared memory")
	}
}

func TestRawFramebuffer_OutOfRangePanics(t *testing.T) {
	fb := newRawFramebuffer(make([]byte, 8))
	defer func() {
		r := recover()
		if _, ok := r.(contractViolation); !ok {
			t.Fatalf("expected contractViolation panic, got %v", r)
		}
	}()
	fb.ReadAt(8)
}

func TestSnapshotFramebuffer_ReadsBeforeFirstFrame(t *testing.T) {
	mem := make([]byte, 8)
	fb := newSnapshotFramebuffer(mem)
	mem[0] = 1
	if fb.ReadAt(0) != 1 {
		t.Fatal("expected live read before first BeginFrame")
	}
}

func TestClearText(t *testing.T) {
	fb := newRawFramebuffer(make([]byte, 16))
	clearText(fb, 4, 2, 'x', NewAttr(1, 2, false))
	for i := 0; i < 8; i++ {
		if fb.ReadAt(i*2) != 'x' || Attr(fb.ReadAt(i*2+1)) != NewAttr(1, 2, false) {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}
