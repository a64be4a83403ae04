package main

import (
	"strings"
	"testing"
)

func TestStatus_Counters(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{DiskPath: writeTestImage(t, 2)})
	b.m.HID.PushAll(tap(KeyA))
	b.HIDGetEvent()
	_ = b.VideoSetMode(NewMode(Timing640x400, FormatText8x16))

	s := b.m.Status()
	if s.hidDelivered != 1 || s.queuedKeys != 1 {
		t.Fatalf("hid delivered %d queued %d", s.hidDelivered, s.queuedKeys)
	}
	if s.modeSets != 1 || s.mode != NewMode(Timing640x400, FormatText8x16) {
		t.Fatalf("mode %s after %d sets", s.mode, s.modeSets)
	}
	if s.disk != "read-write" || !strings.HasSuffix(s.diskPath, "disk.img") {
		t.Fatalf("disk %q at %q", s.disk, s.diskPath)
	}
}

func TestStatus_OverlayTokens(t *testing.T) {
	b := newTestBIOS(t, MachineConfig{DiskPath: writeTestImage(t, 1)})
	b.BlockRead(BLOCK_DEVICE_ID, 0, 1, make([]byte, BLOCK_SIZE))
	lines := b.m.Status().overlayLines(0)

	fps := lines[0].tokens[4]
	if fps.name != "0 fps" || fps.enabled {
		t.Fatalf("fps token = %+v", fps)
	}
	io := lines[2].tokens[2]
	if io.name != "r1 w0 v0" || !io.enabled {
		t.Fatalf("block token = %+v", io)
	}
	if !strings.Contains(lines[2].tokens[0].name, "(read-write)") {
		t.Fatalf("disk token = %+v", lines[2].tokens[0])
	}
}
