package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_BadArgumentsExitTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-scale", "nine"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRun_HelpExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "builtin:demo") {
		t.Fatal("usage does not list the built-in guests")
	}
}

func TestRun_MissingDiskExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-q", "-os", "builtin:demo", "-disk", t.TempDir() + "/absent.img"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
}

func TestRun_UnknownGuestExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-q", "-os", "builtin:nope"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
}

func TestBoilerPlate(t *testing.T) {
	var buf bytes.Buffer
	boilerPlate(&buf)
	if !strings.Contains(buf.String(), "Neotron OS") {
		t.Fatalf("banner = %q", buf.String())
	}
}

func TestRun_FeaturesListsBuild(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-features"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	out := stdout.String()
	if !strings.Contains(out, BIOS_VERSION_STRING+" "+APIVersion.String()) {
		t.Fatalf("features output = %q", out)
	}
	if !strings.Contains(out, "video:terminal") {
		t.Fatal("terminal frontend not listed")
	}
}
