package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig([]string{"-os", "builtin:demo"}, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "builtin:demo", cfg.OSPath)
	assert.Equal(t, DEFAULT_SCALE, cfg.Scale)
	assert.Equal(t, FRONTEND_EBITEN, cfg.Frontend)
	assert.False(t, cfg.DiskReadOnly)
	assert.False(t, cfg.SnapshotFrame)
}

func TestParseConfig_AllFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-os", "./os.so", "-disk", "disk.img", "-disk-ro", "-scale", "3",
		"-frontend", "terminal", "-fb-snapshot", "-v", "-q",
	}, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "disk.img", cfg.DiskPath)
	assert.True(t, cfg.DiskReadOnly)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, FRONTEND_TERMINAL, cfg.Frontend)
	assert.True(t, cfg.SnapshotFrame)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Quiet)
}

func TestParseConfig_PositionalOS(t *testing.T) {
	cfg, err := parseConfig([]string{"-disk", "d.img", "./os.so"}, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "./os.so", cfg.OSPath)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := map[string][]string{
		"os":       {},
		"scale":    {"-os", "x", "-scale", "0"},
		"frontend": {"-os", "x", "-frontend", "sdl"},
		"disk-ro":  {"-os", "x", "-disk-ro"},
		"":         {"-os", "x", "extra"},
	}
	for flagName, args := range cases {
		_, err := parseConfig(args, io.Discard)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%v: err = %v, want ConfigError", args, err)
			continue
		}
		if ce.Flag != flagName {
			t.Errorf("%v: flag = %q, want %q", args, ce.Flag, flagName)
		}
	}
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	_, err := parseConfig([]string{"-os", "x", "-bogus"}, io.Discard)
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseConfig_StatsviewNeedsBuildTag(t *testing.T) {
	_, err := parseConfig([]string{"-os", "x", "-statsview"}, io.Discard)
	if statsviewAvailable() {
		assert.NoError(t, err)
		return
	}
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Flag != "statsview" {
		t.Fatalf("err = %v, want statsview ConfigError", err)
	}
}
