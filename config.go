// config.go - Command line configuration

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
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Config is the parsed command line.
type Config struct {
	OSPath        string
	DiskPath      string
	DiskReadOnly  bool
	Scale         int
	Frontend      string
	SnapshotFrame bool
	Debug         bool
	Quiet         bool
	Statsview     bool
	Features      bool
}

var usageText = `Usage: neotron-desktop-bios -os <library|builtin:name> [options]

The OS is a shared library exporting os_main, or one of the built-in
guests: ` + strings.Join(builtinGuestNames(), ", ") + `.

Keys: F12 toggles the status overlay, Ctrl+Shift+V pastes the clipboard.
In the terminal frontend Ctrl+] quits.

Options:
`

func newFlagSet(cfg *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("neotron-desktop-bios", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.OSPath, "os", "", "OS to boot: path to a shared library, or builtin:<name>")
	fs.StringVar(&cfg.DiskPath, "disk", "", "disk image to attach as block device 0")
	fs.BoolVar(&cfg.DiskReadOnly, "disk-ro", false, "attach the disk image read-only")
	fs.IntVar(&cfg.Scale, "scale", DEFAULT_SCALE, "window scale factor")
	fs.StringVar(&cfg.Frontend, "frontend", FRONTEND_EBITEN, "display frontend: "+strings.Join(frontendNames, ", "))
	fs.BoolVar(&cfg.SnapshotFrame, "fb-snapshot", false, "copy video RAM once per frame before drawing")
	fs.BoolVar(&cfg.Debug, "v", false, "verbose logging")
	fs.BoolVar(&cfg.Quiet, "q", false, "only log errors")
	fs.BoolVar(&cfg.Statsview, "statsview", false, "serve runtime statistics on "+statsviewHint())
	fs.BoolVar(&cfg.Features, "features", false, "print build information and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	return fs
}

func statsviewHint() string {
	if statsviewAvailable() {
		return "localhost:12600"
	}
	return "localhost:12600 (needs the statsview build tag)"
}

// parseConfig parses args without the program name. flag.ErrHelp is
// passed through so the caller can exit cleanly.
func parseConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config
	fs := newFlagSet(&cfg, output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, &ConfigError{Details: err.Error()}
	}

	if cfg.Features {
		return cfg, nil
	}
	switch {
	case fs.NArg() == 1 && cfg.OSPath == "":
		cfg.OSPath = fs.Arg(0)
	case fs.NArg() > 0:
		return cfg, &ConfigError{Details: fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}
	if cfg.OSPath == "" {
		return cfg, &ConfigError{Flag: "os", Details: "no OS given"}
	}
	if cfg.Scale < 1 || cfg.Scale > 8 {
		return cfg, &ConfigError{Flag: "scale", Details: fmt.Sprintf("%d is outside 1-8", cfg.Scale)}
	}
	if !slices.Contains(frontendNames, cfg.Frontend) {
		return cfg, &ConfigError{Flag: "frontend", Details: fmt.Sprintf("unknown frontend %q", cfg.Frontend)}
	}
	if cfg.DiskReadOnly && cfg.DiskPath == "" {
		return cfg, &ConfigError{Flag: "disk-ro", Details: "needs -disk"}
	}
	if cfg.Statsview && !statsviewAvailable() {
		return cfg, &ConfigError{Flag: "statsview", Details: "this build has no statsview support"}
	}
	return cfg, nil
}
