// main.go - Main entry point for the Neotron Desktop BIOS

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
	"os"

	"github.com/retroenv/retrogolib/log"
)

func boilerPlate(w io.Writer) {
	fmt.Fprintln(w, "\n\033[38;2;255;20;147m█   █  █████   ███   █████  ████    ███   █   █\033[0m\n\033[38;2;255;60;147m██  █  █      █   █    █    █   █  █   █  ██  █\033[0m\n\033[38;2;255;100;147m█ █ █  ████   █   █    █    ████   █   █  █ █ █\033[0m\n\033[38;2;255;140;147m█  ██  █      █   █    █    █  █   █   █  █  ██\033[0m\n\033[38;2;255;180;147m█   █  █████   ███     █    █   █   ███   █   █\033[0m")
	fmt.Fprintln(w, "\nA desktop BIOS for the Neotron OS: a window, a keyboard and a disk image.")
	fmt.Fprintln(w, "(c) 2024 - 2026 Zayn Otley")
	fmt.Fprintln(w, "https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Fprintln(w, "License: GPLv3 or later")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run boots the machine and returns the exit status for startup
// failures. Once the OS is running the process ends through Machine.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if cfg.Features {
		printFeatures(stdout)
		return 0
	}
	if !cfg.Quiet && cfg.Frontend != FRONTEND_TERMINAL {
		boilerPlate(stdout)
	}

	logger := CreateLogger(cfg.Debug, cfg.Quiet)
	if cfg.Statsview {
		launchStatsview(stdout)
	}

	m, err := NewMachine(logger, MachineConfig{
		DiskPath:      cfg.DiskPath,
		DiskReadOnly:  cfg.DiskReadOnly,
		SnapshotFrame: cfg.SnapshotFrame,
	})
	if err != nil {
		logger.Error("Failed to build machine", log.Err(err))
		return 1
	}

	guest, err := NewGuestRuntime(cfg.OSPath)
	if err != nil {
		logger.Error("Failed to select OS", log.Err(err))
		return 1
	}

	frontend, err := NewFrontend(cfg.Frontend, m, FrontendConfig{Scale: cfg.Scale, Logger: logger})
	if err != nil {
		logger.Error("Failed to initialize video", log.Err(err))
		return 1
	}

	logger.Info("Booting", log.String("os", cfg.OSPath), log.String("frontend", cfg.Frontend),
		log.Stringer("mode", m.Video.Mode()))
	if err := NewBoot(m, guest, frontend).Run(); err != nil {
		logger.Error("Boot failed", log.Err(err))
		m.Exit(1, "boot failed")
		return 1
	}
	m.Exit(0, "window closed")
	return 0
}
