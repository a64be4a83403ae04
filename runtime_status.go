// runtime_status.go - Runtime counters and status overlay text

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
	"fmt"
	"sync/atomic"
	"time"
)

// runtimeCounters are bumped by the capability table on the OS thread and
// read by the status overlay.
type runtimeCounters struct {
	blockReads    atomic.Uint64
	blockWrites   atomic.Uint64
	blockVerifies atomic.Uint64
	hidDelivered  atomic.Uint64
	modeSets      atomic.Uint64
	paletteWrites atomic.Uint64
}

type runtimeStatusSnapshot struct {
	state    BootState
	mode     Mode
	uptime   time.Duration
	disk     string
	diskPath string

	queuedKeys    int
	hidDelivered  uint64
	blockReads    uint64
	blockWrites   uint64
	blockVerifies uint64
	modeSets      uint64
	paletteWrites uint64
}

// Status gathers a consistent-enough view for display. Fields are read
// one at a time, so counters may be a call apart.
func (m *Machine) Status() runtimeStatusSnapshot {
	return runtimeStatusSnapshot{
		state:         m.State(),
		mode:          m.Video.Mode(),
		uptime:        m.Uptime(),
		disk:          accessLabel(m.Disk),
		diskPath:      m.Disk.Path(),
		queuedKeys:    m.HID.Len(),
		hidDelivered:  m.stats.hidDelivered.Load(),
		blockReads:    m.stats.blockReads.Load(),
		blockWrites:   m.stats.blockWrites.Load(),
		blockVerifies: m.stats.blockVerifies.Load(),
		modeSets:      m.stats.modeSets.Load(),
		paletteWrites: m.stats.paletteWrites.Load(),
	}
}

type statusToken struct {
	name    string
	enabled bool
}

type statusLine struct {
	label  string
	tokens []statusToken
}

func sep() statusToken { return statusToken{name: "|"} }

// overlayLines lays the snapshot out as the three rows of the F12 overlay.
func (s runtimeStatusSnapshot) overlayLines(fps float64) []statusLine {
	uptime := s.uptime.Truncate(time.Second)
	disk := "no disk"
	if s.diskPath != "" {
		disk = s.diskPath + " (" + s.disk + ")"
	}
	return []statusLine{
		{label: "OS   ", tokens: []statusToken{
			{name: s.state.String(), enabled: s.state == BootRunning},
			sep(),
			{name: uptime.String(), enabled: true},
			sep(),
			{name: fmt.Sprintf("%.0f fps", fps), enabled: fps > 0},
		}},
		{label: "VIDEO", tokens: []statusToken{
			{name: s.mode.String(), enabled: true},
			sep(),
			{name: fmt.Sprintf("modes %d", s.modeSets), enabled: s.modeSets > 0},
			sep(),
			{name: fmt.Sprintf("palette %d", s.paletteWrites), enabled: s.paletteWrites > 0},
		}},
		{label: "IO   ", tokens: []statusToken{
			{name: disk, enabled: s.diskPath != ""},
			sep(),
			{name: fmt.Sprintf("r%d w%d v%d", s.blockReads, s.blockWrites, s.blockVerifies),
				enabled: s.blockReads+s.blockWrites+s.blockVerifies > 0},
			sep(),
			{name: fmt.Sprintf("keys %d/%d", s.queuedKeys, s.hidDelivered), enabled: s.queuedKeys > 0},
		}},
	}
}
