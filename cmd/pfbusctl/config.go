package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pldsys/pfbus/internal/serialport"
)

// options are the per-user defaults; every field can be overridden by a
// flag.
type options struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
	Family      string
	Unit        int
	CharFilter  bool

	set map[string]bool
}

func defaultOptions() options {
	return options{
		Device:      "/dev/ttyUSB0",
		Baud:        serialport.DefaultBaud,
		ReadTimeout: serialport.DefaultReadTimeout,
		Family:      "pump",
		Unit:        1,
	}
}

// merge applies fields the rc file actually defined.
func (o options) merge(rc options) options {
	if rc.set["device"] {
		o.Device = rc.Device
	}
	if rc.set["baud"] {
		o.Baud = rc.Baud
	}
	if rc.set["read_timeout"] {
		o.ReadTimeout = rc.ReadTimeout
	}
	if rc.set["family"] {
		o.Family = rc.Family
	}
	if rc.set["unit"] {
		o.Unit = rc.Unit
	}
	if rc.set["char_filter"] {
		o.CharFilter = rc.CharFilter
	}
	return o
}

type rcFile struct {
	Device      string `toml:"device"`
	Baud        int    `toml:"baud"`
	ReadTimeout string `toml:"read_timeout"`
	Family      string `toml:"family"`
	Unit        int    `toml:"unit"`
	CharFilter  bool   `toml:"char_filter"`
}

func rcPath() string {
	if p := os.Getenv("PFBUSCTL_RC"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pfbus", "pfbusctl.toml")
}

// loadRC reads the per-user defaults file. A missing file is not an error.
func loadRC(path string) (options, error) {
	var out options
	out.set = map[string]bool{}
	if path == "" {
		return out, nil
	}

	var raw rcFile
	meta, err := toml.DecodeFile(path, &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return options{}, fmt.Errorf("load rc file %s: %w", path, err)
	}

	if meta.IsDefined("device") {
		out.Device = strings.TrimSpace(raw.Device)
		out.set["device"] = true
	}
	if meta.IsDefined("baud") {
		out.Baud = raw.Baud
		out.set["baud"] = true
	}
	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return options{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		out.ReadTimeout = d
		out.set["read_timeout"] = true
	}
	if meta.IsDefined("family") {
		out.Family = strings.TrimSpace(raw.Family)
		out.set["family"] = true
	}
	if meta.IsDefined("unit") {
		out.Unit = raw.Unit
		out.set["unit"] = true
	}
	if meta.IsDefined("char_filter") {
		out.CharFilter = raw.CharFilter
		out.set["char_filter"] = true
	}
	return out, nil
}
