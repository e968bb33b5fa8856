package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// BusConfig describes one serial bus and the instruments attached to it.
type BusConfig struct {
	Device      string             `toml:"device"`
	Baud        int                `toml:"baud"`
	ReadTimeout duration           `toml:"read_timeout"`
	CharFilter  string             `toml:"char_filter"`
	Pumps       []InstrumentConfig `toml:"pumps"`
	Gauges      []InstrumentConfig `toml:"gauges"`
	Monitor     MonitorConfig      `toml:"monitor"`
}

// InstrumentConfig names one addressed unit on the bus.
type InstrumentConfig struct {
	Name string `toml:"name"`
	Addr int    `toml:"addr"`
}

// MonitorConfig configures the pfmon HTTP endpoint.
type MonitorConfig struct {
	Addr         string   `toml:"addr"`
	CorsOrigins  []string `toml:"cors_origins"`
	PollInterval duration `toml:"poll_interval"`
}

// duration accepts TOML strings like "500ms" or "2s".
type duration time.Duration

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d duration) Std() time.Duration { return time.Duration(d) }

// LoadBusConfig reads, defaults and validates a bus configuration.
func LoadBusConfig(path string) (BusConfig, error) {
	var cfg BusConfig
	if err := loadToml(path, &cfg); err != nil {
		return BusConfig{}, err
	}
	if cfg.Baud == 0 {
		cfg.Baud = 9600
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = duration(time.Second)
	}
	if cfg.CharFilter == "" {
		cfg.CharFilter = "off"
	}
	if cfg.Monitor.Addr == "" {
		cfg.Monitor.Addr = ":9090"
	}
	if cfg.Monitor.PollInterval == 0 {
		cfg.Monitor.PollInterval = duration(5 * time.Second)
	}
	if err := ValidateBusConfig(cfg); err != nil {
		return BusConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateBusConfig(cfg BusConfig) error {
	if strings.TrimSpace(cfg.Device) == "" {
		return fmt.Errorf("bus config missing device")
	}
	switch cfg.CharFilter {
	case "on", "off":
	default:
		return fmt.Errorf("bus config char_filter must be \"on\" or \"off\", got %q", cfg.CharFilter)
	}
	seen := make(map[int]string)
	for _, in := range append(append([]InstrumentConfig{}, cfg.Pumps...), cfg.Gauges...) {
		if err := ValidateInstrumentEntry(in); err != nil {
			return fmt.Errorf("instrument %q invalid: %w", in.Name, err)
		}
		if prev, dup := seen[in.Addr]; dup {
			return fmt.Errorf("instruments %q and %q share bus address %d", prev, in.Name, in.Addr)
		}
		seen[in.Addr] = in.Name
	}
	return nil
}

func ValidateInstrumentEntry(in InstrumentConfig) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if in.Addr < 0 || in.Addr > 255 {
		return fmt.Errorf("addr %d outside 0..255", in.Addr)
	}
	return nil
}
