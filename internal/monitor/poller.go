// Package monitor polls instruments on a bus and serves the latest
// readings over HTTP.
package monitor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pldsys/pfbus/internal/device"
)

// PumpSource is one polled turbopump.
type PumpSource struct {
	Name string
	Dev  *device.Pump
}

// GaugeSource is one polled vacuum gauge.
type GaugeSource struct {
	Name string
	Dev  *device.Gauge
}

// Reading is the last known state of one instrument. Pointer fields are nil
// when the instrument family does not report them.
type Reading struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Addr      int       `json:"addr"`
	Online    bool      `json:"online"`
	Condition string    `json:"condition,omitempty"`
	Fault     bool      `json:"fault"`
	SpeedHz   *int64    `json:"speed_hz,omitempty"`
	PowerW    *float64  `json:"power_w,omitempty"`
	Pressure  *float64  `json:"pressure_hpa,omitempty"`
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Poller walks the bus sequentially. The bus is half duplex, so one
// goroutine owns all instrument traffic and everyone else reads snapshots.
type Poller struct {
	pumps    []PumpSource
	gauges   []GaugeSource
	interval time.Duration
	log      zerolog.Logger

	mu       sync.RWMutex
	readings map[string]Reading
}

func NewPoller(pumps []PumpSource, gauges []GaugeSource, interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		pumps:    pumps,
		gauges:   gauges,
		interval: interval,
		log:      log,
		readings: make(map[string]Reading),
	}
}

// Run polls until stop is closed.
func (p *Poller) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.PollOnce()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.PollOnce()
		}
	}
}

// PollOnce refreshes every instrument's reading.
func (p *Poller) PollOnce() {
	for _, src := range p.pumps {
		r := p.pollPump(src)
		p.store(r)
	}
	for _, src := range p.gauges {
		r := p.pollGauge(src)
		p.store(r)
	}
}

func (p *Poller) pollPump(src PumpSource) Reading {
	r := Reading{Name: src.Name, Kind: "turbopump", Addr: src.Dev.Addr(), UpdatedAt: time.Now()}

	hz, err := src.Dev.ActualRotationSpeed()
	if err != nil {
		return p.offline(r, err)
	}
	r.SpeedHz = &hz

	if w, err := src.Dev.DrivePower(); err == nil {
		r.PowerW = &w
	}

	cond, err := src.Dev.ErrorCode()
	if err != nil {
		return p.offline(r, err)
	}
	r.Online = true
	r.Condition = cond.String()
	r.Fault = cond.IsFault()
	return r
}

func (p *Poller) pollGauge(src GaugeSource) Reading {
	r := Reading{Name: src.Name, Kind: "gauge", Addr: src.Dev.Addr(), UpdatedAt: time.Now()}

	hpa, err := src.Dev.Pressure()
	if err != nil {
		return p.offline(r, err)
	}
	r.Pressure = &hpa

	cond, err := src.Dev.ErrorCode()
	if err != nil {
		return p.offline(r, err)
	}
	r.Online = true
	r.Condition = cond.String()
	r.Fault = cond.IsFault()
	return r
}

func (p *Poller) offline(r Reading, err error) Reading {
	r.Online = false
	r.LastError = err.Error()
	p.log.Warn().Str("instrument", r.Name).Int("addr", r.Addr).Err(err).Msg("poll failed")
	return r
}

func (p *Poller) store(r Reading) {
	p.mu.Lock()
	p.readings[r.Name] = r
	p.mu.Unlock()
}

// Reading returns the last reading for one instrument.
func (p *Poller) Reading(name string) (Reading, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.readings[name]
	return r, ok
}

// Readings returns a copy of every instrument's last reading.
func (p *Poller) Readings() []Reading {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Reading, 0, len(p.readings))
	for _, r := range p.readings {
		out = append(out, r)
	}
	return out
}
