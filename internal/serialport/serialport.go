// Package serialport adapts a physical serial port to the byte-level
// transport the device package consumes.
package serialport

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

const (
	// DefaultBaud matches the factory setting of the supported instruments.
	DefaultBaud = 9600
	// DefaultReadTimeout bounds each byte read; the response parser treats a
	// timed-out read as end-of-stream.
	DefaultReadTimeout = time.Second
)

// Config describes one serial connection.
type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	return c
}

// Port is an open serial connection. It satisfies device.Transport: Write
// sends request frames, ReadByte feeds the response parser one byte at a
// time and reports io.EOF when the port times out.
type Port struct {
	port *serial.Port
	one  [1]byte
}

// Open opens the named device, 8N1 framing.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("serialport: device path required")
	}
	cfg = cfg.withDefaults()
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", cfg.Device, err)
	}
	return &Port{port: p}, nil
}

func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// ReadByte reads one byte. A read that returns no data within the port's
// timeout surfaces as io.EOF, which the response parser takes as
// end-of-stream.
func (p *Port) ReadByte() (byte, error) {
	n, err := p.port.Read(p.one[:])
	if n == 1 {
		return p.one[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

// Flush discards buffered input, clearing half-read frames after an error.
func (p *Port) Flush() error {
	return p.port.Flush()
}

func (p *Port) Close() error {
	return p.port.Close()
}
