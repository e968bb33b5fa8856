// Package device layers typed instrument access on top of the wire codec.
// A Device binds one bus address to one parameter catalogue and validates
// that every response echoes the request it answers.
package device

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/pldsys/pfbus/internal/observability"
	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/protocol/params"
)

var (
	// ErrInvalidResponse reports a well-formed frame that does not match the
	// request: wrong address, wrong parameter, wrong direction flag, or a
	// write acknowledgment that fails to echo the payload.
	ErrInvalidResponse = errors.New("device: response does not match request")
)

// Transport is the byte-level connection to the instrument bus. A serial
// port with a read timeout satisfies it when timed-out reads surface io.EOF;
// see the serialport package.
type Transport interface {
	io.Writer
	io.ByteReader
}

// Config assembles a Device.
type Config struct {
	// Addr is the bus address, 0 to 255.
	Addr int
	// Registry names the parameter catalogue, e.g. params.Turbopump.
	Registry params.Registry
	// Filter selects the invalid-character behavior for responses.
	Filter protocol.Filter
	// Logger is optional; the zero value discards everything.
	Logger zerolog.Logger
}

// Device talks to a single instrument on the bus. Methods are not safe for
// concurrent use; the bus is half duplex, so callers serialize access.
type Device struct {
	tr     Transport
	addr   int
	reg    params.Registry
	filter protocol.Filter
	log    zerolog.Logger
}

// New binds a transport to one bus address.
func New(tr Transport, cfg Config) (*Device, error) {
	if cfg.Addr < 0 || cfg.Addr > protocol.MaxAddress {
		return nil, fmt.Errorf("%w: %d", protocol.ErrInvalidAddress, cfg.Addr)
	}
	return &Device{
		tr:     tr,
		addr:   cfg.Addr,
		reg:    cfg.Registry,
		filter: cfg.Filter,
		log:    cfg.Logger,
	}, nil
}

// Addr returns the bus address the device was bound to.
func (d *Device) Addr() int { return d.addr }

// Read performs one data request and returns the decoded value.
func (d *Device) Read(num int) (params.Value, error) {
	desc, err := d.reg.Lookup(num)
	if err != nil {
		return params.Value{}, err
	}
	if desc.Access == params.WriteOnly {
		return params.Value{}, fmt.Errorf("%w: %s", params.ErrNotReadable, desc.Name)
	}

	start := time.Now()
	data, err := d.roundTrip(num, "", false)
	observability.RecordBusExchange(d.reg.Name(), "read", time.Since(start), err)
	if err != nil {
		return params.Value{}, err
	}

	v, err := d.reg.Decode(num, data)
	if err != nil {
		return params.Value{}, err
	}
	d.log.Debug().Int("addr", d.addr).Int("param", num).
		Str("name", desc.Name).Str("data", data).Msg("read")
	return v, nil
}

// Write encodes value, sends one control command, and checks that the
// instrument echoed the payload back.
func (d *Device) Write(num int, value params.Value) error {
	desc, err := d.reg.Lookup(num)
	if err != nil {
		return err
	}
	if desc.Access == params.ReadOnly {
		return fmt.Errorf("%w: %s", params.ErrNotWritable, desc.Name)
	}

	payload, err := d.reg.Encode(num, value)
	if err != nil {
		return err
	}
	start := time.Now()
	echo, err := d.roundTrip(num, payload, true)
	observability.RecordBusExchange(d.reg.Name(), "write", time.Since(start), err)
	if err != nil {
		return err
	}

	if echo != payload {
		return fmt.Errorf("%w: sent %q, instrument echoed %q", ErrInvalidResponse, payload, echo)
	}
	d.log.Debug().Int("addr", d.addr).Int("param", num).
		Str("name", desc.Name).Str("data", payload).Msg("write")
	return nil
}

// roundTrip sends one frame and reads one response, validating the echo
// fields. Reads expect rw=0, writes expect rw=1.
func (d *Device) roundTrip(num int, payload string, write bool) (string, error) {
	var frame []byte
	var err error
	if write {
		frame, err = protocol.BuildWriteCommand(d.addr, num, payload)
	} else {
		frame, err = protocol.BuildReadRequest(d.addr, num)
	}
	if err != nil {
		return "", err
	}
	if _, err := d.tr.Write(frame); err != nil {
		return "", fmt.Errorf("device: transport write: %w", err)
	}

	resp, err := protocol.ParseResponse(d.tr, d.filter)
	if err != nil {
		return "", err
	}

	wantRW := 0
	if write {
		wantRW = 1
	}
	if resp.Address != d.addr || resp.Param != num || resp.RW != wantRW {
		return "", fmt.Errorf("%w: sent addr=%d param=%d rw=%d, got addr=%d param=%d rw=%d",
			ErrInvalidResponse, d.addr, num, wantRW, resp.Address, resp.Param, resp.RW)
	}
	return resp.Data, nil
}

// readBool, readInt, readReal and readString unwrap the tagged value for the
// typed facades in pump.go and gauge.go.

func (d *Device) readBool(num int) (bool, error) {
	v, err := d.Read(num)
	if err != nil {
		return false, err
	}
	return v.Bool, nil
}

func (d *Device) readInt(num int) (int64, error) {
	v, err := d.Read(num)
	if err != nil {
		return 0, err
	}
	return v.Int, nil
}

func (d *Device) readReal(num int) (float64, error) {
	v, err := d.Read(num)
	if err != nil {
		return 0, err
	}
	return v.Real, nil
}

func (d *Device) readString(num int) (string, error) {
	v, err := d.Read(num)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

func (d *Device) setBool(num int, on bool) error {
	return d.Write(num, params.BoolValue(on))
}

func (d *Device) setInt(num int, n int64) error {
	return d.Write(num, params.IntValue(n))
}

func (d *Device) setReal(num int, x float64) error {
	return d.Write(num, params.RealValue(x))
}
