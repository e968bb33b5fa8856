// Package sim provides an in-memory instrument for tests and bench work.
// An Instrument implements device.Transport: frames written to it are
// answered from a parameter store on subsequent reads.
package sim

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/protocol/params"
)

// Instrument simulates one device on a half-duplex bus. Requests addressed
// to a different unit produce no response bytes, the same as real hardware.
type Instrument struct {
	mu     sync.Mutex
	addr   int
	reg    params.Registry
	values map[int]string
	out    []byte

	// noise is injected before the next response frame.
	noise []byte
	// corruptNext flips a byte of the next response checksum.
	corruptNext bool
	// silent drops all responses when set.
	silent bool
}

// New builds an instrument at addr backed by the given catalogue.
func New(addr int, reg params.Registry) *Instrument {
	return &Instrument{
		addr:   addr,
		reg:    reg,
		values: make(map[int]string),
	}
}

// Set seeds the raw payload the instrument reports for a parameter.
func (in *Instrument) Set(param int, payload string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.values[param] = payload
}

// Raw returns the currently stored payload for a parameter.
func (in *Instrument) Raw(param int) (string, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	v, ok := in.values[param]
	return v, ok
}

// InjectNoise prepends bytes to the next response, for exercising the
// invalid-character filter.
func (in *Instrument) InjectNoise(b []byte) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.noise = append(in.noise, b...)
}

// CorruptNextChecksum makes the next response carry a wrong checksum.
func (in *Instrument) CorruptNextChecksum() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.corruptNext = true
}

// SetSilent drops all responses while enabled, simulating a dead bus.
func (in *Instrument) SetSilent(on bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.silent = on
}

// Write accepts one request frame and queues the response.
func (in *Instrument) Write(p []byte) (int, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	req, err := parseRequest(p)
	if err != nil {
		return 0, fmt.Errorf("sim: bad request frame: %w", err)
	}
	if req.addr != in.addr || in.silent {
		return len(p), nil
	}

	var data string
	rw := 0
	switch {
	case !req.write:
		stored, ok := in.values[req.param]
		if !ok {
			data = "NO_DEF"
		} else {
			data = stored
		}
	default:
		rw = 1
		d, err := in.reg.Lookup(req.param)
		switch {
		case err != nil:
			data = "NO_DEF"
		case d.Access == params.ReadOnly:
			data = "_LOGIC"
		default:
			in.values[req.param] = req.payload
			data = req.payload
		}
	}

	frame := fmt.Appendf(nil, "%03d%d0%03d%02d%s", in.addr, rw, req.param, len(data), data)
	frame = fmt.Appendf(frame, "%03d\r", protocol.Checksum(frame))
	if in.corruptNext {
		frame[len(frame)-2] ^= 0x01
		in.corruptNext = false
	}
	if len(in.noise) > 0 {
		in.out = append(in.out, in.noise...)
		in.noise = nil
	}
	in.out = append(in.out, frame...)
	return len(p), nil
}

// ReadByte pops one queued response byte. An empty queue reads as io.EOF,
// matching a serial port read timeout.
func (in *Instrument) ReadByte() (byte, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.out) == 0 {
		return 0, io.EOF
	}
	b := in.out[0]
	in.out = in.out[1:]
	return b, nil
}

type request struct {
	addr    int
	write   bool
	param   int
	payload string
}

// parseRequest validates an incoming frame the way firmware does: fixed
// header fields, trailing checksum, CR terminator.
func parseRequest(p []byte) (request, error) {
	if len(p) < 14 || p[len(p)-1] != '\r' {
		return request{}, fmt.Errorf("truncated frame %q", p)
	}
	body, sum := p[:len(p)-4], p[len(p)-4:len(p)-1]
	want, err := strconv.Atoi(string(sum))
	if err != nil || protocol.Checksum(body) != want {
		return request{}, fmt.Errorf("bad checksum in %q", p)
	}
	addr, err := strconv.Atoi(string(p[0:3]))
	if err != nil {
		return request{}, fmt.Errorf("bad address in %q", p)
	}
	param, err := strconv.Atoi(string(p[5:8]))
	if err != nil {
		return request{}, fmt.Errorf("bad parameter in %q", p)
	}
	var req request
	req.addr = addr
	req.param = param
	switch string(p[3:5]) {
	case "00":
		if string(body[8:]) != "02=?" {
			return request{}, fmt.Errorf("bad data request in %q", p)
		}
	case "10":
		n, err := strconv.Atoi(string(p[8:10]))
		if err != nil || len(body) != 10+n {
			return request{}, fmt.Errorf("bad payload length in %q", p)
		}
		req.write = true
		req.payload = string(body[10:])
	default:
		return request{}, fmt.Errorf("bad action field in %q", p)
	}
	return req, nil
}
