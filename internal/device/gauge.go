package device

import (
	"fmt"
	"strconv"

	"github.com/pldsys/pfbus/internal/protocol/errcode"
	"github.com/pldsys/pfbus/internal/protocol/params"
)

// Gauge is the typed facade over a vacuum gauge transmitter.
type Gauge struct {
	*Device
}

// NewGauge binds a transport to a gauge at addr.
func NewGauge(tr Transport, addr int, opts ...Option) (*Gauge, error) {
	cfg := Config{Addr: addr, Registry: params.Gauge}
	for _, o := range opts {
		o(&cfg)
	}
	d, err := New(tr, cfg)
	if err != nil {
		return nil, err
	}
	return &Gauge{Device: d}, nil
}

// Pressure reads the current measurement in hPa.
func (g *Gauge) Pressure() (float64, error) {
	return g.readReal(params.GaugePressure)
}

// PressureSetpoint reads the switching threshold, in the gauge's raw units.
func (g *Gauge) PressureSetpoint() (int64, error) {
	return g.readInt(params.GaugePressureSP)
}

func (g *Gauge) SetPressureSetpoint(v int64) error {
	return g.setInt(params.GaugePressureSP, v)
}

// CorrectionFactor reads the gas correction factor.
func (g *Gauge) CorrectionFactor() (float64, error) {
	return g.readReal(params.GaugeCorrFactor)
}

// SetCorrectionFactor sets the gas correction factor, 0.2 to 8.0.
func (g *Gauge) SetCorrectionFactor(f float64) error {
	return g.setReal(params.GaugeCorrFactor, f)
}

// FirmwareVersion returns the major, minor and patch components of the
// transmitter firmware, packed on the wire as three 2-digit fields.
func (g *Gauge) FirmwareVersion() (major, minor, patch int, err error) {
	raw, err := g.readString(params.GaugeFwVersion)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(raw) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: firmware version %q", params.ErrBadPayload, raw)
	}
	major, err = strconv.Atoi(raw[0:2])
	if err == nil {
		minor, err = strconv.Atoi(raw[2:4])
	}
	if err == nil {
		patch, err = strconv.Atoi(raw[4:6])
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: firmware version %q", params.ErrBadPayload, raw)
	}
	return major, minor, patch, nil
}

// Type resolves the transmitter model name from parameter 349.
func (g *Gauge) Type() (string, error) {
	raw, err := g.readString(params.GaugeCtrType)
	if err != nil {
		return "", err
	}
	return params.GaugeTypeName(raw), nil
}

// ErrorCode reads parameter 303 and resolves it against the gauge status
// table.
func (g *Gauge) ErrorCode() (errcode.GaugeCondition, error) {
	token, err := g.readString(params.GaugeErrorCode)
	if err != nil {
		return 0, err
	}
	return errcode.Gauge(token)
}
