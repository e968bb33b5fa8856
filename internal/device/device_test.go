package device

import (
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/protocol/errcode"
	"github.com/pldsys/pfbus/internal/protocol/params"
	"github.com/pldsys/pfbus/internal/sim"
)

// script is a canned transport: it records writes and replays a fixed
// response, for exercising echo validation with frames a conforming
// instrument would never send.
type script struct {
	wrote []byte
	resp  []byte
}

func (s *script) Write(p []byte) (int, error) {
	s.wrote = append(s.wrote, p...)
	return len(p), nil
}

func (s *script) ReadByte() (byte, error) {
	if len(s.resp) == 0 {
		return 0, io.EOF
	}
	b := s.resp[0]
	s.resp = s.resp[1:]
	return b, nil
}

func respFrame(addr, rw, param int, data string) []byte {
	f := fmt.Appendf(nil, "%03d%d0%03d%02d%s", addr, rw, param, len(data), data)
	return fmt.Appendf(f, "%03d\r", protocol.Checksum(f))
}

func newTestPump(t *testing.T, addr int) (*Pump, *sim.Instrument) {
	t.Helper()
	in := sim.New(addr, params.Turbopump)
	p, err := NewPump(in, addr)
	if err != nil {
		t.Fatal(err)
	}
	return p, in
}

func TestPumpReadTelemetry(t *testing.T) {
	p, in := newTestPump(t, 1)
	in.Set(params.TurboActualSpd, "001500")
	in.Set(params.TurboDrvPower, "012000")
	in.Set(params.TurboHeating, "1")
	in.Set(params.TurboElecName, "TC 400")

	if hz, err := p.ActualRotationSpeed(); err != nil || hz != 1500 {
		t.Fatalf("ActualRotationSpeed = %d, %v", hz, err)
	}
	if w, err := p.DrivePower(); err != nil || math.Abs(w-120) > 1e-9 {
		t.Fatalf("DrivePower = %g, %v", w, err)
	}
	if on, err := p.Heating(); err != nil || !on {
		t.Fatalf("Heating = %v, %v", on, err)
	}
	if name, err := p.ElectronicsName(); err != nil || name != "TC 400" {
		t.Fatalf("ElectronicsName = %q, %v", name, err)
	}
}

func TestPumpWriteRoundTrip(t *testing.T) {
	p, in := newTestPump(t, 1)

	if err := p.SetGasMode(2); err != nil {
		t.Fatal(err)
	}
	if v, ok := in.Raw(params.TurboGasMode); !ok || v != "2" {
		t.Fatalf("instrument stored %q, %v", v, ok)
	}
	if mode, err := p.GasMode(); err != nil || mode != 2 {
		t.Fatalf("GasMode = %d, %v", mode, err)
	}

	if err := p.SetRunUpTime(60); err != nil {
		t.Fatal(err)
	}
	if v, _ := in.Raw(params.TurboRunUpTime); v != "060" {
		t.Fatalf("run-up time stored as %q, want 3-digit field", v)
	}
}

func TestPumpRangeRejectedBeforeBus(t *testing.T) {
	s := &script{}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	var re params.RangeError
	if err := p.SetGasMode(3); !errors.As(err, &re) {
		t.Fatalf("got %v, want RangeError", err)
	}
	if len(s.wrote) != 0 {
		t.Fatalf("out-of-range write reached the bus: %q", s.wrote)
	}
}

func TestPumpDirectionEnforcement(t *testing.T) {
	s := &script{}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Read(params.TurboErrorAckn); !errors.Is(err, params.ErrNotReadable) {
		t.Fatalf("got %v, want ErrNotReadable", err)
	}
	if err := p.Write(params.TurboActualSpd, params.IntValue(9)); !errors.Is(err, params.ErrNotWritable) {
		t.Fatalf("got %v, want ErrNotWritable", err)
	}
	if len(s.wrote) != 0 {
		t.Fatalf("illegal direction reached the bus: %q", s.wrote)
	}
}

func TestReadRejectsWrongAddressEcho(t *testing.T) {
	s := &script{resp: respFrame(2, 0, 309, "001500")}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ActualRotationSpeed(); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestReadRejectsWrongParamEcho(t *testing.T) {
	s := &script{resp: respFrame(1, 0, 308, "001500")}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ActualRotationSpeed(); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestReadRejectsWriteDirectionEcho(t *testing.T) {
	s := &script{resp: respFrame(1, 1, 309, "001500")}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ActualRotationSpeed(); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestWriteRejectsPayloadEchoMismatch(t *testing.T) {
	s := &script{resp: respFrame(1, 1, 27, "1")}
	p, err := NewPump(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetGasMode(2); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestDeviceFaultTokensSurface(t *testing.T) {
	p, _ := newTestPump(t, 1)
	// Parameter 17 exists in the catalogue but was never seeded, so the
	// simulated firmware answers NO_DEF.
	if _, err := p.SlotConfig(params.TurboCfgSpdSwPt); !errors.Is(err, protocol.ErrUndefinedParameter) {
		t.Fatalf("got %v, want ErrUndefinedParameter", err)
	}
}

func TestDeadBusReadsAsTooShort(t *testing.T) {
	p, in := newTestPump(t, 1)
	in.SetSilent(true)
	if _, err := p.Heating(); !errors.Is(err, protocol.ErrResponseTooShort) {
		t.Fatalf("got %v, want ErrResponseTooShort", err)
	}
}

func TestPumpErrorCode(t *testing.T) {
	p, in := newTestPump(t, 1)
	in.Set(params.TurboErrorCode, "Err045")
	c, err := p.ErrorCode()
	if err != nil {
		t.Fatal(err)
	}
	if c != errcode.PumpExcessTemperatureMotor {
		t.Fatalf("ErrorCode = %v", c)
	}
}

func TestPumpAcknowledgeError(t *testing.T) {
	p, in := newTestPump(t, 1)
	if err := p.AcknowledgeError(); err != nil {
		t.Fatal(err)
	}
	if v, _ := in.Raw(params.TurboErrorAckn); v != "1" {
		t.Fatalf("acknowledge wrote %q", v)
	}
}

func TestPumpErrorHistory(t *testing.T) {
	p, in := newTestPump(t, 1)
	for i := 0; i < 10; i++ {
		in.Set(params.TurboErrHist1+i, fmt.Sprintf("%06d", i*10))
	}
	hist, err := p.ErrorHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 10 || hist[0] != 0 || hist[9] != 90 {
		t.Fatalf("ErrorHistory = %v", hist)
	}
}

func TestGaugeFacade(t *testing.T) {
	in := sim.New(2, params.Gauge)
	g, err := NewGauge(in, 2)
	if err != nil {
		t.Fatal(err)
	}
	in.Set(params.GaugePressure, "100018")
	in.Set(params.GaugeFwVersion, "010203")
	in.Set(params.GaugeCtrType, "    A1")
	in.Set(params.GaugeErrorCode, "000000")

	if hpa, err := g.Pressure(); err != nil || math.Abs(hpa-0.01) > 1e-12 {
		t.Fatalf("Pressure = %g, %v", hpa, err)
	}
	major, minor, patch, err := g.FirmwareVersion()
	if err != nil || major != 1 || minor != 2 || patch != 3 {
		t.Fatalf("FirmwareVersion = %d.%d.%d, %v", major, minor, patch, err)
	}
	if typ, err := g.Type(); err != nil || typ != "CPT 200" {
		t.Fatalf("Type = %q, %v", typ, err)
	}
	if c, err := g.ErrorCode(); err != nil || c != errcode.GaugeNoError {
		t.Fatalf("ErrorCode = %v, %v", c, err)
	}

	if err := g.SetCorrectionFactor(3.5); err != nil {
		t.Fatal(err)
	}
	if v, _ := in.Raw(params.GaugeCorrFactor); v != "000350" {
		t.Fatalf("correction factor on the wire = %q", v)
	}
	if cf, err := g.CorrectionFactor(); err != nil || math.Abs(cf-3.5) > 1e-9 {
		t.Fatalf("CorrectionFactor = %g, %v", cf, err)
	}
}

func TestNewRejectsBadAddress(t *testing.T) {
	if _, err := NewPump(&script{}, 256); !errors.Is(err, protocol.ErrInvalidAddress) {
		t.Fatalf("got %v, want ErrInvalidAddress", err)
	}
}
