package params

import (
	"errors"
	"math"
	"testing"
)

func TestEncodeDecodeBoundaryRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		reg  Registry
		num  int
		vals []Value
	}{
		{"gas mode", Turbopump, TurboGasMode, []Value{IntValue(0), IntValue(1), IntValue(2)}},
		{"DO1 config", Turbopump, TurboCfgDO1, []Value{IntValue(0), IntValue(22)}},
		{"DI2 config", Turbopump, TurboCfgDI2, []Value{IntValue(0), IntValue(7)}},
		{"control interface", Turbopump, TurboCtrlViaInt, []Value{IntValue(1), IntValue(255)}},
		{"run-up time", Turbopump, TurboRunUpTime, []Value{IntValue(1), IntValue(120)}},
		{"speed switch point", Turbopump, TurboRotSpdSwPt1, []Value{IntValue(50), IntValue(97)}},
		{"heating", Turbopump, TurboHeating, []Value{BoolValue(false), BoolValue(true)}},
		{"correction factor", Gauge, GaugeCorrFactor, []Value{RealValue(0.2), RealValue(8.0)}},
		{"pressure setpoint", Gauge, GaugePressureSP, []Value{IntValue(0), IntValue(999)}},
	}
	for _, tc := range cases {
		for _, v := range tc.vals {
			data, err := tc.reg.Encode(tc.num, v)
			if err != nil {
				t.Fatalf("%s: encode %+v: %v", tc.name, v, err)
			}
			got, err := tc.reg.Decode(tc.num, data)
			if err != nil {
				t.Fatalf("%s: decode %q: %v", tc.name, data, err)
			}
			if got != v {
				t.Fatalf("%s: round trip %+v -> %q -> %+v", tc.name, v, data, got)
			}
		}
	}
}

func TestEncodeFixedWidths(t *testing.T) {
	cases := []struct {
		reg  Registry
		num  int
		v    Value
		want string
	}{
		{Turbopump, TurboGasMode, IntValue(2), "2"},
		{Turbopump, TurboCfgDO1, IntValue(22), "22"},
		{Turbopump, TurboCtrlViaInt, IntValue(8), "008"},
		{Turbopump, TurboRunUpTime, IntValue(60), "060"},
		{Turbopump, TurboRotSpdSwPt1, IntValue(97), "097"},
		{Turbopump, TurboHeating, BoolValue(true), "1"},
		{Turbopump, TurboErrorAckn, BoolValue(true), "1"},
		{Gauge, GaugePressureSP, IntValue(0), "000"},
		{Gauge, GaugeCorrFactor, RealValue(3.5), "000350"},
		{Gauge, GaugeCorrFactor, RealValue(0.2), "000020"},
		{Gauge, GaugeCorrFactor, RealValue(8.0), "000800"},
	}
	for _, tc := range cases {
		got, err := tc.reg.Encode(tc.num, tc.v)
		if err != nil {
			t.Fatalf("encode %s %d: %v", tc.reg.Name(), tc.num, err)
		}
		if got != tc.want {
			t.Fatalf("encode %s %d: got %q, want %q", tc.reg.Name(), tc.num, got, tc.want)
		}
	}
}

func TestEncodeRejectsOutOfDomain(t *testing.T) {
	cases := []struct {
		name string
		reg  Registry
		num  int
		v    Value
	}{
		{"gas mode high", Turbopump, TurboGasMode, IntValue(3)},
		{"gas mode low", Turbopump, TurboGasMode, IntValue(-1)},
		{"DO2 config high", Turbopump, TurboCfgDO2, IntValue(23)},
		{"control interface low", Turbopump, TurboCtrlViaInt, IntValue(0)},
		{"run-up time low", Turbopump, TurboRunUpTime, IntValue(0)},
		{"run-up time high", Turbopump, TurboRunUpTime, IntValue(121)},
		{"switch point low", Turbopump, TurboRotSpdSwPt1, IntValue(49)},
		{"switch point high", Turbopump, TurboRotSpdSwPt1, IntValue(98)},
		{"correction factor low", Gauge, GaugeCorrFactor, RealValue(0.19)},
		{"correction factor high", Gauge, GaugeCorrFactor, RealValue(8.01)},
	}
	for _, tc := range cases {
		_, err := tc.reg.Encode(tc.num, tc.v)
		var re RangeError
		if !errors.As(err, &re) {
			t.Fatalf("%s: got %v, want RangeError", tc.name, err)
		}
	}
}

// TestGaugeCorrectionFactorDomain pins the code-enforced 0.2–8.0 range; the
// vendor docstring's 0.2–0.8 is the documented-wrong one.
func TestGaugeCorrectionFactorDomain(t *testing.T) {
	if _, err := Gauge.Encode(GaugeCorrFactor, RealValue(5.0)); err != nil {
		t.Fatalf("5.0 must be inside the domain: %v", err)
	}
	if _, err := Gauge.Encode(GaugeCorrFactor, RealValue(8.0)); err != nil {
		t.Fatalf("8.0 must be inside the domain: %v", err)
	}
}

func TestDecodeScaledTelemetry(t *testing.T) {
	cases := []struct {
		num  int
		data string
		want float64
	}{
		{TurboDrvCurrent, "000250", 2.5},
		{TurboDrvVoltage, "002405", 24.05},
		{TurboDrvPower, "012000", 120.0},
		{TurboTempElec, "000425", 42.5},
		{TurboTempMotor, "000318", 31.8},
	}
	for _, tc := range cases {
		v, err := Turbopump.Decode(tc.num, tc.data)
		if err != nil {
			t.Fatalf("decode %d %q: %v", tc.num, tc.data, err)
		}
		if math.Abs(v.Real-tc.want) > 1e-9 {
			t.Fatalf("decode %d %q: got %g, want %g", tc.num, tc.data, v.Real, tc.want)
		}
	}
}

func TestDecodeGaugePressure(t *testing.T) {
	v, err := Gauge.Decode(GaugePressure, "100018")
	if err != nil {
		t.Fatalf("decode pressure: %v", err)
	}
	if math.Abs(v.Real-0.01) > 1e-12 {
		t.Fatalf("pressure: got %g hPa, want 0.01", v.Real)
	}

	// Atmosphere-ish: 9800 * 10^(22-23) = 980 hPa.
	v, err = Gauge.Decode(GaugePressure, "980022")
	if err != nil {
		t.Fatalf("decode pressure: %v", err)
	}
	if math.Abs(v.Real-980) > 1e-9 {
		t.Fatalf("pressure: got %g hPa, want 980", v.Real)
	}
}

func TestDecodeBoolNonZero(t *testing.T) {
	for data, want := range map[string]bool{"0": false, "1": true, "000000": false, "000001": true} {
		v, err := Turbopump.Decode(TurboHeating, data)
		if err != nil {
			t.Fatalf("decode %q: %v", data, err)
		}
		if v.Bool != want {
			t.Fatalf("decode %q: got %v, want %v", data, v.Bool, want)
		}
	}
}

func TestDecodeStringVerbatim(t *testing.T) {
	v, err := Turbopump.Decode(TurboElecName, "TC 400")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Str != "TC 400" {
		t.Fatalf("string payload altered: %q", v.Str)
	}
}

func TestLookupUnknownParameter(t *testing.T) {
	if _, err := Turbopump.Lookup(555); !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("got %v, want ErrUnknownParameter", err)
	}
	if _, err := Gauge.Decode(700, "060"); !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("decode unknown: got %v, want ErrUnknownParameter", err)
	}
}

func TestEncodeKindMismatch(t *testing.T) {
	if _, err := Turbopump.Encode(TurboGasMode, BoolValue(true)); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("got %v, want ErrKindMismatch", err)
	}
}

func TestCatalogueShape(t *testing.T) {
	// Every boolean control flag from the drive-unit manual is present.
	for _, num := range []int{1, 2, 4, 10, 12, 23, 26, 50} {
		d, err := Turbopump.Lookup(num)
		if err != nil {
			t.Fatalf("lookup %d: %v", num, err)
		}
		if d.Kind != KindBool {
			t.Fatalf("parameter %d: kind %v, want KindBool", num, d.Kind)
		}
	}
	// The 10-slot error history is contiguous and read-only.
	for num := TurboErrHist1; num <= TurboErrHist10; num++ {
		d, err := Turbopump.Lookup(num)
		if err != nil {
			t.Fatalf("lookup %d: %v", num, err)
		}
		if d.Access != ReadOnly || d.Kind != KindUint {
			t.Fatalf("parameter %d: %+v, want read-only integer", num, d)
		}
	}
}

func TestGaugeTypeName(t *testing.T) {
	if got := GaugeTypeName("    A3"); got != "PPT 200" {
		t.Fatalf("A3: got %q", got)
	}
	if got := GaugeTypeName("    Z9"); got != "unrecognized gauge type" {
		t.Fatalf("unknown code: got %q", got)
	}
}
