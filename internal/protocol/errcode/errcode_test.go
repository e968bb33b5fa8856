package errcode

import (
	"errors"
	"testing"
)

func TestPumpTokenLookup(t *testing.T) {
	cases := []struct {
		token string
		want  PumpCondition
	}{
		{"000000", PumpNoError},
		{"Err001", PumpExcessRotationSpeed},
		{"Err045", PumpExcessTemperatureMotor},
		{"Err114", PumpFinalStageTemperatureFaulty},
		{"Wrn807", PumpCalibrationRequired},
	}
	for _, tc := range cases {
		got, err := Pump(tc.token)
		if err != nil {
			t.Fatalf("Pump(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("Pump(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestPumpErr091AliasesErr010(t *testing.T) {
	a, err := Pump("Err010")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Pump("Err091")
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != PumpInternalDeviceError {
		t.Fatalf("Err010 = %v, Err091 = %v, both should be the internal device error", a, b)
	}
}

func TestPumpUnknownToken(t *testing.T) {
	for _, token := range []string{"Err999", "Wrn000", "", "NO_DEF", "err001"} {
		if _, err := Pump(token); !errors.Is(err, ErrUnrecognizedToken) {
			t.Fatalf("Pump(%q): got %v, want ErrUnrecognizedToken", token, err)
		}
	}
}

func TestPumpSeverity(t *testing.T) {
	if PumpNoError.IsFault() {
		t.Fatal("idle state classified as fault")
	}
	if PumpCalibrationRequired.IsFault() {
		t.Fatal("warning classified as fault")
	}
	if !PumpDriveFault.IsFault() {
		t.Fatal("drive fault not classified as fault")
	}
}

func TestGaugeTokenLookup(t *testing.T) {
	cases := []struct {
		token string
		want  GaugeCondition
	}{
		{"000000", GaugeNoError},
		{"Wrn001", GaugeFilament1DefectiveInAuto},
		{"Err001", GaugeDefective},
		{"Err005", GaugeBothFilamentsDefective},
	}
	for _, tc := range cases {
		got, err := Gauge(tc.token)
		if err != nil {
			t.Fatalf("Gauge(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("Gauge(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestGaugeUnknownToken(t *testing.T) {
	// Err006 exists on pumps but not gauges; the families must not share tables.
	if _, err := Gauge("Err006"); !errors.Is(err, ErrUnrecognizedToken) {
		t.Fatalf("got %v, want ErrUnrecognizedToken", err)
	}
}

func TestConditionStrings(t *testing.T) {
	if s := PumpExcessRotationSpeed.String(); s != "excess rotation speed" {
		t.Fatalf("got %q", s)
	}
	if s := GaugeBothFilamentsDefective.String(); s != "both filaments defective" {
		t.Fatalf("got %q", s)
	}
}
