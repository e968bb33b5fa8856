// Package errcode translates the six-character status tokens reported by
// parameter 303 into typed conditions, one table per device family.
//
// Tokens starting with "Err" are faults that stop the device, tokens
// starting with "Wrn" are advisory. "000000" always means no condition is
// active. Tokens outside the tables are a hard lookup failure rather than a
// best-effort guess; a firmware that reports something new should surface as
// an error, not as a silently wrong condition.
package errcode

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedToken reports a status payload absent from the family table.
var ErrUnrecognizedToken = errors.New("errcode: unrecognized status token")

// PumpCondition is a decoded turbopump drive-unit status.
type PumpCondition int

const (
	PumpNoError PumpCondition = iota
	PumpExcessRotationSpeed
	PumpExcessVoltage
	PumpRunUpError
	PumpOperatingFluidLow
	PumpConnectionFaulty
	PumpInternalDeviceError
	PumpSoftwareVersionIncompatible
	PumpDriveFault
	PumpInternalConfigurationError
	PumpExcessTemperatureElectronics
	PumpExcessTemperatureMotor
	PumpInitializationError
	PumpMagneticBearingOverloadAxial
	PumpMagneticBearingOverloadRadial
	PumpRotorInstable
	PumpUnknownConnectionPanel
	PumpTemperatureEvaluationFaulty
	PumpInternalCommunicationError
	PumpHighRotorTemperature
	PumpFinalStageGroupError
	PumpRotationSpeedMeasurementFaulty
	PumpSoftwareNotReleased
	PumpOperatingFluidSensorFaulty
	PumpCommunicationError
	PumpRotorTemperatureEvaluationFaulty
	PumpFinalStageTemperatureFaulty
	PumpHighDelay
	PumpBearingTemperatureHigh
	PumpCalibrationRequired
	PumpSafetyBearingWearHigh
	PumpHighRotorImbalance
)

// pumpTokens is taken from the TC 400 drive-unit manual. Err091 is listed
// there as a second token for the internal device error; some units report
// it instead of Err010.
var pumpTokens = map[string]PumpCondition{
	"000000": PumpNoError,
	"Err001": PumpExcessRotationSpeed,
	"Err002": PumpExcessVoltage,
	"Err006": PumpRunUpError,
	"Err007": PumpOperatingFluidLow,
	"Err008": PumpConnectionFaulty,
	"Err010": PumpInternalDeviceError,
	"Err021": PumpSoftwareVersionIncompatible,
	"Err041": PumpDriveFault,
	"Err043": PumpInternalConfigurationError,
	"Err044": PumpExcessTemperatureElectronics,
	"Err045": PumpExcessTemperatureMotor,
	"Err046": PumpInitializationError,
	"Err073": PumpMagneticBearingOverloadAxial,
	"Err074": PumpMagneticBearingOverloadRadial,
	"Err089": PumpRotorInstable,
	"Err091": PumpInternalDeviceError,
	"Err092": PumpUnknownConnectionPanel,
	"Err093": PumpTemperatureEvaluationFaulty,
	"Err098": PumpInternalCommunicationError,
	"Err106": PumpHighRotorTemperature,
	"Err107": PumpFinalStageGroupError,
	"Err108": PumpRotationSpeedMeasurementFaulty,
	"Err109": PumpSoftwareNotReleased,
	"Err110": PumpOperatingFluidSensorFaulty,
	"Err111": PumpCommunicationError,
	"Err113": PumpRotorTemperatureEvaluationFaulty,
	"Err114": PumpFinalStageTemperatureFaulty,
	"Wrn089": PumpHighDelay,
	"Wrn119": PumpBearingTemperatureHigh,
	"Wrn807": PumpCalibrationRequired,
	"Wrn890": PumpSafetyBearingWearHigh,
	"Wrn891": PumpHighRotorImbalance,
}

var pumpNames = map[PumpCondition]string{
	PumpNoError:                          "no error",
	PumpExcessRotationSpeed:              "excess rotation speed",
	PumpExcessVoltage:                    "excess voltage",
	PumpRunUpError:                       "run-up error",
	PumpOperatingFluidLow:                "operating fluid low",
	PumpConnectionFaulty:                 "connection faulty",
	PumpInternalDeviceError:              "internal device error",
	PumpSoftwareVersionIncompatible:      "software version incompatible",
	PumpDriveFault:                       "drive fault",
	PumpInternalConfigurationError:       "internal configuration error",
	PumpExcessTemperatureElectronics:     "excess temperature at electronics",
	PumpExcessTemperatureMotor:           "excess temperature at motor",
	PumpInitializationError:              "initialization error",
	PumpMagneticBearingOverloadAxial:     "magnetic bearing overload, axial",
	PumpMagneticBearingOverloadRadial:    "magnetic bearing overload, radial",
	PumpRotorInstable:                    "rotor instable",
	PumpUnknownConnectionPanel:           "unknown connection panel",
	PumpTemperatureEvaluationFaulty:      "temperature evaluation faulty",
	PumpInternalCommunicationError:       "internal communication error",
	PumpHighRotorTemperature:             "high rotor temperature",
	PumpFinalStageGroupError:             "final stage group error",
	PumpRotationSpeedMeasurementFaulty:   "rotation speed measurement faulty",
	PumpSoftwareNotReleased:              "software not released",
	PumpOperatingFluidSensorFaulty:       "operating fluid sensor faulty",
	PumpCommunicationError:               "pump communication error",
	PumpRotorTemperatureEvaluationFaulty: "rotor temperature evaluation faulty",
	PumpFinalStageTemperatureFaulty:      "final stage temperature faulty",
	PumpHighDelay:                        "high run-up delay",
	PumpBearingTemperatureHigh:           "bearing temperature high",
	PumpCalibrationRequired:              "calibration required",
	PumpSafetyBearingWearHigh:            "safety bearing wear high",
	PumpHighRotorImbalance:               "high rotor imbalance",
}

func (c PumpCondition) String() string {
	if s, ok := pumpNames[c]; ok {
		return s
	}
	return fmt.Sprintf("pump condition %d", int(c))
}

// IsFault reports whether the condition halts the pump, as opposed to a
// warning or the idle state.
func (c PumpCondition) IsFault() bool {
	switch c {
	case PumpNoError, PumpHighDelay, PumpBearingTemperatureHigh,
		PumpCalibrationRequired, PumpSafetyBearingWearHigh, PumpHighRotorImbalance:
		return false
	}
	return true
}

// Pump resolves a turbopump status token.
func Pump(token string) (PumpCondition, error) {
	c, ok := pumpTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: pump reported %q", ErrUnrecognizedToken, token)
	}
	return c, nil
}

// GaugeCondition is a decoded vacuum-gauge status.
type GaugeCondition int

const (
	GaugeNoError GaugeCondition = iota
	GaugeFilament1DefectiveInAuto
	GaugeDefective
	GaugeDefectiveMemory
	GaugeFilament1Defective
	GaugeFilament2Defective
	GaugeBothFilamentsDefective
)

var gaugeTokens = map[string]GaugeCondition{
	"000000": GaugeNoError,
	"Wrn001": GaugeFilament1DefectiveInAuto,
	"Err001": GaugeDefective,
	"Err002": GaugeDefectiveMemory,
	"Err003": GaugeFilament1Defective,
	"Err004": GaugeFilament2Defective,
	"Err005": GaugeBothFilamentsDefective,
}

var gaugeNames = map[GaugeCondition]string{
	GaugeNoError:                  "no error",
	GaugeFilament1DefectiveInAuto: "filament 1 defective, automatic switchover",
	GaugeDefective:                "defective gauge",
	GaugeDefectiveMemory:          "defective memory",
	GaugeFilament1Defective:       "filament 1 defective",
	GaugeFilament2Defective:       "filament 2 defective",
	GaugeBothFilamentsDefective:   "both filaments defective",
}

func (c GaugeCondition) String() string {
	if s, ok := gaugeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("gauge condition %d", int(c))
}

// IsFault reports whether the condition means the gauge cannot measure.
func (c GaugeCondition) IsFault() bool {
	return c != GaugeNoError && c != GaugeFilament1DefectiveInAuto
}

// Gauge resolves a vacuum-gauge status token.
func Gauge(token string) (GaugeCondition, error) {
	c, ok := gaugeTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: gauge reported %q", ErrUnrecognizedToken, token)
	}
	return c, nil
}
