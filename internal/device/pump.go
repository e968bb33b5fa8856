package device

import (
	"github.com/rs/zerolog"

	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/protocol/errcode"
	"github.com/pldsys/pfbus/internal/protocol/params"
)

// Pump is the typed facade over a turbopump drive unit.
type Pump struct {
	*Device
}

// NewPump binds a transport to a drive unit at addr.
func NewPump(tr Transport, addr int, opts ...Option) (*Pump, error) {
	cfg := Config{Addr: addr, Registry: params.Turbopump}
	for _, o := range opts {
		o(&cfg)
	}
	d, err := New(tr, cfg)
	if err != nil {
		return nil, err
	}
	return &Pump{Device: d}, nil
}

// Switch states.

func (p *Pump) Heating() (bool, error)          { return p.readBool(params.TurboHeating) }
func (p *Pump) SetHeating(on bool) error        { return p.setBool(params.TurboHeating, on) }
func (p *Pump) Standby() (bool, error)          { return p.readBool(params.TurboStandby) }
func (p *Pump) SetStandby(on bool) error        { return p.setBool(params.TurboStandby, on) }
func (p *Pump) RunUpTimeCtrl() (bool, error)    { return p.readBool(params.TurboRunUpTimeCtrl) }
func (p *Pump) SetRunUpTimeCtrl(on bool) error  { return p.setBool(params.TurboRunUpTimeCtrl, on) }
func (p *Pump) PumpingStation() (bool, error)   { return p.readBool(params.TurboPumpgStatn) }
func (p *Pump) SetPumpingStation(on bool) error { return p.setBool(params.TurboPumpgStatn, on) }
func (p *Pump) VentingEnabled() (bool, error)   { return p.readBool(params.TurboEnableVent) }
func (p *Pump) SetVentingEnabled(on bool) error { return p.setBool(params.TurboEnableVent, on) }
func (p *Pump) MotorPump() (bool, error)        { return p.readBool(params.TurboMotorPump) }
func (p *Pump) SetMotorPump(on bool) error      { return p.setBool(params.TurboMotorPump, on) }
func (p *Pump) SpeedSetMode() (bool, error)     { return p.readBool(params.TurboSpdSetMode) }
func (p *Pump) SetSpeedSetMode(on bool) error   { return p.setBool(params.TurboSpdSetMode, on) }
func (p *Pump) SealingGas() (bool, error)       { return p.readBool(params.TurboSealingGas) }
func (p *Pump) SetSealingGas(on bool) error     { return p.setBool(params.TurboSealingGas, on) }

// AcknowledgeError clears a latched fault on the drive unit.
func (p *Pump) AcknowledgeError() error { return p.setBool(params.TurboErrorAckn, true) }

// Configuration values.

func (p *Pump) GasMode() (int64, error)           { return p.readInt(params.TurboGasMode) }
func (p *Pump) SetGasMode(mode int64) error       { return p.setInt(params.TurboGasMode, mode) }
func (p *Pump) VentMode() (int64, error)          { return p.readInt(params.TurboVentMode) }
func (p *Pump) SetVentMode(mode int64) error      { return p.setInt(params.TurboVentMode, mode) }
func (p *Pump) RemoteConfig() (int64, error)      { return p.readInt(params.TurboCfgRemote) }
func (p *Pump) SetRemoteConfig(cfg int64) error   { return p.setInt(params.TurboCfgRemote, cfg) }
func (p *Pump) BackingPumpMode() (int64, error)   { return p.readInt(params.TurboOpModeBKP) }
func (p *Pump) SetBackingPumpMode(m int64) error  { return p.setInt(params.TurboOpModeBKP, m) }
func (p *Pump) ControlInterface() (int64, error)  { return p.readInt(params.TurboCtrlViaInt) }
func (p *Pump) SetControlInterface(i int64) error { return p.setInt(params.TurboCtrlViaInt, i) }
func (p *Pump) InterfaceLocked() (bool, error)    { return p.readBool(params.TurboIntSelLckd) }
func (p *Pump) SetInterfaceLocked(on bool) error  { return p.setBool(params.TurboIntSelLckd, on) }
func (p *Pump) RunUpTime() (int64, error)         { return p.readInt(params.TurboRunUpTime) }
func (p *Pump) SetRunUpTime(minutes int64) error  { return p.setInt(params.TurboRunUpTime, minutes) }
func (p *Pump) SpeedSwitchPoint() (int64, error)  { return p.readInt(params.TurboRotSpdSwPt1) }
func (p *Pump) SetSpeedSwitchPoint(pct int64) error {
	return p.setInt(params.TurboRotSpdSwPt1, pct)
}

// SlotConfig reads an accessory or I/O slot assignment. The param argument
// is one of the params.TurboCfg* constants; the catalogue enforces each
// slot's legal range on writes.
func (p *Pump) SlotConfig(param int) (int64, error)    { return p.readInt(param) }
func (p *Pump) SetSlotConfig(param int, v int64) error { return p.setInt(param, v) }

// Run-state telemetry.

func (p *Pump) RemotePriority() (bool, error)          { return p.readBool(params.TurboRemotePri) }
func (p *Pump) SpeedSwitchPointReached() (bool, error) { return p.readBool(params.TurboSpdSwPtAtt) }
func (p *Pump) OverTempElectronics() (bool, error)     { return p.readBool(params.TurboOvTempElec) }
func (p *Pump) OverTempPump() (bool, error)            { return p.readBool(params.TurboOvTempPump) }
func (p *Pump) TargetSpeedReached() (bool, error)      { return p.readBool(params.TurboSetSpdAtt) }
func (p *Pump) Accelerating() (bool, error)            { return p.readBool(params.TurboPumpAccel) }

func (p *Pump) SetRotationSpeed() (int64, error)    { return p.readInt(params.TurboSetRotSpd) }
func (p *Pump) ActualRotationSpeed() (int64, error) { return p.readInt(params.TurboActualSpd) }
func (p *Pump) NominalSpeed() (int64, error)        { return p.readInt(params.TurboNominalSpd) }
func (p *Pump) OperatingHoursPump() (int64, error)  { return p.readInt(params.TurboOpHrsPump) }
func (p *Pump) OperatingHoursElec() (int64, error)  { return p.readInt(params.TurboOpHrsElec) }
func (p *Pump) PumpCycles() (int64, error)          { return p.readInt(params.TurboPumpCycles) }
func (p *Pump) SetRotationSpeedRPM() (int64, error) { return p.readInt(params.TurboSetRotSpdRPM) }
func (p *Pump) ActualSpeedRPM() (int64, error)      { return p.readInt(params.TurboActualSpdRPM) }
func (p *Pump) NominalSpeedRPM() (int64, error)     { return p.readInt(params.TurboNominalSpdRPM) }

func (p *Pump) DriveCurrent() (float64, error)    { return p.readReal(params.TurboDrvCurrent) }
func (p *Pump) DriveVoltage() (float64, error)    { return p.readReal(params.TurboDrvVoltage) }
func (p *Pump) DrivePower() (float64, error)      { return p.readReal(params.TurboDrvPower) }
func (p *Pump) TempElectronics() (float64, error) { return p.readReal(params.TurboTempElec) }
func (p *Pump) TempPumpBottom() (float64, error)  { return p.readReal(params.TurboTempPmpBot) }
func (p *Pump) AccelDecel() (float64, error)      { return p.readReal(params.TurboAccelDecel) }
func (p *Pump) SealingGasFlow() (float64, error)  { return p.readReal(params.TurboSealGasFlw) }
func (p *Pump) TempBearing() (float64, error)     { return p.readReal(params.TurboTempBearng) }
func (p *Pump) TempMotor() (float64, error)       { return p.readReal(params.TurboTempMotor) }

func (p *Pump) FirmwareVersion() (string, error) { return p.readString(params.TurboFwVersion) }
func (p *Pump) ElectronicsName() (string, error) { return p.readString(params.TurboElecName) }
func (p *Pump) HardwareVersion() (string, error) { return p.readString(params.TurboHwVersion) }
func (p *Pump) PumpTypeName() (string, error)    { return p.readString(params.TurboPrsSn1Name) }
func (p *Pump) SensorName() (string, error)      { return p.readString(params.TurboPrsSn2Name) }

// ErrorCode reads parameter 303 and resolves it against the drive-unit
// status table.
func (p *Pump) ErrorCode() (errcode.PumpCondition, error) {
	token, err := p.readString(params.TurboErrorCode)
	if err != nil {
		return 0, err
	}
	return errcode.Pump(token)
}

// ErrorHistory returns the ten most recent fault codes, newest first.
// Slots that never latched a fault read as zero.
func (p *Pump) ErrorHistory() ([]int64, error) {
	hist := make([]int64, 0, 10)
	for num := params.TurboErrHist1; num <= params.TurboErrHist10; num++ {
		code, err := p.readInt(num)
		if err != nil {
			return nil, err
		}
		hist = append(hist, code)
	}
	return hist, nil
}

// Option tweaks a Config before the Device is built.
type Option func(*Config)

// WithFilter overrides the invalid-character behavior for this device.
func WithFilter(f protocol.Filter) Option {
	return func(c *Config) { c.Filter = f }
}

// WithLogger attaches a logger to the device.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
