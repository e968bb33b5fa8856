package params

import "strconv"

// Turbopump parameter numbers.
const (
	TurboHeating       = 1
	TurboStandby       = 2
	TurboRunUpTimeCtrl = 4
	TurboErrorAckn     = 9
	TurboPumpgStatn    = 10
	TurboEnableVent    = 12
	TurboCfgSpdSwPt    = 17
	TurboCfgDO2        = 19
	TurboMotorPump     = 23
	TurboCfgDO1        = 24
	TurboOpModeBKP     = 25
	TurboSpdSetMode    = 26
	TurboGasMode       = 27
	TurboCfgRemote     = 28
	TurboVentMode      = 30
	TurboCfgAccA1      = 35
	TurboCfgAccB1      = 36
	TurboCfgAccA2      = 37
	TurboCfgAccB2      = 38
	TurboPress1HVEn    = 41
	TurboSealingGas    = 50
	TurboCfgAO1        = 55
	TurboCfgAI1        = 57
	TurboCtrlViaInt    = 60
	TurboIntSelLckd    = 61
	TurboCfgDI1        = 62
	TurboCfgDI2        = 63
	TurboCfgDI3        = 64
	TurboRemotePri     = 300
	TurboSpdSwPtAtt    = 302
	TurboErrorCode     = 303
	TurboOvTempElec    = 304
	TurboOvTempPump    = 305
	TurboSetSpdAtt     = 306
	TurboPumpAccel     = 307
	TurboSetRotSpd     = 308
	TurboActualSpd     = 309
	TurboDrvCurrent    = 310
	TurboOpHrsPump     = 311
	TurboFwVersion     = 312
	TurboDrvVoltage    = 313
	TurboOpHrsElec     = 314
	TurboNominalSpd    = 315
	TurboDrvPower      = 316
	TurboPumpCycles    = 319
	TurboTempElec      = 326
	TurboTempPmpBot    = 330
	TurboAccelDecel    = 336
	TurboSealGasFlw    = 337
	TurboTempBearng    = 342
	TurboTempMotor     = 346
	TurboElecName      = 349
	TurboHwVersion     = 354
	TurboErrHist1      = 360
	TurboErrHist10     = 369
	TurboSetRotSpdRPM  = 397
	TurboActualSpdRPM  = 398
	TurboNominalSpdRPM = 399
	TurboRunUpTime     = 700
	TurboRotSpdSwPt1   = 701
	TurboPrsSn1Name    = 739
	TurboPrsSn2Name    = 749
)

// Turbopump is the electronic-drive-unit parameter catalogue.
var Turbopump = newRegistry("turbopump", turboDescriptors())

func turboDescriptors() []Descriptor {
	descs := []Descriptor{
		{Num: TurboHeating, Name: "Heating", Kind: KindBool, Access: ReadWrite},
		{Num: TurboStandby, Name: "Standby", Kind: KindBool, Access: ReadWrite},
		{Num: TurboRunUpTimeCtrl, Name: "RUTimeCtrl", Kind: KindBool, Access: ReadWrite},
		{Num: TurboErrorAckn, Name: "ErrorAckn", Kind: KindBool, Access: WriteOnly},
		{Num: TurboPumpgStatn, Name: "PumpgStatn", Kind: KindBool, Access: ReadWrite},
		{Num: TurboEnableVent, Name: "EnableVent", Kind: KindBool, Access: ReadWrite},
		{Num: TurboCfgSpdSwPt, Name: "CfgSpdSwPt", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 1},
		{Num: TurboCfgDO2, Name: "CfgDO2", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 22},
		{Num: TurboMotorPump, Name: "MotorPump", Kind: KindBool, Access: ReadWrite},
		{Num: TurboCfgDO1, Name: "CfgDO1", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 22},
		{Num: TurboOpModeBKP, Name: "OpModeBKP", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 3},
		{Num: TurboSpdSetMode, Name: "SpdSetMode", Kind: KindBool, Access: ReadWrite},
		{Num: TurboGasMode, Name: "GasMode", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 2},
		{Num: TurboCfgRemote, Name: "CfgRemote", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 4},
		{Num: TurboVentMode, Name: "VentMode", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 2},
		{Num: TurboCfgAccA1, Name: "CfgAccA1", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 14},
		{Num: TurboCfgAccB1, Name: "CfgAccB1", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 14},
		{Num: TurboCfgAccA2, Name: "CfgAccA2", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 3},
		{Num: TurboCfgAccB2, Name: "CfgAccB2", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 14},
		{Num: TurboPress1HVEn, Name: "Press1HVEn", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 3},
		{Num: TurboSealingGas, Name: "SealingGas", Kind: KindBool, Access: ReadWrite},
		{Num: TurboCfgAO1, Name: "CfgAO1", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 8},
		{Num: TurboCfgAI1, Name: "CfgAI1", Kind: KindBool, Access: ReadWrite},
		{Num: TurboCtrlViaInt, Name: "CtrlViaInt", Kind: KindUint, Access: ReadWrite, Width: 3, Min: 1, Max: 255},
		{Num: TurboIntSelLckd, Name: "IntSelLckd", Kind: KindBool, Access: ReadWrite},
		{Num: TurboCfgDI1, Name: "CfgDI1", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 7},
		{Num: TurboCfgDI2, Name: "CfgDI2", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 7},
		{Num: TurboCfgDI3, Name: "CfgDI3", Kind: KindUint, Access: ReadWrite, Width: 1, Min: 0, Max: 7},

		{Num: TurboRemotePri, Name: "RemotePri", Kind: KindBool, Access: ReadOnly},
		{Num: TurboSpdSwPtAtt, Name: "SpdSwPtAtt", Kind: KindBool, Access: ReadOnly},
		{Num: TurboErrorCode, Name: "ErrorCode", Kind: KindString, Access: ReadOnly},
		{Num: TurboOvTempElec, Name: "OvTempElec", Kind: KindBool, Access: ReadOnly},
		{Num: TurboOvTempPump, Name: "OvTempPump", Kind: KindBool, Access: ReadOnly},
		{Num: TurboSetSpdAtt, Name: "SetSpdAtt", Kind: KindBool, Access: ReadOnly},
		{Num: TurboPumpAccel, Name: "PumpAccel", Kind: KindBool, Access: ReadOnly},
		{Num: TurboSetRotSpd, Name: "SetRotSpd", Kind: KindUint, Access: ReadOnly},
		{Num: TurboActualSpd, Name: "ActualSpd", Kind: KindUint, Access: ReadOnly},
		{Num: TurboDrvCurrent, Name: "DrvCurrent", Kind: KindReal, Access: ReadOnly, Scale: 100},
		{Num: TurboOpHrsPump, Name: "OpHrsPump", Kind: KindUint, Access: ReadOnly},
		{Num: TurboFwVersion, Name: "FwVersion", Kind: KindString, Access: ReadOnly},
		{Num: TurboDrvVoltage, Name: "DrvVoltage", Kind: KindReal, Access: ReadOnly, Scale: 100},
		{Num: TurboOpHrsElec, Name: "OpHrsElec", Kind: KindUint, Access: ReadOnly},
		{Num: TurboNominalSpd, Name: "NominalSpd", Kind: KindUint, Access: ReadOnly},
		{Num: TurboDrvPower, Name: "DrvPower", Kind: KindReal, Access: ReadOnly, Scale: 100},
		{Num: TurboPumpCycles, Name: "PumpCycles", Kind: KindUint, Access: ReadOnly},
		{Num: TurboTempElec, Name: "TempElec", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboTempPmpBot, Name: "TempPmpBot", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboAccelDecel, Name: "AccelDecel", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboSealGasFlw, Name: "SealGasFlw", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboTempBearng, Name: "TempBearng", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboTempMotor, Name: "TempMotor", Kind: KindReal, Access: ReadOnly, Scale: 10},
		{Num: TurboElecName, Name: "ElecName", Kind: KindString, Access: ReadOnly},
		{Num: TurboHwVersion, Name: "HwVersion", Kind: KindString, Access: ReadOnly},
		{Num: TurboSetRotSpdRPM, Name: "SetRotSpdRPM", Kind: KindUint, Access: ReadOnly},
		{Num: TurboActualSpdRPM, Name: "ActualSpdRPM", Kind: KindUint, Access: ReadOnly},
		{Num: TurboNominalSpdRPM, Name: "NominalSpdRPM", Kind: KindUint, Access: ReadOnly},
		{Num: TurboPrsSn1Name, Name: "PrsSn1Name", Kind: KindString, Access: ReadOnly},
		{Num: TurboPrsSn2Name, Name: "PrsSn2Name", Kind: KindString, Access: ReadOnly},

		{Num: TurboRunUpTime, Name: "RUTimeSVal", Kind: KindUint, Access: ReadWrite, Width: 3, Min: 1, Max: 120},
		{Num: TurboRotSpdSwPt1, Name: "SpdSwPt1", Kind: KindUint, Access: ReadWrite, Width: 3, Min: 50, Max: 97},
	}
	// 10-slot error history, ErrHist1..ErrHist10.
	for i := 0; i < 10; i++ {
		descs = append(descs, Descriptor{
			Num:    TurboErrHist1 + i,
			Name:   "ErrHist" + strconv.Itoa(i+1),
			Kind:   KindUint,
			Access: ReadOnly,
		})
	}
	return descs
}
