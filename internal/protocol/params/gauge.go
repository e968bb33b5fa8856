package params

// Gauge parameter numbers.
const (
	GaugeErrorCode  = 303
	GaugeFwVersion  = 312
	GaugeCtrType    = 349
	GaugePressure   = 740
	GaugePressureSP = 741
	GaugeCorrFactor = 742
)

// Gauge is the vacuum-gauge parameter catalogue. The correction factor's
// 0.2–8.0 domain is the code-enforced range from the field units; the vendor
// docstring claiming 0.2–0.8 is wrong.
var Gauge = newRegistry("gauge", []Descriptor{
	{Num: GaugeErrorCode, Name: "ErrorCode", Kind: KindString, Access: ReadOnly},
	{Num: GaugeFwVersion, Name: "FwVersion", Kind: KindString, Access: ReadOnly},
	{Num: GaugeCtrType, Name: "CtrType", Kind: KindString, Access: ReadOnly},
	{Num: GaugePressure, Name: "Pressure", Kind: KindPressure, Access: ReadOnly},
	{Num: GaugePressureSP, Name: "PressureSP", Kind: KindUint, Access: ReadWrite, Width: 3, Min: 0, Max: 999},
	{Num: GaugeCorrFactor, Name: "CorrFactor", Kind: KindReal, Access: ReadWrite, Width: 6, Min: 0.2, Max: 8.0, Scale: 100},
})

// gaugeTypes maps the CtrType payload to the transmitter model.
var gaugeTypes = map[string]string{
	"    A1": "CPT 200",
	"    A2": "RPT 200",
	"    A3": "PPT 200",
	"    A4": "HPT 200",
	"    A5": "MPT 200",
}

// GaugeTypeName resolves a CtrType payload. Unknown codes resolve to a
// placeholder rather than an error; new transmitter models show up in the
// field before they show up here.
func GaugeTypeName(code string) string {
	if name, ok := gaugeTypes[code]; ok {
		return name
	}
	return "unrecognized gauge type"
}
