// Package params owns the per-parameter metadata for both instrument
// families and the type-safe encode/decode between instrument values and the
// ASCII DATA payload.
package params

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind is a parameter's payload encoding.
type Kind int

const (
	// KindBool encodes as "1"/"0" and decodes any non-zero integer as true.
	KindBool Kind = iota
	// KindUint encodes as zero-padded decimal of the descriptor's width.
	KindUint
	// KindReal encodes round(value*Scale) as zero-padded decimal and decodes
	// the integer payload divided by Scale.
	KindReal
	// KindString passes the fixed-width ASCII payload through verbatim.
	KindString
	// KindPressure decodes a 4-digit mantissa and 2-digit exponent as
	// mantissa*10^(exponent-23). Read-only; there is no inverse.
	KindPressure
)

// Access is a parameter's read/write legality.
type Access int

const (
	ReadOnly Access = iota
	WriteOnly
	ReadWrite
)

var (
	ErrUnknownParameter = errors.New("params: unknown parameter number")
	ErrNotReadable      = errors.New("params: parameter is not readable")
	ErrNotWritable      = errors.New("params: parameter is not writable")
	ErrKindMismatch     = errors.New("params: value kind does not match parameter")
	ErrBadPayload       = errors.New("params: payload does not decode")
)

// RangeError reports an encode-time domain violation.
type RangeError struct {
	Param int
	Name  string
	Value string
	Hint  string
}

func (e RangeError) Error() string {
	return fmt.Sprintf("params: %s (%d): value %s out of range (%s)", e.Name, e.Param, e.Value, e.Hint)
}

// Descriptor is the compile-time metadata for one parameter number.
type Descriptor struct {
	Num    int
	Name   string // vendor short name, e.g. "GasMode"
	Kind   Kind
	Access Access
	// Width is the minimum digit count for numeric encodings; shorter values
	// are zero-padded, larger values keep all their digits.
	Width int
	// Min/Max bound the instrument-domain value for writable parameters.
	// KindReal bounds are in real units, KindUint bounds in integer units.
	Min, Max float64
	// Scale divides the integer payload on decode (e.g. 10 for 0.1 °C steps).
	Scale float64
}

// Value is one decoded parameter value, tagged by kind.
type Value struct {
	Kind Kind
	Bool bool
	Int  int64
	Real float64
	Str  string
}

func BoolValue(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func IntValue(v int64) Value     { return Value{Kind: KindUint, Int: v} }
func RealValue(v float64) Value  { return Value{Kind: KindReal, Real: v} }
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// Registry maps parameter numbers to descriptors for one device family.
type Registry struct {
	name  string
	byNum map[int]Descriptor
}

func newRegistry(name string, descs []Descriptor) Registry {
	byNum := make(map[int]Descriptor, len(descs))
	for _, d := range descs {
		if _, dup := byNum[d.Num]; dup {
			panic(fmt.Sprintf("params: duplicate descriptor for %s parameter %d", name, d.Num))
		}
		byNum[d.Num] = d
	}
	return Registry{name: name, byNum: byNum}
}

func (r Registry) Name() string { return r.name }

// Lookup returns the descriptor for a parameter number.
func (r Registry) Lookup(num int) (Descriptor, error) {
	d, ok := r.byNum[num]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s %d", ErrUnknownParameter, r.name, num)
	}
	return d, nil
}

// LookupName returns the descriptor with the given vendor short name. The
// match ignores case.
func (r Registry) LookupName(name string) (Descriptor, error) {
	for _, d := range r.byNum {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s %q", ErrUnknownParameter, r.name, name)
}

// All returns every descriptor ordered by parameter number.
func (r Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.byNum))
	for _, d := range r.byNum {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out
}

// Encode serializes an instrument-domain value into the parameter's ASCII
// payload, enforcing the descriptor's domain.
func (r Registry) Encode(num int, v Value) (string, error) {
	d, err := r.Lookup(num)
	if err != nil {
		return "", err
	}
	if v.Kind != d.Kind {
		return "", fmt.Errorf("%w: %s wants %v, got %v", ErrKindMismatch, d.Name, d.Kind, v.Kind)
	}
	switch d.Kind {
	case KindBool:
		if v.Bool {
			return "1", nil
		}
		return "0", nil
	case KindUint:
		if float64(v.Int) < d.Min || float64(v.Int) > d.Max {
			return "", RangeError{
				Param: d.Num, Name: d.Name,
				Value: strconv.FormatInt(v.Int, 10),
				Hint:  fmt.Sprintf("%d to %d", int64(d.Min), int64(d.Max)),
			}
		}
		return fmt.Sprintf("%0*d", d.Width, v.Int), nil
	case KindReal:
		if v.Real < d.Min || v.Real > d.Max {
			return "", RangeError{
				Param: d.Num, Name: d.Name,
				Value: strconv.FormatFloat(v.Real, 'g', -1, 64),
				Hint:  fmt.Sprintf("%g to %g", d.Min, d.Max),
			}
		}
		return fmt.Sprintf("%0*d", d.Width, int64(math.Round(v.Real*d.Scale))), nil
	case KindString:
		return v.Str, nil
	default:
		return "", fmt.Errorf("%w: %s has no encoding", ErrNotWritable, d.Name)
	}
}

// Decode parses the ASCII payload of a response into a typed value.
func (r Registry) Decode(num int, data string) (Value, error) {
	d, err := r.Lookup(num)
	if err != nil {
		return Value{}, err
	}
	switch d.Kind {
	case KindBool:
		n, err := strconv.Atoi(data)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s %q", ErrBadPayload, d.Name, data)
		}
		return BoolValue(n != 0), nil
	case KindUint:
		n, err := strconv.ParseInt(data, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s %q", ErrBadPayload, d.Name, data)
		}
		return IntValue(n), nil
	case KindReal:
		n, err := strconv.ParseInt(data, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s %q", ErrBadPayload, d.Name, data)
		}
		return RealValue(float64(n) / d.Scale), nil
	case KindPressure:
		if len(data) != 6 {
			return Value{}, fmt.Errorf("%w: %s %q: want 6 chars", ErrBadPayload, d.Name, data)
		}
		mantissa, err := strconv.Atoi(data[:4])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s mantissa %q", ErrBadPayload, d.Name, data[:4])
		}
		exponent, err := strconv.Atoi(data[4:])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s exponent %q", ErrBadPayload, d.Name, data[4:])
		}
		return Value{Kind: KindPressure, Real: float64(mantissa) * math.Pow10(exponent-23)}, nil
	case KindString:
		return StringValue(data), nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrBadPayload, d.Name)
	}
}
