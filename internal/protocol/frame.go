package protocol

import (
	"fmt"
	"io"
)

const (
	MaxAddress   = 255
	MaxParameter = 999
	// MaxPayload is the largest DATA field the 2-digit length field can carry.
	MaxPayload = 99

	// maxResponseBytes caps the read loop; a conforming frame never exceeds it.
	maxResponseBytes = 64
	// minResponseLen is the shortest frame that still has every fixed field.
	minResponseLen = 14

	terminator = '\r'

	// Device-reported fault tokens carried in the DATA field.
	tokenNoDef = "NO_DEF"
	tokenRange = "_RANGE"
	tokenLogic = "_LOGIC"
)

// Response is one parsed instrument frame. RW is 0 for a read response and 1
// for a write acknowledgment.
type Response struct {
	Address int
	RW      int
	Param   int
	Data    string
}

// Checksum is the sum of the byte values of b modulo 256. On the wire it is
// formatted as a zero-padded 3-digit decimal covering everything before the
// checksum field itself.
func Checksum(b []byte) int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum % 256
}

func appendChecksum(frame []byte) []byte {
	return fmt.Appendf(frame, "%03d%c", Checksum(frame), terminator)
}

// BuildReadRequest produces the data-request frame for one parameter.
func BuildReadRequest(addr, param int) ([]byte, error) {
	if addr < 0 || addr > MaxAddress {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAddress, addr)
	}
	if param < 0 || param > MaxParameter {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParameter, param)
	}
	return appendChecksum(fmt.Appendf(nil, "%03d00%03d02=?", addr, param)), nil
}

// BuildWriteCommand produces the control-command frame carrying payload.
// The payload must already be the parameter's ASCII encoding.
func BuildWriteCommand(addr, param int, payload string) ([]byte, error) {
	if addr < 0 || addr > MaxAddress {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAddress, addr)
	}
	if param < 0 || param > MaxParameter {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParameter, param)
	}
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLong, len(payload))
	}
	return appendChecksum(fmt.Appendf(nil, "%03d10%03d%02d%s", addr, param, len(payload), payload)), nil
}

// ParseResponse reads one frame using the process-wide settings as the
// FilterDefault source.
func ParseResponse(r io.ByteReader, filter Filter) (Response, error) {
	return defaultSettings.ParseResponse(r, filter)
}

// ParseResponse reads at most 64 bytes from r, stopping at a carriage return
// or end-of-stream, then validates length, terminator and checksum. io.EOF
// from r marks end-of-stream (a transport read timeout); any other read error
// is surfaced as-is.
func (s *Settings) ParseResponse(r io.ByteReader, filter Filter) (Response, error) {
	filterInvalid := s.resolve(filter)

	buf := make([]byte, 0, maxResponseBytes)
	for i := 0; i < maxResponseBytes; i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Response{}, fmt.Errorf("protocol: transport read: %w", err)
		}
		if b > 0x7f {
			if filterInvalid {
				continue
			}
			return Response{}, fmt.Errorf("%w: 0x%02x", ErrInvalidCharacter, b)
		}
		buf = append(buf, b)
		if b == terminator {
			break
		}
	}

	if len(buf) < minResponseLen {
		return Response{}, fmt.Errorf("%w: %d bytes", ErrResponseTooShort, len(buf))
	}
	if buf[len(buf)-1] != terminator {
		return Response{}, ErrMissingTerminator
	}

	want, err := atoiField(buf[len(buf)-4 : len(buf)-1])
	if err != nil {
		return Response{}, fmt.Errorf("%w: checksum %q", ErrMalformedHeader, buf[len(buf)-4:len(buf)-1])
	}
	if got := Checksum(buf[:len(buf)-4]); got != want {
		return Response{}, fmt.Errorf("%w: frame carries %03d, computed %03d", ErrChecksumMismatch, want, got)
	}

	addr, err := atoiField(buf[0:3])
	if err != nil {
		return Response{}, fmt.Errorf("%w: address %q", ErrMalformedHeader, buf[0:3])
	}
	rw, err := atoiField(buf[3:4])
	if err != nil {
		return Response{}, fmt.Errorf("%w: rw flag %q", ErrMalformedHeader, buf[3:4])
	}
	param, err := atoiField(buf[5:8])
	if err != nil {
		return Response{}, fmt.Errorf("%w: parameter %q", ErrMalformedHeader, buf[5:8])
	}
	data := string(buf[10 : len(buf)-4])

	switch data {
	case tokenNoDef:
		return Response{}, ErrUndefinedParameter
	case tokenRange:
		return Response{}, ErrOutOfRange
	case tokenLogic:
		return Response{}, ErrLogicViolation
	}

	return Response{Address: addr, RW: rw, Param: param, Data: data}, nil
}

// atoiField parses a fixed-width decimal header field. Unlike strconv.Atoi it
// rejects signs and spaces, which are never legal in a frame header.
func atoiField(b []byte) (int, error) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit byte 0x%02x", c)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
