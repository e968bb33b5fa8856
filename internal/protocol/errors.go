package protocol

import "errors"

var (
	ErrInvalidAddress    = errors.New("protocol: address out of range")
	ErrInvalidParameter  = errors.New("protocol: parameter number out of range")
	ErrPayloadTooLong    = errors.New("protocol: payload too long")
	ErrInvalidCharacter  = errors.New("protocol: non-ASCII byte in response")
	ErrResponseTooShort  = errors.New("protocol: response too short")
	ErrMissingTerminator = errors.New("protocol: response missing CR terminator")
	ErrChecksumMismatch  = errors.New("protocol: checksum mismatch")
	ErrMalformedHeader   = errors.New("protocol: malformed header field")

	// Device-reported protocol faults, carried in the DATA field.
	ErrUndefinedParameter = errors.New("protocol: device reports undefined parameter")
	ErrOutOfRange         = errors.New("protocol: device reports data out of range")
	ErrLogicViolation     = errors.New("protocol: device reports logic access violation")
)
