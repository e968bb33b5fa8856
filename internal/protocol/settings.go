package protocol

import "sync/atomic"

// Filter selects the invalid-character behavior for one parse call.
type Filter int

const (
	// FilterDefault defers to the process-wide setting.
	FilterDefault Filter = iota
	// FilterOn drops non-ASCII bytes and keeps reading.
	FilterOn
	// FilterOff fails the parse on the first non-ASCII byte.
	FilterOff
)

// Settings carries cross-call parser defaults. The zero value has the
// character filter disabled.
type Settings struct {
	filterInvalidChar atomic.Bool
}

func (s *Settings) EnableCharFilter()  { s.filterInvalidChar.Store(true) }
func (s *Settings) DisableCharFilter() { s.filterInvalidChar.Store(false) }

func (s *Settings) resolve(f Filter) bool {
	switch f {
	case FilterOn:
		return true
	case FilterOff:
		return false
	default:
		return s.filterInvalidChar.Load()
	}
}

// defaultSettings backs FilterDefault for callers that never inject their own
// Settings. Toggled by EnableCharFilter/DisableCharFilter.
var defaultSettings Settings

// EnableCharFilter turns on the process-wide invalid-character filter.
func EnableCharFilter() { defaultSettings.EnableCharFilter() }

// DisableCharFilter restores the default strict behavior.
func DisableCharFilter() { defaultSettings.DisableCharFilter() }
