package config

import (
	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/serialport"
)

// SerialConfig converts the bus section into a serial port configuration.
func (c BusConfig) SerialConfig() serialport.Config {
	return serialport.Config{
		Device:      c.Device,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout.Std(),
	}
}

// Filter converts the char_filter setting into a parser filter mode.
func (c BusConfig) Filter() protocol.Filter {
	if c.CharFilter == "on" {
		return protocol.FilterOn
	}
	return protocol.FilterOff
}
