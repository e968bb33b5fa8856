package config

import (
	"fmt"
	"os"
)

// Template returns the starter configuration text.
func Template() string {
	return busTemplate
}

// WriteTemplate writes the starter configuration to path.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(busTemplate), 0o600)
}

const busTemplate = `device = "/dev/ttyUSB0"
baud = 9600
read_timeout = "1s"
char_filter = "off"

[[pumps]]
name = "turbo-main"
addr = 1

[[gauges]]
name = "chamber-gauge"
addr = 2

[monitor]
addr = ":9090"
cors_origins = ["http://localhost:3000"]
poll_interval = "5s"
`
