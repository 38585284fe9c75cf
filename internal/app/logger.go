package app

import (
	"strings"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
)

// ConfigureLogging initialises the global logger with the provided level,
// defaulting to info. Setting disabled drops all output.
func ConfigureLogging(level string, disabled bool) error {
	level = strings.TrimSpace(level)
	if level == "" {
		level = "info"
	}
	return logger.Init(level, disabled)
}
