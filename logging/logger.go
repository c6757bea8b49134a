package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the name of the environment variable to change the logging
// level.
const EnvLogLevel = "GLOG"

const defaultLevel = zerolog.Disabled

var (
	logout = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		// Format the component name
		FormatPrepare: func(e map[string]interface{}) error {
			e["component"] = fmt.Sprintf("[%s]", e["component"])
			return nil
		},
		// Change the order in which things appear
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
		// Prevent the component from being printed again
		FieldsExclude: []string{"component"},
	}
)

// Level returns the level selected through the GLOG environment variable.
// Logging is disabled unless the variable asks otherwise.
func Level() zerolog.Level {
	switch os.Getenv(EnvLogLevel) {
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "no":
		return zerolog.Disabled
	default:
		return defaultLevel
	}
}

// GetLogger returns a formatted logger tagged with the given component name
func GetLogger(component string) zerolog.Logger {
	return zerolog.New(logout).
		Level(Level()).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
