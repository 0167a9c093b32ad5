// Package logging builds the hclog loggers used by the pakfb binaries.
//
// Environment:
//
//	PAKFB_LOG_LEVEL  trace, debug, info, warn (default) or error
//	PAKFB_JSON_LOG   "1" switches to JSON lines without the line prefix
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// linePrefix marks pakfb output when it is interleaved with other tools.
const linePrefix = "🕹  "

// NewLogger returns a logger named name at level writing to output (stderr
// when nil). Timestamps are UTC. Text output gets every line prefixed.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("PAKFB_JSON_LOG") == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel reads PAKFB_LOG_LEVEL, defaulting to "warn".
func GetLogLevel() string {
	if level := os.Getenv("PAKFB_LOG_LEVEL"); level != "" {
		return level
	}
	return "warn"
}

// ResolveLogLevel prefers an explicit --log-level / -loglevel value over
// PAKFB_LOG_LEVEL.
func ResolveLogLevel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetLogLevel()
}
