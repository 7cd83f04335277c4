// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Standard output
// carries only the bytes written by the interpreted program and the error
// stream only the documented failure messages, so diagnostics are limited to
// the error level.
func CreateLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}
