// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateRuntime creates runtime options for the virtual machine core
// based on the program options.
func CreateRuntime(opts options.Program) (options.Runtime, error) {
	runtime := options.NewRuntime()

	if opts.TickRate < 0 {
		return runtime, fmt.Errorf("invalid tick rate %d", opts.TickRate)
	}
	if opts.TickRate > 0 {
		runtime.TickRate = opts.TickRate
	}
	return runtime, nil
}
