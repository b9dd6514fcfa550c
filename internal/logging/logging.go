// SPDX-License-Identifier: MIT

// Package logging builds the hclog loggers used by the CLI and the file layer.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when Options.Level is empty.
const DefaultLevel = "warn"

// Options configures New.
type Options struct {
	Name   string    // logger name, e.g. "sparsecalc"
	Level  string    // trace, debug, info, warn, error, off
	JSON   bool      // JSON lines instead of the human format
	Output io.Writer // required
}

// New returns a logger for opts. An unknown level is an error rather than a
// silent fallback, so a typo in --log-level is reported to the user.
func New(opts Options) (hclog.Logger, error) {
	name := strings.TrimSpace(opts.Level)
	if name == "" {
		name = DefaultLevel
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("logging: unknown level %q", opts.Level)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		Output:     opts.Output,
		JSONFormat: opts.JSON,
	}), nil
}
