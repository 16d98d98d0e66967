package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validLevels        = []string{"debug", "info", "warn", "error"}
	validFormats       = []string{"json", "text"}
	validOutputs       = []string{"stdout", "stderr"}
	validDispatchModes = []string{"sync", "async"}
)

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	var errs []string

	if !slices.Contains(validLevels, l.Level) {
		errs = append(errs, fmt.Sprintf("level must be one of: %s", strings.Join(validLevels, ", ")))
	}

	if !slices.Contains(validFormats, l.Format) {
		errs = append(errs, fmt.Sprintf("format must be one of: %s", strings.Join(validFormats, ", ")))
	}

	if !slices.Contains(validOutputs, l.Output) {
		errs = append(errs, fmt.Sprintf("output must be one of: %s", strings.Join(validOutputs, ", ")))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// Validate validates board configuration
func (b *BoardConfig) Validate() error {
	var errs []string

	if !slices.Contains(validDispatchModes, b.DispatchMode) {
		errs = append(errs, fmt.Sprintf("dispatch_mode must be one of: %s", strings.Join(validDispatchModes, ", ")))
	}

	if b.StandingsLimit < 0 {
		errs = append(errs, "standings_limit cannot be negative")
	}

	if b.SeedFile != "" && !strings.HasSuffix(strings.ToLower(b.SeedFile), ".json") {
		errs = append(errs, "seed_file must have .json extension")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
