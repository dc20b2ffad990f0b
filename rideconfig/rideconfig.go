// Package rideconfig is the small struct-based configuration surface for
// the ridedemo command: track parameters for a demonstration run, populated
// from command-line flags via the standard library's flag package.
package rideconfig

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog"
)

// Config bundles the parameters a single ridedemo invocation runs with.
type Config struct {
	// ForceDurationSeconds is the length of the initial force-driven climb.
	ForceDurationSeconds float64
	// CurveRadiusMeters is the radius of the curved turn that follows it.
	CurveRadiusMeters float64
	// CurveArcDegrees is the arc extent of that turn.
	CurveArcDegrees float64
	// LogLevel selects the zerolog level ("debug", "info", "warn", "error").
	LogLevel string
}

// Default returns the baseline demo configuration.
func Default() Config {
	return Config{
		ForceDurationSeconds: 2.0,
		CurveRadiusMeters:    15.0,
		CurveArcDegrees:      90.0,
		LogLevel:             "info",
	}
}

// ParseFlags populates a Config from the standard flag package, starting
// from Default() and overriding whatever flags the caller passed.
func ParseFlags(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("ridedemo", flag.ContinueOnError)
	fs.Float64Var(&cfg.ForceDurationSeconds, "force-duration", cfg.ForceDurationSeconds, "seconds of force-driven climb")
	fs.Float64Var(&cfg.CurveRadiusMeters, "curve-radius", cfg.CurveRadiusMeters, "radius in meters of the curved turn")
	fs.Float64Var(&cfg.CurveArcDegrees, "curve-arc", cfg.CurveArcDegrees, "arc extent in degrees of the curved turn")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("rideconfig: parsing flags: %w", err)
	}
	return cfg, nil
}

// ParseLevel converts the config's LogLevel string into a zerolog.Level,
// defaulting to Info on an unrecognized value.
func (c Config) ParseLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
