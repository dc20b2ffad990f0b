// Package ridelog provides the structured, leveled logging used by the demo
// command and config layer. The simulation core packages never import this
// package: logging is an outer-layer concern, kept out of the pure builder
// code the same way §5 keeps I/O out of it.
package ridelog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-formatted zerolog.Logger at the given level, timestamped
// and writing to stderr so stdout stays free for any piped track output.
func New(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// LogBuildSummary emits one structured line summarizing a completed builder
// call: sample count, final arc length, and final ride state.
func LogBuildSummary(logger zerolog.Logger, segment string, sampleCount int, finalHeartArc, finalVelocity, finalEnergy float32) {
	logger.Info().
		Str("segment", segment).
		Int("samples", sampleCount).
		Float32("heart_arc", finalHeartArc).
		Float32("velocity", finalVelocity).
		Float32("energy", finalEnergy).
		Msg("segment built")
}
