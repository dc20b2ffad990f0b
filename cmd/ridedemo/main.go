// Command ridedemo builds a short multi-segment track from kexsim's
// builders and logs a summary of each segment. It exists to exercise the
// core end-to-end; the node-graph wiring that would normally chain segments
// together in a real editor is out of scope for this module (see
// spec.md §1) and is reproduced here only as a straight-line Go sequence.
package main

import (
	"fmt"
	"os"

	"github.com/kexedit/kexsim/builders"
	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/ridelog"
	"github.com/kexedit/kexsim/rideconfig"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := rideconfig.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := ridelog.New(cfg.ParseLevel())
	logger.Info().Msg("starting ridedemo run")

	anchor := point.Default

	climb := builders.BuildForce(anchor, builders.ForceConfig{
		Duration:     float32(cfg.ForceDurationSeconds),
		DurationType: nodeschema.DurationTime,
		Defaults:     builders.AnchorDefaults{Heart: anchor.HeartOffset},
	})
	logSegment(logger, "force-climb", climb)

	turn := builders.BuildCurved(lastOf(climb), builders.CurvedConfig{
		RadiusM:  float32(cfg.CurveRadiusMeters),
		ArcDeg:   float32(cfg.CurveArcDegrees),
		LeadIn:   10,
		LeadOut:  10,
		Defaults: builders.AnchorDefaults{Heart: anchor.HeartOffset},
	})
	logSegment(logger, "curved-turn", turn)

	bridgeTarget := lastOf(turn)
	bridgeTarget.SpinePosition.Y += 5
	bridge := builders.BuildBridge(lastOf(turn), bridgeTarget, builders.BridgeConfig{
		InWeight:  0.4,
		OutWeight: 0.4,
		Defaults:  builders.AnchorDefaults{Heart: anchor.HeartOffset},
	})
	logSegment(logger, "bridge", bridge)

	reversed := builders.ReversePath(bridge)
	logSegment(logger, "bridge-reversed", reversed)

	logger.Info().
		Int("total_samples", len(climb)+len(turn)+len(bridge)).
		Msg("ridedemo run complete")
}

func lastOf(path []point.Point) point.Point {
	return path[len(path)-1]
}

func logSegment(logger zerolog.Logger, name string, path []point.Point) {
	last := lastOf(path)
	ridelog.LogBuildSummary(logger, name, len(path), last.HeartArc, last.Velocity, last.Energy)
}
