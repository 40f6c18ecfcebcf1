package main

import (
	"CanvasPong/client"
	"CanvasPong/core"
	"context"
)

// startLocal runs the simulation without a terminal, logging snapshots. Nobody
// steers the paddles, so it is mostly useful for soak runs and log checks.
func startLocal(ctx context.Context, state *core.State, settings core.Settings) (uint64, error) {
	loop := core.NewLoop(state, settings.TickInterval, client.NewLogRenderer(settings.SnapshotEvery))
	err := loop.RunFor(ctx, settings.HeadlessTicks)
	return loop.Ticks(), sessionError(err)
}
