package client

import (
	"CanvasPong/core"
	"CanvasPong/logger"
	"fmt"
)

// LogRenderer is the renderer for runs without a terminal: every Nth snapshot
// is written to the log as a battle payload line.
type LogRenderer struct {
	every  int
	frames int
	last   core.Snapshot
	sink   func(string)
}

func NewLogRenderer(every int) *LogRenderer {
	if every <= 0 {
		every = 1
	}
	return &LogRenderer{every: every, sink: logger.Log.Info}
}

func (r *LogRenderer) Render(snapshot core.Snapshot, _ bool) error {
	r.last = snapshot
	if r.frames%r.every == 0 {
		r.sink(fmt.Sprintf(logger.SnapshotMsg, r.frames, core.GenerateBattlePayload(snapshot)))
	}
	r.frames++
	return nil
}

func (r *LogRenderer) Frames() int {
	return r.frames
}

// Last returns the most recent snapshot rendered.
func (r *LogRenderer) Last() core.Snapshot {
	return r.last
}
