package core

import (
	"CanvasPong/logger"
	"context"
	"fmt"
	"time"
)

// Renderer receives a snapshot after every tick together with the pause flag.
// It is called on the loop goroutine, never while a tick is in progress.
type Renderer interface {
	Render(snapshot Snapshot, paused bool) error
}

type CommandKind int

const (
	CommandIntent CommandKind = iota
	CommandPause
)

// Command is an input event for the loop. Side and Intent are only read for
// CommandIntent.
type Command struct {
	Kind   CommandKind
	Side   Side
	Intent Intent
}

func IntentCommand(side Side, intent Intent) Command {
	return Command{Kind: CommandIntent, Side: side, Intent: intent}
}

func PauseCommand() Command {
	return Command{Kind: CommandPause}
}

const commandBuffer = 32

// Loop owns a State and drives it at a fixed cadence. Input reaches the state
// only through Commands, so every mutation happens on the goroutine running Run.
type Loop struct {
	state    *State
	interval time.Duration
	renderer Renderer
	commands chan Command
	ticks    uint64
}

func NewLoop(state *State, interval time.Duration, renderer Renderer) *Loop {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Loop{
		state:    state,
		interval: interval,
		renderer: renderer,
		commands: make(chan Command, commandBuffer),
	}
}

func (l *Loop) Commands() chan<- Command {
	return l.commands
}

// Ticks returns how many ticks actually advanced the simulation.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run renders the initial state and then ticks until ctx is done or the
// renderer fails.
func (l *Loop) Run(ctx context.Context) error {
	return l.RunFor(ctx, 0)
}

// RunFor is Run with a budget of ticks; it returns nil once limit ticks have
// advanced the simulation. Paused steps do not count. A limit of 0 means no
// budget.
func (l *Loop) RunFor(ctx context.Context, limit int) error {
	if err := l.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	budget := l.ticks + uint64(limit)
	for limit == 0 || l.ticks < budget {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.commands:
			l.apply(cmd)
		case <-ticker.C:
			if err := l.Step(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step applies every queued command, runs one tick and renders the result.
func (l *Loop) Step() error {
	l.drain()

	result := Tick(l.state)
	if !result.Skipped {
		l.ticks++
	}
	l.report(result)

	return l.render()
}

func (l *Loop) drain() {
	for {
		select {
		case cmd := <-l.commands:
			l.apply(cmd)
		default:
			return
		}
	}
}

func (l *Loop) apply(cmd Command) {
	switch cmd.Kind {
	case CommandIntent:
		l.state.ApplyIntent(cmd.Side, cmd.Intent)
	case CommandPause:
		l.state.TogglePause()
		logger.Log.Info(fmt.Sprintf(logger.PauseToggledMsg, l.state.Paused(), l.ticks))
	}
}

func (l *Loop) report(result TickResult) {
	if result.WallBounce {
		logger.Log.Trace(fmt.Sprintf(logger.WallBounceMsg, l.ticks))
	}
	if result.PaddleBounce {
		logger.Log.Trace(fmt.Sprintf(logger.PaddleBounceMsg, l.ticks))
	}
	if result.Scored {
		logger.Log.Info(fmt.Sprintf(logger.PlayerScoredMsg, result.Scorer,
			l.state.Scores[Left], l.state.Scores[Right]))
	}
}

func (l *Loop) render() error {
	if l.renderer == nil {
		return nil
	}
	if err := l.renderer.Render(l.state.Snapshot(), l.state.Paused()); err != nil {
		return fmt.Errorf("render tick %d: %w", l.ticks, err)
	}
	return nil
}
