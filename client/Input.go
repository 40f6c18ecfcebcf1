package client

import (
	"CanvasPong/core"
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell"
)

// ErrQuit is returned by Input.Run when the player asked to leave.
var ErrQuit = errors.New("player quit")

// Input reads key events from the screen and forwards the resulting commands
// to the loop.
type Input struct {
	screen   tcell.Screen
	controls *Controls
	commands chan<- core.Command
	now      func() time.Time
}

func NewInput(screen tcell.Screen, controls *Controls, commands chan<- core.Command) *Input {
	return &Input{
		screen:   screen,
		controls: controls,
		commands: commands,
		now:      time.Now,
	}
}

// Run blocks until ctx is done, the quit key is pressed or the screen is
// finalized.
func (in *Input) Run(ctx context.Context) error {
	//建立一個goroutine去監聽鍵盤的事件
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	release := time.NewTicker(max(min(in.controls.repeatDelay, in.controls.release)/3, time.Millisecond))
	defer release.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := in.handle(ctx, ev); err != nil {
				return err
			}

		case <-release.C:
			if err := in.send(ctx, in.controls.Release(in.now())); err != nil {
				return err
			}
		}
	}
}

func (in *Input) handle(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		in.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ErrQuit
		case tcell.KeyRune:
			return in.send(ctx, in.controls.KeyDown(ev.Rune(), in.now()))
		}
	}
	return nil
}

func (in *Input) send(ctx context.Context, commands []core.Command) error {
	for _, cmd := range commands {
		select {
		case in.commands <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
