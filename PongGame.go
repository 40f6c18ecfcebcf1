package main

import (
	"CanvasPong/client"
	"CanvasPong/core"
	"CanvasPong/logger"
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell"
)

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

// startGame plays a session in the terminal until a player quits or ctx ends.
func startGame(ctx context.Context, state *core.State, settings core.Settings) (uint64, error) {
	screen, err := initScreen()
	if err != nil {
		return 0, err
	}
	logger.Log.SetConsole(false)

	loop := core.NewLoop(state, settings.TickInterval, client.NewScreenRenderer(screen))
	controls := client.NewControls(client.DefaultBindings(), settings.KeyRepeatDelay, settings.KeyRelease)
	input := client.NewInput(screen, controls, loop.Commands())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputDone := make(chan error, 1)
	go func() {
		inputDone <- input.Run(ctx)
		cancel()
	}()

	loopErr := loop.Run(ctx)
	cancel()
	screen.Fini()
	inputErr := <-inputDone

	if err := sessionError(loopErr); err != nil {
		return loop.Ticks(), err
	}
	return loop.Ticks(), sessionError(inputErr)
}

// sessionError drops the errors that just mean the session ended normally.
func sessionError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, client.ErrQuit) {
		return nil
	}
	return err
}
