package main

import (
	"CanvasPong/core"
	"CanvasPong/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

const loggerProperties = "logger.properties"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := core.ReadProperties(os.Getenv("PONG_ENV"))
	if err != nil {
		return err
	}
	if err := logger.Log.Init(loggerProperties); err != nil {
		return err
	}

	sessionId := uuid.New().String()
	logger.Log.SetSession(sessionId)
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, sessionId, settings.TickInterval, settings.Headless))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := core.NewState(newRandom(settings.RandomSeed))

	var ticks uint64
	if settings.Headless {
		ticks, err = startLocal(ctx, state, settings)
	} else {
		ticks, err = startGame(ctx, state, settings)
	}

	logger.Log.Info(fmt.Sprintf(logger.SessionEndMsg, ticks, state.Scores[core.Left], state.Scores[core.Right]))
	return err
}

func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
