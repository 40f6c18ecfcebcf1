package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultEnv = "dev"

// Settings are the runtime knobs of a session. Game rules are constants and
// deliberately not part of it.
type Settings struct {
	TickInterval   time.Duration
	RandomSeed     uint64 // 0 picks a seed from the clock
	Headless       bool
	HeadlessTicks  int // 0 runs until interrupted
	SnapshotEvery  int
	KeyRepeatDelay time.Duration // until the first auto-repeat of a key
	KeyRelease     time.Duration // between auto-repeats
}

var ErrInvalidSettings = errors.New("invalid settings")

// ReadProperties loads properties/<env>.properties relative to the working directory.
func ReadProperties(env string) (Settings, error) {
	if env == "" {
		env = DefaultEnv
	}
	return LoadSettings(filepath.Join("properties", env+".properties"))
}

func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")

	v.SetDefault("TICK_INTERVAL_MS", TickInterval.Milliseconds())
	v.SetDefault("RANDOM_SEED", 0)
	v.SetDefault("HEADLESS", false)
	v.SetDefault("HEADLESS_TICKS", 3000)
	v.SetDefault("SNAPSHOT_EVERY", 50)
	v.SetDefault("KEY_REPEAT_DELAY_MS", 600)
	v.SetDefault("KEY_RELEASE_MS", 150)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	settings := Settings{
		TickInterval:   time.Duration(cast.ToInt(v.Get("TICK_INTERVAL_MS"))) * time.Millisecond,
		RandomSeed:     cast.ToUint64(v.Get("RANDOM_SEED")),
		Headless:       cast.ToBool(v.Get("HEADLESS")),
		HeadlessTicks:  cast.ToInt(v.Get("HEADLESS_TICKS")),
		SnapshotEvery:  cast.ToInt(v.Get("SNAPSHOT_EVERY")),
		KeyRepeatDelay: time.Duration(cast.ToInt(v.Get("KEY_REPEAT_DELAY_MS"))) * time.Millisecond,
		KeyRelease:     time.Duration(cast.ToInt(v.Get("KEY_RELEASE_MS"))) * time.Millisecond,
	}
	if err := settings.validate(); err != nil {
		return Settings{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return settings, nil
}

func (s Settings) validate() error {
	switch {
	case s.TickInterval <= 0:
		return fmt.Errorf("%w: TICK_INTERVAL_MS must be positive", ErrInvalidSettings)
	case s.HeadlessTicks < 0:
		return fmt.Errorf("%w: HEADLESS_TICKS must not be negative", ErrInvalidSettings)
	case s.SnapshotEvery <= 0:
		return fmt.Errorf("%w: SNAPSHOT_EVERY must be positive", ErrInvalidSettings)
	case s.KeyRepeatDelay <= 0:
		return fmt.Errorf("%w: KEY_REPEAT_DELAY_MS must be positive", ErrInvalidSettings)
	case s.KeyRelease <= 0:
		return fmt.Errorf("%w: KEY_RELEASE_MS must be positive", ErrInvalidSettings)
	}
	return nil
}
