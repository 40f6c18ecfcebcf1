package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	path := writeProperties(t, "HEADLESS = true\n")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Settings{
		TickInterval:   TickInterval,
		Headless:       true,
		HeadlessTicks:  3000,
		SnapshotEvery:  50,
		KeyRepeatDelay: 600 * time.Millisecond,
		KeyRelease:     150 * time.Millisecond,
	}
	if settings != want {
		t.Fatalf("expected %+v, got %+v", want, settings)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := writeProperties(t, `TICK_INTERVAL_MS = 16
RANDOM_SEED = 42
HEADLESS_TICKS = 0
SNAPSHOT_EVERY = 5
KEY_REPEAT_DELAY_MS = 450
KEY_RELEASE_MS = 90
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.TickInterval != 16*time.Millisecond {
		t.Fatalf("expected 16ms interval, got %s", settings.TickInterval)
	}
	if settings.RandomSeed != 42 || settings.HeadlessTicks != 0 || settings.SnapshotEvery != 5 {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if settings.KeyRepeatDelay != 450*time.Millisecond {
		t.Fatalf("expected 450ms repeat delay, got %s", settings.KeyRepeatDelay)
	}
	if settings.KeyRelease != 90*time.Millisecond || settings.Headless {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero interval", content: "TICK_INTERVAL_MS = 0\n"},
		{name: "negative ticks", content: "HEADLESS_TICKS = -1\n"},
		{name: "zero snapshot period", content: "SNAPSHOT_EVERY = 0\n"},
		{name: "zero key repeat delay", content: "KEY_REPEAT_DELAY_MS = 0\n"},
		{name: "zero key release", content: "KEY_RELEASE_MS = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeProperties(t, tt.content))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.properties"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("missing file reported as invalid settings: %v", err)
	}
}
