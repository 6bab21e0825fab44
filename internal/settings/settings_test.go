package settings_test

import (
	"path/filepath"
	"testing"

	"aarogya/internal/settings"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Language != "en" || !s.Notifications || !s.EmailNotifications || s.DarkMode {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.OpenAIAPIKey != "" {
		t.Fatalf("expected empty API key by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aarogya", "settings.json")

	want := settings.Settings{
		OpenAIAPIKey:       "sk-test",
		Language:           "ta",
		Notifications:      false,
		EmailNotifications: true,
		DarkMode:           true,
	}
	if err := settings.Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}
