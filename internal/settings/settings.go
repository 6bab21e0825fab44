package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings is the single process-wide configuration blob. It is loaded once
// at startup and rewritten whole on every change.
type Settings struct {
	OpenAIAPIKey       string `json:"openAIApiKey"`
	Language           string `json:"language"`
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"emailNotifications"`
	DarkMode           bool   `json:"darkMode"`
}

func Default() Settings {
	return Settings{
		Language:           "en",
		Notifications:      true,
		EmailNotifications: true,
		DarkMode:           false,
	}
}

// DefaultPath returns the settings location under the OS config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "aarogya", "settings.json"), nil
}

// Load reads the settings blob. A missing file is not an error; it yields
// the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	return s, nil
}

func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
