package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ch3rk4/kopilka-backend/internal/domain"
)

// LoadUserSettings reads the user settings file (tracked currencies and
// stocks). A missing file is not an error: the analyzer then simply skips
// the market snapshot.
func LoadUserSettings(path string) (domain.UserSettings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.UserSettings{}, nil
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("failed to read user settings: %w", err)
	}

	var settings domain.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.UserSettings{}, fmt.Errorf("failed to parse user settings %s: %w", path, err)
	}
	return settings, nil
}
