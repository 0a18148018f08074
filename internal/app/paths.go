package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName    = "labelscan"
	prefsFileName = "prefs.json"
)

// DefaultPrefsPath is where the CLI looks for a user-preferences file
// when --prefs is not given.
func DefaultPrefsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, prefsFileName), nil
}
