package sys

import (
	"os"
	"path/filepath"
)

const appDirName = "moonui"

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	return os.UserHomeDir()
}

// ConfigDir returns the application's configuration directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// CacheDir returns the application's cache directory.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// DataDir returns the directory for durable application data, such as the
// local database. It falls back to the config directory on platforms
// without a separate data location.
func DataDir() (string, error) {
	return ConfigDir()
}
