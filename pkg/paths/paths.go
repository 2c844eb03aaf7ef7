package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// AppName is the program name, fixed at build time. It doubles as the
// directory name on platforms that key per-user locations by application.
const AppName = "pigment"

const (
	// EnvConfigDir overrides the resolved config directory.
	EnvConfigDir = "PIGMENT_CONFIG"
	// EnvDataDir overrides the resolved data directory.
	EnvDataDir = "PIGMENT_DATA"

	// Platform-specific location components for the
	// (qualifier, organization, application) triple.
	bundleID  = "cn.o0x0o.pigment"
	vendorDir = "o0x0o"
)

var (
	configDir = sync.OnceValue(func() string {
		return resolve(EnvConfigDir, osConfigDir, "./.config")
	})
	dataDir = sync.OnceValue(func() string {
		return resolve(EnvDataDir, osDataDir, "./.data")
	})
)

// ConfigDir returns the directory holding pigment's persisted state.
//
// Resolution order: $PIGMENT_CONFIG verbatim, the per-user local config
// directory, then ./.config. The result is computed once and cached for the
// lifetime of the process; the directory is never created.
func ConfigDir() string {
	return configDir()
}

// DataDir returns the directory holding pigment's data (themes, logs).
//
// Resolution order: $PIGMENT_DATA verbatim, the per-user local data
// directory, then ./.data. Cached like ConfigDir; never created.
func DataDir() string {
	return dataDir()
}

// ThemesDir returns the theme directory watched for theme files.
func ThemesDir() string {
	return filepath.Join(DataDir(), "themes")
}

func resolve(envVar string, osDir func() (string, error), fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	if dir, err := osDir(); err == nil {
		return dir
	}
	return fallback
}

func osConfigDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", bundleID), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", errors.New("LOCALAPPDATA not set")
		}
		return filepath.Join(local, vendorDir, AppName, "config"), nil
	default:
		if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
			return filepath.Join(base, AppName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
}

func osDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", bundleID), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", errors.New("LOCALAPPDATA not set")
		}
		return filepath.Join(local, vendorDir, AppName, "data"), nil
	default:
		if base := os.Getenv("XDG_DATA_HOME"); base != "" {
			return filepath.Join(base, AppName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", AppName), nil
	}
}
