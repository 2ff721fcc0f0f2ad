package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultConfigDir = ".devsweep"

// ResolveConfigDir returns the directory holding the config store and logs.
// Precedence: explicit flag, DEVSWEEP_CONFIG env, ~/.devsweep.
func ResolveConfigDir(flagDir string) (string, error) {
	if flagDir != "" {
		return normalize(flagDir)
	}

	envDir := os.Getenv("DEVSWEEP_CONFIG")
	if envDir != "" {
		return normalize(envDir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultConfigDir), nil
}

func normalize(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

// ExpandHome resolves a leading ~ or ~/ against the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}

	return path, nil
}
