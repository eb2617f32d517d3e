// ABOUTME: Centralized path resolution for the syscolor home directory
// ABOUTME: Respects the SYSCOLOR_HOME environment variable for isolation

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv names the variable that overrides the home directory
const HomeEnv = "SYSCOLOR_HOME"

// MustHome returns the syscolor home directory.
// Checks SYSCOLOR_HOME env var first, falls back to ~/.syscolor.
// Panics if SYSCOLOR_HOME is set but invalid (whitespace-only or relative path).
// Panics if home directory cannot be determined.
func MustHome() string {
	if home := os.Getenv(HomeEnv); home != "" {
		home = strings.TrimSpace(home)
		if home == "" {
			panic(HomeEnv + " is set but contains only whitespace")
		}
		if !filepath.IsAbs(home) {
			panic(HomeEnv + " must be an absolute path: " + home)
		}
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic("cannot determine home directory: " + err.Error())
	}
	return filepath.Join(homeDir, ".syscolor")
}

// ConfigPath returns the config file location inside home
func ConfigPath(home string) string {
	return filepath.Join(home, "config.json")
}
