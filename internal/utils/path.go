package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the word list and config file for the wordhive binary.
// Paths given on the command line are tried as-is first, then relative to the
// working directory, then relative to the executable location. This keeps both
// `go run ./cmd/wordhive` during development and installed binaries working
// without extra flags.
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a resolver anchored at the running executable.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp"
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordhive")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordhive")
		}
		return filepath.Join(homeDir, ".config", "wordhive")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordhive")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordhive")
	default:
		return filepath.Join(homeDir, ".wordhive")
	}
}

// ResolveDataFile resolves the word list path, trying the given path as-is,
// then relative to the executable directory. Empty result means not found.
func (pr *PathResolver) ResolveDataFile(path string) (string, error) {
	if path == "" {
		return "", os.ErrNotExist
	}
	if FileExists(path) {
		return GetAbsolutePath(path), nil
	}
	candidate := filepath.Join(pr.executableDir, path)
	if FileExists(candidate) {
		return candidate, nil
	}
	log.Debugf("Word list not found at %q or %q", path, candidate)
	return "", os.ErrNotExist
}

// GetConfigPath returns the path for the named config file inside the
// platform config dir, creating the directory when needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if result := CheckDirStatus(pr.configDir); result.Writable {
		return filepath.Join(pr.configDir, filename), nil
	}
	// Fall back next to the executable when the config dir is unusable.
	return filepath.Join(pr.executableDir, filename), nil
}
