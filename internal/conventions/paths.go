package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default checkmycrypto directory name (relative to home).
	DefaultDataDir = ".checkmycrypto"
	// ConfigFile is the demo configuration filename inside the data directory.
	ConfigFile = "config.yaml"
	// ConfigEnvVar is the environment variable that overrides the config path.
	ConfigEnvVar = "CHECKMYCRYPTO_CONFIG"
)

// ConfigPath returns the demo configuration path for a home directory.
func ConfigPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDataDir, ConfigFile)
}
