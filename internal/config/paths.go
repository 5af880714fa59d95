package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "METAMERGE_CONFIG"
	// ConfigFileName is the config file name looked up in the working directory
	ConfigFileName = "metamerge.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "metamerge"
	// EnvFileName is the dotenv file loaded before the config search
	EnvFileName = ".env"
)

// FindConfigPath searches for config file in priority order:
// 1. $METAMERGE_CONFIG (explicit path)
// 2. ./metamerge.yaml (working directory)
// 3. $XDG_CONFIG_HOME/metamerge/config.yaml
// 4. ~/.config/metamerge/config.yaml
// 5. /etc/metamerge/config.yaml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	for _, dir := range userConfigDirs() {
		if path := filepath.Join(dir, "config.yaml"); fileExists(path) {
			return path
		}
	}

	if path := filepath.Join("/etc", ConfigDirName, "config.yaml"); fileExists(path) {
		return path
	}
	return ""
}

// FindEnvFiles returns the dotenv files that exist, working directory first,
// then the user config directories. Earlier files take precedence since
// godotenv never overrides a variable that is already set.
func FindEnvFiles() []string {
	var files []string
	if fileExists(EnvFileName) {
		files = append(files, EnvFileName)
	}
	for _, dir := range userConfigDirs() {
		if path := filepath.Join(dir, EnvFileName); fileExists(path) {
			files = append(files, path)
		}
	}
	return files
}

// userConfigDirs lists $XDG_CONFIG_HOME/metamerge and ~/.config/metamerge,
// skipping unset variables and duplicates
func userConfigDirs() []string {
	var dirs []string
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, filepath.Join(xdgHome, ConfigDirName))
	}
	if home := os.Getenv("HOME"); home != "" {
		dir := filepath.Join(home, ".config", ConfigDirName)
		if len(dirs) == 0 || dirs[0] != dir {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
