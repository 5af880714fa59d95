package config

// Config is the root configuration structure
type Config struct {
	Version int          `yaml:"version"`
	Log     LogConfig    `yaml:"log"`
	Loader  LoaderConfig `yaml:"loader"`
	Output  OutputConfig `yaml:"output"`
	Stats   StatsConfig  `yaml:"stats"`
}

// LogConfig controls operator-facing logging
type LogConfig struct {
	Level string      `yaml:"level"`          // debug, info, warn, error
	File  *FileConfig `yaml:"file,omitempty"` // nil = stderr only
}

// FileConfig describes a rotating log file written alongside stderr
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LoaderConfig holds input loading limits
type LoaderConfig struct {
	MaxLineBytes int `yaml:"max_line_bytes"` // longest accepted metadata line
}

// OutputConfig controls how the merged cluster list is written
type OutputConfig struct {
	Indent string `yaml:"indent"` // empty = compact JSON
}

// StatsConfig controls the confidence histogram report
type StatsConfig struct {
	Enabled bool `yaml:"enabled"`
	Base    int  `yaml:"base"`
	Steps   int  `yaml:"steps"`
}
