package types

import "errors"

// Config holds the settings the haunt CLI reads from config.yaml.
type Config struct {
	LogLevel       string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	JSON           bool   `json:"json" yaml:"json" mapstructure:"json"`
	AutoloadSample bool   `json:"autoload_sample" yaml:"autoload_sample" mapstructure:"autoload_sample"`
}

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrLogLevelEmpty   = errors.New("log level must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the settings used when config.yaml is missing.
func DefaultConfig() Config {
	return Config{LogLevel: LogLevelInfo}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.LogLevel == "" {
		return ErrLogLevelEmpty
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
