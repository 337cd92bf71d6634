package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/haunt/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyLogLevel       = "log_level"
	cfgKeyJSON           = "json"
	cfgKeyAutoloadSample = "autoload_sample"

	envPrefix = "HAUNT"
)

// configHeader precedes the marshaled defaults in a new config.yaml.
const configHeader = `# haunt CLI configuration
# log_level: debug, info, warn, error (overridable by --log-level)
# json: print JSON instead of text (overridable by --json)
# autoload_sample: start the menu with the sample building loaded
`

// configError reports a config.yaml or flag value that fails validation.
type configError struct {
	err error
}

func (e *configError) Error() string { return "invalid config: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// loadConfig reads config.yaml from configDir using Viper, layering
// HAUNT_* environment variables and the changed flags in flags on top.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (types.Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyJSON, defaults.JSON)
	v.SetDefault(cfgKeyAutoloadSample, defaults.AutoloadSample)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlag(cfgKeyJSON, flags.Lookup("json")); err != nil {
			return types.Config{}, fmt.Errorf("bind json flag: %w", err)
		}
		if err := v.BindPFlag(cfgKeyLogLevel, flags.Lookup("log-level")); err != nil {
			return types.Config{}, fmt.Errorf("bind log-level flag: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, &configError{fmt.Errorf("decode config: %w", err)}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return types.Config{}, &configError{fmt.Errorf("%s %q: %w", cfgKeyLogLevel, cfg.LogLevel, err)}
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
