// Package config loads unifiedjson settings from defaults, an optional YAML
// file, UNIFIEDJSON_ environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "unifiedjson.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "unifiedjson.yml"

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "UNIFIEDJSON_"

// Default configuration values.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultAddr        = ":8080"
	DefaultDataDir     = "data"
	DefaultMaxUploadMB = 32
)

// ServerConfig holds settings of the HTTP server.
type ServerConfig struct {
	Addr        string `koanf:"addr"`
	DataDir     string `koanf:"data_dir"`
	MaxUploadMB int64  `koanf:"max_upload_mb"`
}

// Config holds all unifiedjson settings.
type Config struct {
	CodeValueKey string       `koanf:"code_value_key"`
	LogLevel     string       `koanf:"log_level"`
	LogFormat    string       `koanf:"log_format"`
	Compact      bool         `koanf:"compact"`
	Server       ServerConfig `koanf:"server"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// defaults returns the lowest-precedence values.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"code_value_key":       unifiedjson.DefaultCodeValueKeyField,
		"log_level":            DefaultLogLevel,
		"log_format":           DefaultLogFormat,
		"compact":              false,
		"server.addr":          DefaultAddr,
		"server.data_dir":      DefaultDataDir,
		"server.max_upload_mb": DefaultMaxUploadMB,
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > unifiedjson.yaml > unifiedjson.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey maps UNIFIEDJSON_SERVER__DATA_DIR to server.data_dir and
// UNIFIEDJSON_LOG_LEVEL to log_level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"addr":          "server.addr",
	"data-dir":      "server.data_dir",
	"max-upload-mb": "server.max_upload_mb",
}

// Load loads configuration with precedence flags > env vars > config file >
// defaults. Only flags that were explicitly set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if used != "" {
		if abs, err := filepath.Abs(used); err == nil {
			used = abs
		}
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (must be text or json)", c.LogFormat)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	if strings.TrimSpace(c.CodeValueKey) == "" {
		return fmt.Errorf("code_value_key must not be empty")
	}
	return nil
}

// ConvertOptions returns conversion options for this configuration.
func (c *Config) ConvertOptions() unifiedjson.Options {
	opts := unifiedjson.DefaultOptions()
	opts.CodeValueKeyField = c.CodeValueKey
	return opts
}
