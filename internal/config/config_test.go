package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", DefaultLogLevel, "")
	fs.String("code-value-key", unifiedjson.DefaultCodeValueKeyField, "")
	fs.String("addr", DefaultAddr, "")
	fs.String("data-dir", DefaultDataDir, "")
	fs.Int64("max-upload-mb", DefaultMaxUploadMB, "")
	fs.Bool("compact", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, unifiedjson.DefaultCodeValueKeyField, cfg.CodeValueKey)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.False(t, cfg.Compact)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultDataDir, cfg.Server.DataDir)
	assert.Equal(t, int64(DefaultMaxUploadMB), cfg.Server.MaxUploadMB)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
code_value_key: "Code Value*"
log_level: debug
compact: true
server:
  addr: ":9090"
  max_upload_mb: 8
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "Code Value*", cfg.CodeValueKey)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Compact)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, DefaultDataDir, cfg.Server.DataDir)
	assert.Equal(t, int64(8), cfg.Server.MaxUploadMB)
	assert.True(t, filepath.IsAbs(cfg.File))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nserver:\n  data_dir: from-file\n")
	t.Setenv("UNIFIEDJSON_LOG_LEVEL", "warn")
	t.Setenv("UNIFIEDJSON_SERVER__DATA_DIR", "from-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "from-env", cfg.Server.DataDir)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("UNIFIEDJSON_CODE_VALUE_KEY", "From Env")
	t.Setenv("UNIFIEDJSON_SERVER__ADDR", ":7000")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--code-value-key", "Code Value*", "--data-dir", "out", "--max-upload-mb", "4"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "Code Value*", cfg.CodeValueKey)
	assert.Equal(t, "out", cfg.Server.DataDir)
	assert.Equal(t, int64(4), cfg.Server.MaxUploadMB)
	// Unset flags leave lower-precedence values in place.
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log_level: loud\n"},
		{"bad log format", "log_format: xml\n"},
		{"zero upload limit", "server:\n  max_upload_mb: 0\n"},
		{"empty key field", "code_value_key: \"  \"\n"},
		{"malformed yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), nil)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestConvertOptions(t *testing.T) {
	cfg := &Config{CodeValueKey: "Code Value*"}
	opts := cfg.ConvertOptions()
	assert.Equal(t, "Code Value*", opts.CodeValueKeyField)
}
