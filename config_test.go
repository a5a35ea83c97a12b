// FILE: lixenwraith/fixlog/config_test.go
package fixlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvTrace, "")
	t.Setenv(EnvDebug, "")
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "fixlog", cfg.Name)
	assert.Equal(t, "./logs", cfg.Directory)
	assert.Equal(t, "log", cfg.Extension)
	assert.False(t, cfg.EnableFile)
	assert.True(t, cfg.ThreadSafe)
	assert.True(t, cfg.EnableStdout)
	assert.Equal(t, "raw", cfg.Sanitization)
	assert.Equal(t, int64(500*1000), cfg.RollSizeKB)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigLevelFromEnv(t *testing.T) {
	t.Setenv(EnvTrace, "")
	t.Setenv(EnvDebug, "1")
	assert.Equal(t, "debug", DefaultConfig().Level)
	assert.Equal(t, LevelDebug, NewLogger().GetLevel())

	t.Setenv(EnvTrace, "1")
	assert.Equal(t, "trace", DefaultConfig().Level)
	assert.Equal(t, LevelTrace, NewLogger().GetLevel())
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Level = "debug"
	cfg1.Directory = "/custom/path"

	cfg2 := cfg1.Clone()

	assert.Equal(t, cfg1.Level, cfg2.Level)
	assert.Equal(t, cfg1.Directory, cfg2.Directory)

	cfg1.Level = "error"
	assert.Equal(t, "debug", cfg2.Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "warning alias",
			modify:    func(c *Config) { c.Level = "WARNING" },
			wantError: "",
		},
		{
			name:      "invalid level",
			modify:    func(c *Config) { c.Level = "loud" },
			wantError: "invalid level string",
		},
		{
			name:      "empty name",
			modify:    func(c *Config) { c.Name = " " },
			wantError: "log name cannot be empty",
		},
		{
			name:      "name with separator",
			modify:    func(c *Config) { c.Name = "a/b" },
			wantError: "path separators",
		},
		{
			name:      "extension with dot",
			modify:    func(c *Config) { c.Extension = ".log" },
			wantError: "extension should not start with dot",
		},
		{
			name: "empty directory with file output",
			modify: func(c *Config) {
				c.EnableFile = true
				c.Directory = ""
			},
			wantError: "directory cannot be empty",
		},
		{
			name:      "invalid stdout target",
			modify:    func(c *Config) { c.StdoutTarget = "invalid" },
			wantError: "invalid stdout_target",
		},
		{
			name:      "unknown sanitization",
			modify:    func(c *Config) { c.Sanitization = "html" },
			wantError: "html",
		},
		{
			name:      "zero roll size",
			modify:    func(c *Config) { c.RollSizeKB = 0 },
			wantError: "roll_size_kb must be positive",
		},
		{
			name:      "zero flush interval",
			modify:    func(c *Config) { c.FlushIntervalS = 0 },
			wantError: "flush_interval_s must be positive",
		},
		{
			name:      "zero check cadence",
			modify:    func(c *Config) { c.CheckEveryN = 0 },
			wantError: "check_every_n must be positive",
		},
		{
			name:      "negative file buffer",
			modify:    func(c *Config) { c.FileBufferKB = -1 },
			wantError: "file_buffer_kb cannot be negative",
		},
		{
			name: "background flush without lock",
			modify: func(c *Config) {
				c.BackgroundFlush = true
				c.ThreadSafe = false
			},
			wantError: "background_flush requires thread_safe",
		},
		{
			name:      "negative heartbeat",
			modify:    func(c *Config) { c.HeartbeatIntervalS = -1 },
			wantError: "heartbeat_interval_s cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fixlog.toml")
	content := `
[log]
level = "debug"
name = "service"
enable_file = true
roll_size_kb = 2048
check_every_n = 16
sanitization = "escape"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "service", cfg.Name)
	assert.True(t, cfg.EnableFile)
	assert.Equal(t, int64(2048), cfg.RollSizeKB)
	assert.Equal(t, int64(16), cfg.CheckEveryN)
	assert.Equal(t, "escape", cfg.Sanitization)
	// Untouched keys keep their defaults
	assert.Equal(t, "log", cfg.Extension)
	assert.True(t, cfg.ThreadSafe)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "fixlog", cfg.Name)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nroll_size_kb = -5\n"), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":            "error",
		"flush_interval_s": 5,
		"enable_stdout":    false,
	})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, int64(5), cfg.FlushIntervalS)
	assert.False(t, cfg.EnableStdout)

	_, err = NewConfigFromDefaults(map[string]any{"no_such_key": 1})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"enable_stdout": "yes"})
	assert.Error(t, err)
}

func TestLogFileConfigMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RollSizeKB = 3
	cfg.FlushIntervalS = 2
	cfg.FileBufferKB = 8

	lfc := cfg.logFileConfig(nil)
	assert.Equal(t, int64(3000), lfc.RollSize)
	assert.Equal(t, 2*time.Second, lfc.FlushInterval)
	assert.Equal(t, 8*1024, lfc.BufferSize)
	assert.Equal(t, int(cfg.CheckEveryN), lfc.CheckEveryN)
	assert.Nil(t, lfc.Clock)
}
