// FILE: lixenwraith/fixlog/config.go
package fixlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
	"github.com/lixenwraith/fixlog/sanitizer"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level     string `toml:"level"` // trace, debug, info, warn, error, fatal
	Name      string `toml:"name"`  // Base name for log files
	Directory string `toml:"directory"`
	Extension string `toml:"extension"`

	// File sink
	EnableFile     bool  `toml:"enable_file"`
	RollSizeKB     int64 `toml:"roll_size_kb"`     // Roll when the next write would exceed this size
	ThreadSafe     bool  `toml:"thread_safe"`      // Serialize appends with a lock
	FlushIntervalS int64 `toml:"flush_interval_s"` // Flush cadence, checked every check_every_n appends
	CheckEveryN    int64 `toml:"check_every_n"`    // Appends between day-boundary and flush checks
	FileBufferKB   int64 `toml:"file_buffer_kb"`   // Write buffer in front of the file

	// Stdout/console output settings
	EnableStdout bool   `toml:"enable_stdout"` // Mirror records to stdout/stderr
	StdoutTarget string `toml:"stdout_target"` // "stdout" or "stderr"

	// Field sanitization policy: raw, txt, escape, shell
	Sanitization string `toml:"sanitization"`

	// Background work
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 disables heartbeat records
	BackgroundFlush    bool  `toml:"background_flush"`     // Flush on a timer in addition to the append cadence

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write sink errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Basic settings
	Level:     "info",
	Name:      "fixlog",
	Directory: "./logs",
	Extension: "log",

	// File sink
	EnableFile:     false,
	RollSizeKB:     500 * 1000,
	ThreadSafe:     true,
	FlushIntervalS: int64(defaultFlushInterval / time.Second),
	CheckEveryN:    defaultCheckEveryN,
	FileBufferKB:   defaultFileBuffer / 1024,

	// Stdout settings
	EnableStdout: true,
	StdoutTarget: "stdout",

	Sanitization: string(sanitizer.PolicyRaw),

	// Background work
	HeartbeatIntervalS: 0,
	BackgroundFlush:    false,

	// Internal error handling
	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration.
// The level follows FIXLOG_TRACE / FIXLOG_DEBUG when set.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	copiedConfig.Level = strings.ToLower(levelFromEnv().String())
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config.
// Keys live under the [log] table. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies loaded values into cfg by toml tag
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides keyed by toml tag
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if strings.ContainsAny(c.Name, `/\`) {
		return fmtErrorf("log name must not contain path separators: %s", c.Name)
	}

	if strings.HasPrefix(c.Extension, ".") {
		return fmtErrorf("extension should not start with dot: %s", c.Extension)
	}

	if c.EnableFile && strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty when file output is enabled")
	}

	if c.StdoutTarget != "stdout" && c.StdoutTarget != "stderr" {
		return fmtErrorf("invalid stdout_target: '%s' (use stdout or stderr)", c.StdoutTarget)
	}

	if _, err := sanitizer.ParsePolicy(c.Sanitization); err != nil {
		return fmtErrorf("%w", err)
	}

	if c.RollSizeKB <= 0 {
		return fmtErrorf("roll_size_kb must be positive: %d", c.RollSizeKB)
	}

	if c.FlushIntervalS <= 0 {
		return fmtErrorf("flush_interval_s must be positive: %d", c.FlushIntervalS)
	}

	if c.CheckEveryN <= 0 {
		return fmtErrorf("check_every_n must be positive: %d", c.CheckEveryN)
	}

	if c.FileBufferKB < 0 {
		return fmtErrorf("file_buffer_kb cannot be negative: %d", c.FileBufferKB)
	}

	if c.BackgroundFlush && !c.ThreadSafe {
		return fmtErrorf("background_flush requires thread_safe")
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// logFileConfig maps the file sink settings
func (c *Config) logFileConfig(onError func(error)) LogFileConfig {
	return LogFileConfig{
		Directory:     c.Directory,
		Name:          c.Name,
		Extension:     c.Extension,
		RollSize:      c.RollSizeKB * sizeMultiplier,
		ThreadSafe:    c.ThreadSafe,
		FlushInterval: time.Duration(c.FlushIntervalS) * time.Second,
		CheckEveryN:   int(c.CheckEveryN),
		BufferSize:    int(c.FileBufferKB * 1024),
		OnError:       onError,
	}
}
