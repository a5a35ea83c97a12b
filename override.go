// FILE: lixenwraith/fixlog/override.go
package fixlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies "key=value" overrides to a copy of the current
// configuration and applies the result. All malformed overrides are reported.
//
// Example:
//
//	logger := fixlog.NewLogger()
//	err := logger.ApplyOverride(
//	    "enable_file=true",
//	    "directory=/var/log/app",
//	    "level=debug",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString(errorPrefix + "multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), errorPrefix)
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Basic settings
	case "level":
		if _, err := ParseLevel(value); err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = strings.ToLower(value)
	case "name":
		cfg.Name = value
	case "directory":
		cfg.Directory = value
	case "extension":
		cfg.Extension = value

	// File sink
	case "enable_file":
		return parseBoolField(key, value, &cfg.EnableFile)
	case "roll_size_kb":
		return parseIntField(key, value, &cfg.RollSizeKB)
	case "thread_safe":
		return parseBoolField(key, value, &cfg.ThreadSafe)
	case "flush_interval_s":
		return parseIntField(key, value, &cfg.FlushIntervalS)
	case "check_every_n":
		return parseIntField(key, value, &cfg.CheckEveryN)
	case "file_buffer_kb":
		return parseIntField(key, value, &cfg.FileBufferKB)

	// Stdout/console output settings
	case "enable_stdout":
		return parseBoolField(key, value, &cfg.EnableStdout)
	case "stdout_target":
		cfg.StdoutTarget = value

	case "sanitization":
		cfg.Sanitization = value

	// Background work
	case "heartbeat_interval_s":
		return parseIntField(key, value, &cfg.HeartbeatIntervalS)
	case "background_flush":
		return parseBoolField(key, value, &cfg.BackgroundFlush)

	// Internal error handling
	case "internal_errors_to_stderr":
		return parseBoolField(key, value, &cfg.InternalErrorsToStderr)

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

func parseBoolField(key, value string, dst *bool) error {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
	}
	*dst = boolVal
	return nil
}

func parseIntField(key, value string, dst *int64) error {
	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmtErrorf("invalid integer value for %s '%s': %w", key, value, err)
	}
	*dst = intVal
	return nil
}
