// FILE: lixenwraith/fixlog/compat/structured_gnet.go
package compat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/fixlog"
)

// Pattern to detect common structured patterns like "key=%v" or "key: %v"
var keyValuePattern = regexp.MustCompile(`(\w+)\s*[:=]\s*%[vsdqxXeEfFgGpbcU]`)

// parseFormat extracts key=value fields from a printf-style format string.
// Text between fields is formatted with the arguments its own verbs consume
// and joined into the message.
func parseFormat(format string, args []any) (string, []field) {
	matches := keyValuePattern.FindAllStringSubmatchIndex(format, -1)
	if len(matches) == 0 {
		return fmt.Sprintf(format, args...), nil
	}

	fields := make([]field, 0, len(matches))
	var parts []string
	lastEnd := 0
	argIndex := 0

	for _, match := range matches {
		segment := format[lastEnd:match[0]]
		n := countVerbs(segment)
		if argIndex+n >= len(args) {
			return fmt.Sprintf(format, args...), nil
		}
		if text := strings.TrimSpace(fmt.Sprintf(segment, args[argIndex:argIndex+n]...)); text != "" {
			parts = append(parts, text)
		}
		argIndex += n

		key := format[match[2]:match[3]]
		fields = append(fields, field{key: key, value: args[argIndex]})
		argIndex++
		lastEnd = match[1]
	}

	if lastEnd < len(format) {
		if text := strings.TrimSpace(fmt.Sprintf(format[lastEnd:], args[argIndex:]...)); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), fields
}

// countVerbs returns the number of arguments the verbs in s consume.
// "%%" consumes none, a '*' width or precision consumes one more.
func countVerbs(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		i++
		if i < len(s) && s[i] == '%' {
			continue
		}
		for ; i < len(s) && strings.IndexByte("+-# 0123456789.[]*", s[i]) >= 0; i++ {
			if s[i] == '*' {
				n++
			}
		}
		if i < len(s) {
			n++
		}
	}
	return n
}

// StructuredGnetAdapter provides enhanced structured logging for gnet
type StructuredGnetAdapter struct {
	*GnetAdapter
}

// NewStructuredGnetAdapter creates a gnet adapter with structured field extraction
func NewStructuredGnetAdapter(logger *fixlog.Logger, opts ...GnetOption) *StructuredGnetAdapter {
	return &StructuredGnetAdapter{
		GnetAdapter: NewGnetAdapter(logger, opts...),
	}
}

// log is called directly by the level methods, the record points two frames up
func (a *StructuredGnetAdapter) log(sev fixlog.Severity, format string, args []any) {
	msg, fields := parseFormat(format, args)
	emit(a.logger, 2, sev, "gnet", msg, fields...)
}

// Debugf logs with structured field extraction
func (a *StructuredGnetAdapter) Debugf(format string, args ...any) {
	a.log(fixlog.LevelDebug, format, args)
}

// Infof logs with structured field extraction
func (a *StructuredGnetAdapter) Infof(format string, args ...any) {
	a.log(fixlog.LevelInfo, format, args)
}

// Warnf logs with structured field extraction
func (a *StructuredGnetAdapter) Warnf(format string, args ...any) {
	a.log(fixlog.LevelWarn, format, args)
}

// Errorf logs with structured field extraction
func (a *StructuredGnetAdapter) Errorf(format string, args ...any) {
	a.log(fixlog.LevelError, format, args)
}
