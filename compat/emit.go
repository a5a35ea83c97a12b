// FILE: lixenwraith/fixlog/compat/emit.go
package compat

import (
	"runtime"

	"github.com/lixenwraith/fixlog"
)

// field is one extracted key=value pair
type field struct {
	key   string
	value any
}

// emit writes "<msg>[ key=value...] source=<source>" at sev, located skip
// frames above its caller
func emit(logger *fixlog.Logger, skip int, sev fixlog.Severity, source, msg string, fields ...field) {
	if !logger.Enabled(sev) {
		return
	}
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "???", 0
	}
	r := logger.At(sev, file, line).Str(msg)
	for _, f := range fields {
		r.Byte(' ').Str(f.key).Byte('=').Any(f.value)
	}
	r.Str(" source=").Str(source).Send()
}
