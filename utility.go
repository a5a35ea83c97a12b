// FILE: lixenwraith/fixlog/utility.go
package fixlog

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

const errorPrefix = "fixlog: "

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, errorPrefix) {
		format = errorPrefix + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// levelFromEnv picks the initial threshold
func levelFromEnv() Severity {
	if os.Getenv(EnvTrace) != "" {
		return LevelTrace
	}
	if os.Getenv(EnvDebug) != "" {
		return LevelDebug
	}
	return LevelInfo
}

// basename strips directories from a source path without allocating
func basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// caller resolves the source location skip frames above its caller.
// With withFunc set it also returns the short function name.
func caller(skip int, withFunc bool) (file string, line int, fn string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0, ""
	}
	if withFunc {
		if f := runtime.FuncForPC(pc); f != nil {
			fn = shortFuncName(f.Name())
		}
	}
	return basename(file), line, fn
}

// shortFuncName strips the package path and name:
// "github.com/x/pkg.(*T).Method" becomes "(*T).Method"
func shortFuncName(full string) string {
	name := basename(full)
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		return name[dot+1:]
	}
	return name
}
