// FILE: lixenwraith/fixlog/compat/compat_test.go
package compat

import (
	"sync"
	"testing"

	"github.com/lixenwraith/fixlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineRecorder collects records from the output hook
type lineRecorder struct {
	mu    sync.Mutex
	lines []string
	exits []int
}

func (r *lineRecorder) output(msg []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, string(msg))
}

func (r *lineRecorder) exit(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exits = append(r.exits, code)
}

func (r *lineRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// createTestCompatBuilder creates a standard setup for compatibility adapter tests
func createTestCompatBuilder(t *testing.T) (*Builder, *fixlog.Logger, *lineRecorder) {
	t.Helper()
	rec := &lineRecorder{}
	appLogger, err := fixlog.NewBuilder().
		Directory(t.TempDir()).
		LevelString("debug").
		EnableStdout(false).
		Output(rec.output).
		Flush(func() {}).
		Exit(rec.exit).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = appLogger.Shutdown() })

	builder := NewBuilder().WithLogger(appLogger)
	return builder, appLogger, rec
}

// TestCompatBuilder verifies the compatibility builder can be initialized correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		builder, logger, _ := createTestCompatBuilder(t)

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.NotNil(t, gnetAdapter)
		assert.Equal(t, logger, gnetAdapter.logger)
	})

	t.Run("with config", func(t *testing.T) {
		logCfg := fixlog.DefaultConfig()
		logCfg.Directory = t.TempDir()
		logCfg.EnableStdout = false

		builder := NewBuilder().WithConfig(logCfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.NotNil(t, fasthttpAdapter)

		logger1, _ := builder.GetLogger()
		defer logger1.Shutdown()
		logger2, _ := builder.GetLogger()
		assert.Same(t, logger1, logger2)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewBuilder().WithLogger(nil).BuildGnet()
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		logCfg := fixlog.DefaultConfig()
		logCfg.Level = "loud"
		_, err := NewBuilder().WithConfig(logCfg).BuildStructuredGnet()
		assert.Error(t, err)
	})
}

// TestGnetAdapter tests the gnet adapter's logging output and format
func TestGnetAdapter(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)

	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	lines := rec.Lines()
	require.Len(t, lines, 5)

	expected := []string{
		"DEBUG gnet debug id=1 source=gnet - compat_test.go:",
		"INFO  gnet info id=2 source=gnet - compat_test.go:",
		"WARN  gnet warn id=3 source=gnet - compat_test.go:",
		"ERROR gnet error id=4 source=gnet - compat_test.go:",
		"ERROR gnet fatal id=5 fatal=1 source=gnet - compat_test.go:",
	}
	for i, line := range lines {
		assert.Contains(t, line, expected[i])
	}
	assert.Equal(t, "gnet fatal id=5", fatalMsg)
	assert.Empty(t, rec.exits)
}

// TestGnetAdapterFatalRecord checks the default fatal path goes through the logger
func TestGnetAdapterFatalRecord(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)
	adapter, err := builder.BuildGnet()
	require.NoError(t, err)

	adapter.Fatalf("engine stopped: %s", "boom")

	require.Len(t, rec.Lines(), 1)
	assert.Contains(t, rec.Lines()[0], "FATAL engine stopped: boom source=gnet - compat_test.go:")
	assert.Equal(t, []int{2}, rec.exits)
}

// TestStructuredGnetAdapter tests the gnet adapter with structured field extraction
func TestStructuredGnetAdapter(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)

	adapter, err := builder.BuildStructuredGnet()
	require.NoError(t, err)

	adapter.Infof("request served status=%d client_ip=%s", 200, "127.0.0.1")
	adapter.Warnf("plain message %d", 7)
	adapter.Errorf("conn closed fd: %d after %s", 12, "timeout")

	lines := rec.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INFO  request served status=200 client_ip=127.0.0.1 source=gnet - compat_test.go:")
	assert.Contains(t, lines[1], "WARN  plain message 7 source=gnet - compat_test.go:")
	assert.Contains(t, lines[2], "ERROR conn closed after timeout fd=12 source=gnet - compat_test.go:")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		args       []any
		wantMsg    string
		wantFields []field
	}{
		{name: "no fields", format: "no fields %d", args: []any{1}, wantMsg: "no fields 1"},
		{name: "missing argument", format: "a=%d b=%s", args: []any{1}, wantMsg: "a=1 b=%!s(MISSING)"},
		{name: "field only", format: "user=%s", args: []any{"bob"}, wantFields: []field{{"user", "bob"}}},
		{
			name: "leading plain verb", format: "got %d items, id=%v", args: []any{3, "abc"},
			wantMsg: "got 3 items,", wantFields: []field{{"id", "abc"}},
		},
		{
			name: "verbs between fields", format: "a=%d then %s and %q b=%v", args: []any{1, "x", "y", 2},
			wantMsg: `then x and "y"`, wantFields: []field{{"a", 1}, {"b", 2}},
		},
		{
			name: "escaped percent", format: "load 100%% cpu=%d", args: []any{7},
			wantMsg: "load 100%", wantFields: []field{{"cpu", 7}},
		},
		{
			name: "star width", format: "pad [%*d] fd=%d", args: []any{4, 9, 12},
			wantMsg: "pad [   9]", wantFields: []field{{"fd", 12}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, fields := parseFormat(tt.format, tt.args)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestCountVerbs(t *testing.T) {
	assert.Equal(t, 0, countVerbs("plain"))
	assert.Equal(t, 0, countVerbs("100%%"))
	assert.Equal(t, 2, countVerbs("%d and %-8.3f"))
	assert.Equal(t, 3, countVerbs("%*.*f"))
	assert.Equal(t, 0, countVerbs("dangling %"))
}

// TestFastHTTPAdapter tests the fasthttp adapter's logging output and level detection
func TestFastHTTPAdapter(t *testing.T) {
	builder, logger, rec := createTestCompatBuilder(t)
	logger.SetLevel(fixlog.LevelTrace)

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
		"trace of request",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s\n", msg)
	}

	lines := rec.Lines()
	require.Len(t, lines, 5)
	expectedLevels := []string{"INFO  ", "DEBUG ", "WARN  ", "ERROR ", "TRACE "}
	for i, line := range lines {
		assert.Contains(t, line, expectedLevels[i]+testMessages[i]+" source=fasthttp - compat_test.go:")
	}
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP(
		WithDefaultLevel(fixlog.LevelWarn),
		WithLevelDetector(func(msg string) fixlog.Severity {
			if msg == "die" {
				return fixlog.LevelFatal
			}
			return -1
		}),
	)
	require.NoError(t, err)

	adapter.Printf("ordinary")
	adapter.Printf("die")

	lines := rec.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN  ordinary")
	// fasthttp messages never terminate the process
	assert.Contains(t, lines[1], "ERROR die")
	assert.Empty(t, rec.exits)
}

func TestDetectLogLevel(t *testing.T) {
	assert.Equal(t, fixlog.LevelError, DetectLogLevel("request FAILED"))
	assert.Equal(t, fixlog.LevelWarn, DetectLogLevel("deprecated header"))
	assert.Equal(t, fixlog.LevelDebug, DetectLogLevel("debug: x"))
	assert.Equal(t, fixlog.Severity(-1), DetectLogLevel("hello"))
}

// TestFiberAdapter covers the plain and formatted method sets with custom handlers
func TestFiberAdapter(t *testing.T) {
	builder, logger, rec := createTestCompatBuilder(t)
	logger.SetLevel(fixlog.LevelTrace)

	var fatalMsg, panicMsg string
	adapter, err := builder.BuildFiber(
		WithFiberFatalHandler(func(msg string) { fatalMsg = msg }),
		WithFiberPanicHandler(func(msg string) { panicMsg = msg }),
	)
	require.NoError(t, err)

	adapter.Tracef("fiber trace id=%d", 1)
	adapter.Debugf("fiber debug id=%d", 2)
	adapter.Infof("fiber info id=%d", 3)
	adapter.Warnf("fiber warn id=%d", 4)
	adapter.Errorf("fiber error id=%d", 5)
	adapter.Fatalf("fiber fatal id=%d", 6)
	adapter.Panicf("fiber panic id=%d", 7)
	adapter.Info("plain ", "args")
	n, err := adapter.Write([]byte("written\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	expected := []string{
		"TRACE fiber trace id=1 source=fiber - compat_test.go:",
		"DEBUG fiber debug id=2 source=fiber - compat_test.go:",
		"INFO  fiber info id=3 source=fiber - compat_test.go:",
		"WARN  fiber warn id=4 source=fiber - compat_test.go:",
		"ERROR fiber error id=5 source=fiber - compat_test.go:",
		"ERROR fiber fatal id=6 fatal=1 source=fiber - compat_test.go:",
		"ERROR fiber panic id=7 panic=1 source=fiber - compat_test.go:",
		"INFO  plain args source=fiber - compat_test.go:",
		"INFO  written source=fiber - compat_test.go:",
	}
	lines := rec.Lines()
	require.Len(t, lines, len(expected))
	for i, line := range lines {
		assert.Contains(t, line, expected[i])
	}
	assert.Equal(t, "fiber fatal id=6", fatalMsg)
	assert.Equal(t, "fiber panic id=7", panicMsg)
	assert.Empty(t, rec.exits)
}

// TestFiberAdapterStructuredLogging covers the key/value method set
func TestFiberAdapterStructuredLogging(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)
	adapter, err := builder.BuildFiber()
	require.NoError(t, err)

	adapter.Infow("request served", "status", 200, "client_ip", "127.0.0.1", "method", "GET")
	adapter.Warnw("odd pairs", "dangling")
	adapter.Errorw("non-string key", 42, "answer")
	adapter.Tracew("below threshold", "k", "v")

	lines := rec.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INFO  request served status=200 client_ip=127.0.0.1 method=GET source=fiber - compat_test.go:")
	assert.Contains(t, lines[1], "WARN  odd pairs dangling=(null) source=fiber")
	assert.Contains(t, lines[2], "ERROR non-string key 42=answer source=fiber")
}

// TestFiberAdapterDefaults checks Fatal goes through a FATAL record and Panic panics
func TestFiberAdapterDefaults(t *testing.T) {
	builder, _, rec := createTestCompatBuilder(t)
	adapter, err := builder.BuildFiber()
	require.NoError(t, err)

	adapter.Fatalw("shutting down", "reason", "signal")
	require.Len(t, rec.Lines(), 1)
	assert.Contains(t, rec.Lines()[0], "FATAL shutting down reason=signal source=fiber - compat_test.go:")
	assert.Equal(t, []int{2}, rec.exits)

	assert.PanicsWithValue(t, "handler blew up", func() {
		adapter.Panic("handler ", "blew up")
	})
	require.Len(t, rec.Lines(), 2)
	assert.Contains(t, rec.Lines()[1], "ERROR handler blew up panic=1 source=fiber")
}
