// FILE: lixenwraith/fixlog/example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/fixlog"
	"github.com/lixenwraith/fixlog/compat"
)

func main() {
	logger := fixlog.NewLogger()
	err := logger.ApplyOverride(
		"directory=./logs",
		"name=fasthttp",
		"enable_file=true",
		"level=info",
		"file_buffer_kb=2",
		"sanitization=txt",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(fixlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler(logger),
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	logger.Info().Msg("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Fatal().Str("listen failed: ").Err(err).Send()
	}
}

func requestHandler(logger *fixlog.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
		logger.Debug().
			Str("method=").Bytes(ctx.Method()).
			Str(" path=").Str(string(ctx.Path())).
			Str(" bytes=").IEC(int64(len(ctx.Response.Body()))).
			Str(" took=").Any(time.Since(start)).
			Send()
	}
}

func customLevelDetector(msg string) fixlog.Severity {
	if strings.Contains(msg, "connection cannot be served") {
		return fixlog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return fixlog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
