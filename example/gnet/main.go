// FILE: lixenwraith/fixlog/example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/fixlog"
	"github.com/lixenwraith/fixlog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := fixlog.NewBuilder().
		Directory("./logs").
		Name("gnet").
		EnableFile(true).
		LevelString("debug").
		Sanitization("escape").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Engine failures are logged at ERROR and flushed before gnet returns
	gnetAdapter := compat.NewStructuredGnetAdapter(logger,
		compat.WithFatalHandler(func(msg string) {
			logger.Warn().Str("gnet requested shutdown: ").Str(msg).Send()
		}),
	)

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.Fatal().Str("gnet run failed: ").Err(err).Send()
	}
}
