// FILE: lixenwraith/fixlog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/fixlog"
)

// Builder hands out adapters that share one *fixlog.Logger.
// The logger is either supplied or created on first use from a Config.
type Builder struct {
	logger *fixlog.Logger
	logCfg *fixlog.Config
	err    error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger shares l with every adapter. It takes precedence over WithConfig.
func (b *Builder) WithLogger(l *fixlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("fixlog/compat: logger is nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig sets the configuration applied to the logger created on first
// use. Without it DefaultConfig applies.
func (b *Builder) WithConfig(cfg *fixlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger returns the shared logger, creating and configuring it once
func (b *Builder) getLogger() (*fixlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		cfg = fixlog.DefaultConfig()
	}
	l := fixlog.NewLogger()
	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	b.logger = l
	return l, nil
}

func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildStructuredGnet returns a gnet adapter that lifts key=%v pairs out of
// format strings into record fields
func (b *Builder) BuildStructuredGnet(opts ...GnetOption) (*StructuredGnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewStructuredGnetAdapter(l, opts...), nil
}

func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, opts...), nil
}

// GetLogger returns the shared logger, creating it if needed
func (b *Builder) GetLogger() (*fixlog.Logger, error) {
	return b.getLogger()
}
