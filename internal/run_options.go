package internal

import (
	"context"
	"net"
	"time"
)

// RunOption configures the server runtime.
type RunOption func(*runConfig)

type runConfig struct {
	baseCtx         context.Context
	ready           func(net.Addr)
	shutdownHooks   []func(context.Context) error
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		shutdownTimeout: defaultShutdownTimeout,
		writeTimeout:    defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// It covers both draining in-flight requests and shutdown hooks.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WriteTimeout bounds how long a request may take to produce its response,
// including the provider call. Zero disables the limit.
func WriteTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d >= 0 {
			c.writeTimeout = d
		}
	}
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks run in registration order after the server stops accepting requests.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}

// WithContext sets a base context; cancelling it triggers shutdown.
// Useful for tests. Defaults to context.Background().
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}

// OnReady registers a callback invoked with the bound address once the
// listener is open.
func OnReady(fn func(net.Addr)) RunOption {
	return func(c *runConfig) {
		c.ready = fn
	}
}
