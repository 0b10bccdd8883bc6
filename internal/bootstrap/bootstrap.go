// Package bootstrap picks the first free port from an ordered candidate list
// and binds the listener the UI server is started on.
//
// A port is first probed with a short-lived socket and then bound for real.
// Another process can take the port between the two steps; the OS arbitrates
// and a failed real bind simply moves the scan on to the next candidate.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"go.uber.org/zap"
)

var (
	// ErrPortUnavailable reports that a single candidate could not be used.
	ErrPortUnavailable = errors.New("port unavailable")
	// ErrNoPortAvailable reports that every candidate was tried without success.
	ErrNoPortAvailable = errors.New("no port available")
)

// ProbeFunc checks whether host:port can be bound. A nil error means free.
type ProbeFunc func(ctx context.Context, host string, port int) error

// BindFunc binds the listener the server will use.
type BindFunc func(ctx context.Context, host string, port int) (net.Listener, error)

// Bootstrapper scans candidate ports in order.
type Bootstrapper struct {
	host    string
	ports   []int
	probe   ProbeFunc
	bind    BindFunc
	logger  *zap.Logger
	console *Console
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithProbe replaces the availability probe.
func WithProbe(p ProbeFunc) Option {
	return func(b *Bootstrapper) { b.probe = p }
}

// WithBind replaces the real bind.
func WithBind(f BindFunc) Option {
	return func(b *Bootstrapper) { b.bind = f }
}

// WithOutput sets where operator messages are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Bootstrapper) { b.console = NewConsole(w) }
}

// New creates a Bootstrapper for host and the ordered candidate ports.
func New(host string, ports []int, logger *zap.Logger, opts ...Option) *Bootstrapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bootstrapper{
		host:    host,
		ports:   append([]int(nil), ports...),
		probe:   Probe,
		bind:    Bind,
		logger:  logger,
		console: NewConsole(os.Stdout),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Listen returns a listener on the first candidate that passes the probe
// and binds. It returns ErrNoPortAvailable once the list is exhausted, or the
// context error if ctx is cancelled between candidates.
func (b *Bootstrapper) Listen(ctx context.Context) (net.Listener, error) {
	b.console.Searching()

	for _, port := range b.ports {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := b.probe(ctx, b.host, port); err != nil {
			b.logger.Debug("port probe failed", zap.Int("port", port), zap.Error(err))
			b.console.Busy(port)
			continue
		}

		b.console.Launching(port)
		ln, err := b.bind(ctx, b.host, port)
		if err != nil {
			b.logger.Warn("bind failed after successful probe", zap.Int("port", port), zap.Error(err))
			b.console.Failed(port, err)
			continue
		}

		b.logger.Info("bound listener", zap.String("addr", ln.Addr().String()))
		return ln, nil
	}

	b.console.Exhausted()
	return nil, fmt.Errorf("%w: tried %v", ErrNoPortAvailable, b.ports)
}

// Probe binds host:port with address reuse enabled and releases it at once.
func Probe(ctx context.Context, host string, port int) error {
	lc := net.ListenConfig{Control: reuseAddr}
	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPortUnavailable, err)
	}
	return ln.Close()
}

// Bind opens the listener the server is started on.
func Bind(ctx context.Context, host string, port int) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPortUnavailable, err)
	}
	return ln, nil
}
