package themed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/rosagold/rosatheme/internal/config"
	"github.com/rosagold/rosatheme/internal/theme"
)

// Options configure the daemon runtime.
type Options struct {
	Hostname string
	Port     int
	Version  string
	Theme    *theme.Theme
}

// Daemon serves the theme service until its context ends.
type Daemon struct {
	cfg    *config.Config
	logger zerolog.Logger
	opts   Options

	server     *Server
	limiter    *RateLimiter
	grpcServer *grpc.Server
}

// New constructs a daemon. Zero option fields fall back to cfg.
func New(cfg *config.Config, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if opts.Hostname == "" {
		opts.Hostname = cfg.Daemon.Hostname
	}
	if opts.Hostname == "" {
		opts.Hostname = config.DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = cfg.Daemon.Port
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}

	var serverOpts []ServerOption
	if opts.Theme != nil {
		serverOpts = append(serverOpts, WithTheme(opts.Theme))
	}
	server := NewServer(logger, serverOpts...)

	limits := cfg.Daemon.RateLimit
	limiter := NewRateLimiter(
		WithEnabled(limits.Enabled),
		WithGlobalLimit(RateLimitConfig{
			RequestsPerSecond: limits.RequestsPerSecond,
			BurstSize:         limits.BurstSize,
		}),
	)

	grpcServer := NewGRPCServer(server, logger, limiter)

	return &Daemon{
		cfg:        cfg,
		logger:     logger,
		opts:       opts,
		server:     server,
		limiter:    limiter,
		grpcServer: grpcServer,
	}, nil
}

// NewGRPCServer builds a gRPC server with the logging and rate limit
// interceptors and registers srv on it. limiter may be nil.
func NewGRPCServer(srv ThemeServiceServer, logger zerolog.Logger, limiter *RateLimiter) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor(logger)}
	if limiter != nil {
		interceptors = append(interceptors, limiter.UnaryServerInterceptor())
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	RegisterThemeServiceServer(s, srv)
	return s
}

// Run listens on the configured address and blocks until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := d.Addr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}
	return d.Serve(ctx, listener)
}

// Serve runs the gRPC server on listener until ctx is canceled.
func (d *Daemon) Serve(ctx context.Context, listener net.Listener) error {
	d.logger.Info().
		Str("bind", listener.Addr().String()).
		Str("version", d.opts.Version).
		Bool("rate_limit", d.limiter.IsEnabled()).
		Msg("theme service starting")

	errCh := make(chan error, 1)
	go func() {
		if err := d.grpcServer.Serve(listener); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info().Msg("theme service shutting down...")
		d.grpcServer.GracefulStop()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
	}

	d.logger.Info().Msg("theme service shutdown complete")
	return nil
}

// Addr returns host:port the daemon binds to.
func (d *Daemon) Addr() string {
	return net.JoinHostPort(d.opts.Hostname, strconv.Itoa(d.opts.Port))
}

// Server returns the service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}

// Limiter returns the daemon's rate limiter.
func (d *Daemon) Limiter() *RateLimiter {
	return d.limiter
}

// LoggingInterceptor logs each call with a request id and its status code.
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		event := logger.Debug()
		if err != nil {
			event = logger.Warn().Err(err)
		}
		event.
			Str("request_id", uuid.NewString()).
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("rpc")
		return resp, err
	}
}
