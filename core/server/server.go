package server

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/formauth/core/logger"
)

// Server serves one handler until its context is canceled, then drains
// in-flight requests within the shutdown timeout.
type Server struct {
	cfg       Config
	tlsConfig *tls.Config
	logger    *slog.Logger

	mu sync.Mutex
	ln net.Listener
}

// New creates a Server listening on addr with default timeouts.
func New(addr string, opts ...Option) *Server {
	cfg := DefaultConfig()
	cfg.Addr = addr

	s := newServer(cfg)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newServer(cfg Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Listen binds the listening socket. Serve calls it when needed; calling it
// first lets the caller read Addr before any request is served.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve blocks until ctx is canceled or the listener fails.
// A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, handler http.Handler) error {
	if s.Addr() == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	log := s.logger.With(logger.Component("server"))

	srv := &http.Server{
		Handler:        handler,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: s.cfg.MaxHeaderBytes,
		// Request contexts keep ctx values but outlive its cancellation,
		// so in-flight requests can finish during shutdown.
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "server listening",
			slog.String("addr", ln.Addr().String()),
			slog.Bool("tls", s.tlsConfig != nil),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.release()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.ErrorContext(ctx, "server stopped unexpectedly", logger.Error(err))
		return err

	case <-ctx.Done():
	}

	log.Info("shutting down server", logger.Duration(s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	<-errCh
	s.release()

	if err != nil {
		log.Error("server shutdown failed", logger.Error(err))
		return err
	}
	log.Info("server shutdown complete")
	return nil
}

func (s *Server) release() {
	s.mu.Lock()
	s.ln = nil
	s.mu.Unlock()
}

// Run adapts Serve to the errgroup signature.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		return s.Serve(ctx, handler)
	}
}

// Run serves handler on addr with default settings until ctx is canceled.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Serve(ctx, handler)
}
