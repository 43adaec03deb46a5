package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server serves the evaluator routes over HTTP.
type Server struct {
	Addr    string
	logger  *slog.Logger
	mode    string
	timeout time.Duration
	server  *http.Server
}

type serverOption func(Server) Server

// NewServerWithOptions creates a Server listening on addr.
func NewServerWithOptions(addr string, opts ...serverOption) *Server {
	s := Server{
		Addr:    addr,
		logger:  slog.Default(),
		mode:    gin.ReleaseMode,
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	gin.SetMode(s.mode)
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           NewRouter(s.logger),
		ReadHeaderTimeout: s.timeout,
	}
	return &s
}

func WithLogger(logger *slog.Logger) serverOption {
	return func(s Server) Server {
		s.logger = logger
		return s
	}
}

// WithMode sets the gin mode: debug, release or test.
func WithMode(mode string) serverOption {
	return func(s Server) Server {
		s.mode = mode
		return s
	}
}

func WithTimeout(timeout time.Duration) serverOption {
	return func(s Server) Server {
		s.timeout = timeout
		return s
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves on l in the background. Serve errors other than a regular
// shutdown are sent on the returned channel.
func (s *Server) Start(l net.Listener) <-chan error {
	errChan := make(chan error, 1)
	s.logger.Info("server listening", "addr", l.Addr().String())
	go func() {
		defer close(errChan)
		if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	return errChan
}

// ListenAndServe listens on the configured address and blocks until the
// server stops or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	errChan := s.Start(l)
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
