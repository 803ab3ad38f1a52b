package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Server runs an echo instance until its context is cancelled, then drains
// in-flight calls for at most shutdownTimeout. Units of work still open
// when the timeout expires are rolled back by their own deadline.
type Server struct {
	echo            *echo.Echo
	address         string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	started         chan struct{}
}

func New(e *echo.Echo, address string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		echo:            e,
		address:         address,
		readTimeout:     15 * time.Second,
		writeTimeout:    15 * time.Second,
		shutdownTimeout: 10 * time.Second,
		logger:          logger,
		started:         make(chan struct{}),
	}
}

// WithTimeouts overrides the read, write and shutdown timeouts. Zero values
// keep the defaults.
func (s *Server) WithTimeouts(read, write, shutdown time.Duration) *Server {
	if read > 0 {
		s.readTimeout = read
	}
	if write > 0 {
		s.writeTimeout = write
	}
	if shutdown > 0 {
		s.shutdownTimeout = shutdown
	}
	return s
}

// Started is closed once the listener goroutine has been launched
func (s *Server) Started() <-chan struct{} {
	return s.started
}

// Run blocks until ctx is done or the listener fails
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.address,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info("Starting RPC server", "address", s.address)
		if err := s.echo.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()
	close(s.started)

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("rpc server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down RPC server", "timeout", s.shutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	s.logger.Info("RPC server stopped")
	return nil
}
