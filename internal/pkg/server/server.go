package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, addr string, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. It returns early with
// the listen error if the server cannot start.
func (s *GracefulServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (s *GracefulServer) Serve(ctx context.Context, listener net.Listener) error {
	s.echo.Listener = listener
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", listener.Addr().String()))
		if err := s.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("HTTP server failed", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse registration order
type ShutdownManager struct {
	mu        sync.Mutex
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions, continuing past failures, and
// returns the joined errors
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	functions := make([]func(context.Context) error, len(sm.functions))
	copy(functions, sm.functions)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	var errs []error
	for i := len(functions) - 1; i >= 0; i-- {
		if err := functions[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
			errs = append(errs, err)
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
