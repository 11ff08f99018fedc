package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/handler"
	"github.com/MKhiriev/go-linkup/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until a stop signal arrives or a listener fails.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	for _, l := range s.listeners() {
		l.Shutdown()
	}
}

func (s *server) listeners() []listener {
	var ls []listener
	if s.httpServer != nil {
		ls = append(ls, s.httpServer)
	}
	if s.gRPCServer != nil {
		ls = append(ls, s.gRPCServer)
	}
	return ls
}

// run starts every listener and waits for ctx to end or the first listener
// error. Either way all listeners are shut down before it returns.
func (s *server) run(ctx context.Context) error {
	return s.runListeners(ctx, s.listeners())
}

func (s *server) runListeners(ctx context.Context, ls []listener) error {
	if len(ls) == 0 {
		return errNoServersToRun
	}

	errs := make(chan error, len(ls))
	for _, l := range ls {
		s.logger.Info().Str("transport", l.name()).Msg("launching server")
		go func() {
			if err := l.serve(); err != nil {
				errs <- fmt.Errorf("%s server: %w", l.name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
	}

	for _, l := range ls {
		l.Shutdown()
	}

	return runErr
}
