package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 2 * time.Minute
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		shutdownTimeout: shutdownTimeout(cfg),
		logger:          logger,
	}
}

func (h *httpServer) name() string {
	return "HTTP"
}

func (h *httpServer) RunServer() {
	if err := h.serve(); err != nil {
		h.logger.Err(err).Msg("HTTP server stopped with error")
	}
}

func (h *httpServer) serve() error {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.serveListener(l)
}

func (h *httpServer) serveListener(l net.Listener) error {
	h.logger.Info().Str("address", l.Addr().String()).Msg("HTTP server listening")

	err := h.server.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown did not finish in time")
		_ = h.server.Close()
		return
	}
	h.logger.Info().Msg("HTTP server stopped")
}

func shutdownTimeout(cfg config.Server) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return config.DefaultShutdownTimeout
	}
	return cfg.ShutdownTimeout
}
