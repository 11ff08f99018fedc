package server

import (
	"net"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	myGRPC "github.com/MKhiriev/go-linkup/internal/handler/grpc"
	"github.com/MKhiriev/go-linkup/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	address         string
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		address:         cfg.GRPCAddress,
		shutdownTimeout: shutdownTimeout(cfg),
		logger:          logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) RunServer() {
	if err := g.serve(); err != nil {
		g.logger.Err(err).Msg("gRPC server stopped with error")
	}
}

func (g *grpcServer) serve() error {
	l, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	return g.serveListener(l)
}

func (g *grpcServer) serveListener(l net.Listener) error {
	g.logger.Info().Str("address", l.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(l)
}

// Shutdown reports NOT_SERVING first so health probes drain traffic, then
// stops gracefully. Calls still running after the timeout are cut off.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		g.logger.Info().Msg("gRPC server stopped")
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
}
