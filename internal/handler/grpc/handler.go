// Package grpc exposes the gRPC side of the server: the standard
// grpc.health.v1.Health service plus reflection, and a unary interceptor
// that gives every call a trace id and an access log line.
package grpc

import (
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// StorageService is the health service name that tracks database
// reachability. The empty name reports the server as a whole.
const StorageService = "linkup.storage"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status is driven by the storage probe
// worker through SetServing.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	// not serving until the first storage probe succeeds
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing flips both the overall and the storage status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(StorageService, status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
