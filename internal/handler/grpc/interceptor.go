package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey    = "x-trace-id"
	appVersionKey = "x-app-version"
)

// UnaryInterceptor mirrors the HTTP trace-id and logging middleware for
// unary calls. The trace id comes from incoming metadata or is generated,
// and is sent back together with the server version in the response header.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	header := metadata.Pairs(traceIDKey, traceID)
	if h.services != nil && h.services.AppInfoService != nil {
		header.Set(appVersionKey, h.services.AppInfoService.GetAppVersion(ctx))
	}
	_ = grpc.SetHeader(ctx, header)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	l.Info().
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("call served")

	return resp, err
}
