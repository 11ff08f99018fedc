// Package media turns avatar references stored on a profile into URLs a
// client can fetch. Bytes are never handled here; uploads live elsewhere.
package media

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
)

// ErrEmptyReference is returned for an empty avatar reference.
var ErrEmptyReference = errors.New("media reference is empty")

// Resolver maps a media reference to a servable URL.
type Resolver interface {
	URL(ctx context.Context, reference string) (string, error)
}

// NewResolver returns an S3 presigning resolver when a bucket is configured
// and a static base URL resolver otherwise.
func NewResolver(ctx context.Context, cfg config.Media, log *logger.Logger) (Resolver, error) {
	if cfg.S3Bucket != "" {
		log.Info().Str("bucket", cfg.S3Bucket).Msg("avatar URLs are presigned S3 links")
		return NewS3Resolver(ctx, cfg)
	}

	log.Info().Str("base_url", cfg.BaseURL).Msg("avatar URLs are served from a static base URL")
	return NewStaticResolver(cfg.BaseURL), nil
}

// StaticResolver joins references onto a fixed base URL.
type StaticResolver struct {
	baseURL string
}

func NewStaticResolver(baseURL string) *StaticResolver {
	return &StaticResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *StaticResolver) URL(_ context.Context, reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", ErrEmptyReference
	}
	if isAbsoluteURL(reference) {
		return reference, nil
	}

	return url.JoinPath(r.baseURL+"/", strings.TrimLeft(reference, "/"))
}

func isAbsoluteURL(reference string) bool {
	u, err := url.Parse(reference)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
