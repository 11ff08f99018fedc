package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
)

func minioConfig() config.Media {
	return config.Media{
		S3Bucket:    "avatars",
		S3Region:    "us-east-1",
		S3Endpoint:  "http://127.0.0.1:9000",
		S3AccessKey: "minioadmin",
		S3SecretKey: "minioadmin",
		PresignTTL:  5 * time.Minute,
	}
}

// ── static ────────────────────────────────────────────────────────────────────

func TestStaticResolver_URL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "relative base", base: "/uploads", ref: "default.jpg", want: "/uploads/default.jpg"},
		{name: "trailing slash base", base: "/uploads/", ref: "/a/b.png", want: "/uploads/a/b.png"},
		{name: "absolute base", base: "https://cdn.example.com/media", ref: "alice.png", want: "https://cdn.example.com/media/alice.png"},
		{name: "absolute reference kept", base: "/uploads", ref: "https://gravatar.com/x.png", want: "https://gravatar.com/x.png"},
		{name: "empty reference", base: "/uploads", ref: " ", wantErr: ErrEmptyReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStaticResolver(tt.base).URL(context.Background(), tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResolver_PicksImplementation(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	r, err := NewResolver(ctx, config.Media{BaseURL: "/uploads"}, log)
	require.NoError(t, err)
	assert.IsType(t, &StaticResolver{}, r)

	r, err = NewResolver(ctx, minioConfig(), log)
	require.NoError(t, err)
	assert.IsType(t, &S3Resolver{}, r)
}

// ── s3 ────────────────────────────────────────────────────────────────────────

func TestS3Resolver_URL_IsPresigned(t *testing.T) {
	r, err := NewS3Resolver(context.Background(), minioConfig())
	require.NoError(t, err)

	got, err := r.URL(context.Background(), "users/alice.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "http://127.0.0.1:9000/avatars/users/alice.png?"), got)
	assert.Contains(t, got, "X-Amz-Signature=")
	assert.Contains(t, got, "X-Amz-Expires=300")
}

func TestS3Resolver_URL_EmptyReference(t *testing.T) {
	r, err := NewS3Resolver(context.Background(), minioConfig())
	require.NoError(t, err)

	_, err = r.URL(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyReference)
}

func TestNewS3Resolver_AppliesOptions(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		assert.NotNil(t, lo.Credentials, "static credentials expected")
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	cfg := minioConfig()
	cfg.PresignTTL = 0
	r, err := NewS3Resolver(context.Background(), cfg)
	require.NoError(t, err)

	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, config.DefaultPresignTTL, r.ttl)
}

func TestNewS3Resolver_LoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewS3Resolver(context.Background(), minioConfig())
	assert.ErrorContains(t, err, "load-fail")
}

func TestS3Resolver_URL_PresignError(t *testing.T) {
	r, err := NewS3Resolver(context.Background(), minioConfig())
	require.NoError(t, err)

	origPresign := presignGetObject
	t.Cleanup(func() { presignGetObject = origPresign })

	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}

	_, err = r.URL(context.Background(), "k")
	assert.ErrorContains(t, err, "sign-fail")
}
