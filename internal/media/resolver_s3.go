package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-linkup/internal/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Resolver returns short-lived presigned GET URLs for objects in one
// bucket. The reference is the object key.
type S3Resolver struct {
	bucket  string
	ttl     time.Duration
	presign *s3.PresignClient
}

// NewS3Resolver builds the presign client once. Static credentials are used
// when an access key is configured; otherwise the default AWS chain applies.
func NewS3Resolver(ctx context.Context, cfg config.Media) (*S3Resolver, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			// MinIO and most S3 compatible stores need path-style addressing
			o.UsePathStyle = true
		}
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = config.DefaultPresignTTL
	}

	return &S3Resolver{
		bucket:  cfg.S3Bucket,
		ttl:     ttl,
		presign: newS3PresignClient(client),
	}, nil
}

func (r *S3Resolver) URL(ctx context.Context, reference string) (string, error) {
	key := strings.TrimLeft(strings.TrimSpace(reference), "/")
	if key == "" {
		return "", ErrEmptyReference
	}
	if isAbsoluteURL(reference) {
		return reference, nil
	}

	req, err := presignGetObject(r.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", fmt.Errorf("error presigning avatar %q: %w", key, err)
	}

	return req.URL, nil
}
