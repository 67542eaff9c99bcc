package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/logger"
)

// S3ImageStore uploads product images to an S3-compatible bucket
type S3ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3ImageStore creates the store from storage configuration
func NewS3ImageStore(cfg config.StorageConfig) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-2"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicURL, err := resolvePublicURL(cfg, region)
	if err != nil {
		return nil, err
	}

	return &S3ImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// resolvePublicURL picks the base under which uploaded keys are reachable
func resolvePublicURL(cfg config.StorageConfig, region string) (string, error) {
	base := cfg.PublicURL
	switch {
	case base != "":
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		u, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return "", fmt.Errorf("invalid storage endpoint: %w", err)
		}
		base = fmt.Sprintf("%s://%s.%s", u.Scheme, cfg.Bucket, u.Host)
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("invalid storage public url: %w", err)
	}
	return strings.TrimRight(base, "/"), nil
}

// Upload stores body under key and returns the object's public URL
func (s *S3ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	logger.Info(ctx).
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("Product image uploaded")

	return s.URLFor(key), nil
}

// URLFor returns the public URL of key
func (s *S3ImageStore) URLFor(key string) string {
	return s.publicURL + "/" + key
}
