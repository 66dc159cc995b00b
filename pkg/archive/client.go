package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

var (
	ErrMissingBucket  = errors.New("archive bucket is required")
	ErrBucketNotFound = errors.New("archive bucket does not exist")
)

// Client uploads objects to a single bucket.
type Client struct {
	s3     *s3.Client
	bucket string
}

// NewS3Client initializes an S3 client using the provided configuration.
// It is compatible with MinIO and other S3-compatible services.
func NewS3Client(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	if cfg.Endpoint != "" {
		if _, err := url.Parse(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid S3 endpoint: %w", err)
		}
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Client{s3: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket checks that the configured bucket is reachable.
func (c *Client) EnsureBucket(ctx context.Context) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchBucket") {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, c.bucket)
		}
		return fmt.Errorf("error checking bucket: %w", err)
	}
	return nil
}

// Put stores data under key.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("error saving %s to S3: %w", key, err)
	}
	return nil
}
