// Package archive uploads export files to S3-compatible object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/heartmarshall/pet-health-journal/internal/config"
)

type putObjecter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes objects under a fixed bucket and key prefix.
type Uploader struct {
	client putObjecter
	bucket string
	prefix string
	log    *slog.Logger
}

// NewUploader wraps an S3 client.
func NewUploader(client putObjecter, bucket, prefix string, logger *slog.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    logger.With("adapter", "archive"),
	}
}

// New builds an Uploader from the default AWS credential chain. Endpoint and
// path-style addressing allow MinIO and other S3-compatible stores.
func New(ctx context.Context, cfg config.ArchiveConfig, logger *slog.Logger) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("archive: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewUploader(client, cfg.Bucket, cfg.Prefix, logger), nil
}

// Upload stores body under the prefixed key as a private object.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body []byte) error {
	objectKey := path.Join(u.prefix, key)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", u.bucket, objectKey, err)
	}

	u.log.DebugContext(ctx, "object uploaded",
		slog.String("bucket", u.bucket),
		slog.String("key", objectKey),
		slog.Int("bytes", len(body)),
	)
	return nil
}
