package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// s3API is the subset of *s3.Client used by [s3BlobContentStore].
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3BlobContentStore keeps blob ciphertext in an S3-compatible bucket
// (AWS S3, MinIO).
type s3BlobContentStore struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3BlobContentStore builds a [BlobContentStore] for the configured bucket
// using static credentials. A custom endpoint switches the client to
// path-style addressing.
func NewS3BlobContentStore(ctx context.Context, cfg config.S3, log *logger.Logger) (BlobContentStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobContentStore").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: load config: %w", ErrObjectStore, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3BlobContentStore").Str("bucket", cfg.Bucket).Msg("blob content stored in object storage")

	return &s3BlobContentStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

func (s *s3BlobContentStore) PutObject(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "s3BlobContentStore.PutObject").
			Str("key", key).
			Msg("failed to upload blob object")
		return fmt.Errorf("%w: put %s: %w", ErrObjectStore, key, err)
	}

	return nil
}

func (s *s3BlobContentStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrBlobNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "s3BlobContentStore.GetObject").
			Str("key", key).
			Msg("failed to download blob object")
		return nil, fmt.Errorf("%w: get %s: %w", ErrObjectStore, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrObjectStore, key, err)
	}

	return data, nil
}

func (s *s3BlobContentStore) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrObjectStore, key, err)
	}

	return nil
}
