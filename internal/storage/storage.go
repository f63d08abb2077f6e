package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/silzatelesols/billify/internal/config"
	"go.uber.org/zap"
)

// signedURLTTL is the lifetime of presigned download links.
const signedURLTTL = 3600 * time.Second

var ErrNotConfigured = errors.New("storage_not_configured")

// ObjectStore uploads generated documents and issues download links.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	SignedURL(ctx context.Context, key string) (string, error)
	// ObjectKey builds a collision-resistant key under the given prefix,
	// keeping the file extension.
	ObjectKey(prefix, ext string) string
}

type S3Store struct {
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	log      *zap.Logger
}

// NewS3Store builds the store from app config. Returns ErrNotConfigured
// when the bucket is unset so callers can degrade instead of failing.
func NewS3Store(cfg config.Config, log *zap.Logger) (*S3Store, error) {
	if !cfg.StorageConfigured() {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Storage.PDFBucket,
		log:     log.Named("storage.s3"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("failed to upload object", zap.Error(err), zap.String("key", key))
		return err
	}
	s.log.Info("object uploaded", zap.String("key", key), zap.Int("bytes", len(body)))
	return nil
}

func (s *S3Store) SignedURL(ctx context.Context, key string) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(signedURLTTL))
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

func (s *S3Store) ObjectKey(prefix, ext string) string {
	return fmt.Sprintf("%s/%d-%s.%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
