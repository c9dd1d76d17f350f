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
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
)

// s3BlobStorage keeps blobs in an S3-compatible bucket. Works with AWS S3,
// MinIO and other providers reachable through a custom endpoint.
type s3BlobStorage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3BlobStorage builds a client from cfg and makes sure the bucket exists.
func NewS3BlobStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (BlobStorage, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	// static credentials win over the default chain
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStorage").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	storage := &s3BlobStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}

	if err = storage.ensureBucket(ctx); err != nil {
		log.Err(err).Str("func", "NewS3BlobStorage").Str("bucket", cfg.Bucket).Msg("bucket unavailable")
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	log.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("initialized S3 blob storage")
	return storage, nil
}

func (s *s3BlobStorage) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", s.bucket, err)
	}

	s.logger.Info().Str("bucket", s.bucket).Msg("created S3 bucket")
	return nil
}

// Put buffers r so the SDK can sign a seekable body of known length.
// Callers bound r by the upload limit before it gets here.
func (s *s3BlobStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	if key == "" {
		return 0, ErrInvalidBlobKey
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return n, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(n),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3BlobStorage.Put").Str("key", key).Msg("failed to upload to S3")
		return 0, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return n, nil
}

func (s *s3BlobStorage) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, 0, ErrBlobNotFound
		}
		return nil, 0, fmt.Errorf("failed to download from S3: %w", err)
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return out.Body, size, nil
}

func (s *s3BlobStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
