package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/config"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore keeps car photos in S3 (or any S3-compatible endpoint).
type ImageStore struct {
	client     objectPutter
	bucket     string
	publicBase string
}

func NewImageStore(cfg config.S3Config) *ImageStore {
	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &ImageStore{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: publicBase,
	}
}

// SaveCarImage transcodes the upload and returns its public URL.
func (s *ImageStore) SaveCarImage(ctx context.Context, carID uuid.UUID, r io.Reader) (string, error) {
	data, err := ToWebP(r, 80)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("cars/%s/%s.webp", carID, uuid.New())

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	}); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	return s.publicBase + "/" + key, nil
}
