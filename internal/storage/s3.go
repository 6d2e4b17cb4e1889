// Package storage hands out presigned S3 URLs for uploaded assets
// (annual-report PDFs, hero images). The service itself never proxies
// file bytes.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cmyzu/campus-backend/internal/config"
)

const presignExpiry = 15 * time.Minute

// URLSigner is what the route layer depends on; tests fake it.
type URLSigner interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

type Presigner struct {
	bucket  string
	presign *s3.PresignClient
}

func NewPresigner(ctx context.Context, cfg *config.Config) (*Presigner, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage: aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Presigner{
		bucket:  cfg.S3Bucket,
		presign: s3.NewPresignClient(client),
	}, nil
}

func (p *Presigner) PresignPut(ctx context.Context, key string) (string, error) {
	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &p.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("storage: presign put: %w", err)
	}
	return req.URL, nil
}

func (p *Presigner) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &p.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("storage: presign get: %w", err)
	}
	return req.URL, nil
}

// ReportKey namespaces report uploads by year.
func ReportKey(year int) string {
	return fmt.Sprintf("reports/%d/%s.pdf", year, uuid.NewString())
}

// HeroKey namespaces hero image uploads.
func HeroKey() string {
	return fmt.Sprintf("hero/%s", uuid.NewString())
}
