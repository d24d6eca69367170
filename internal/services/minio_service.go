package services

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"flicks-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MediaStorage hands out upload URLs for user media and removes replaced objects.
type MediaStorage interface {
	// PresignUpload returns a presigned PUT URL for a new object under prefix
	// and the public URL the object will be served from.
	PresignUpload(ctx context.Context, prefix, filename string) (uploadURL, publicURL string, err error)
	Delete(ctx context.Context, publicURL string) error
	// Owns reports whether a URL points into this storage.
	Owns(publicURL string) bool
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	// profile media is public, uploads stay presigned
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// objectName keeps the client's extension and makes the name unique.
func objectName(prefix, filename string) string {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' || r == '?' || r == '#' {
			return '_'
		}
		return r
	}, stem)
	return path.Join(prefix, fmt.Sprintf("%s_%s%s", stem, uuid.New().String()[:8], ext))
}

func (s *MinIOService) PresignUpload(ctx context.Context, prefix, filename string) (string, string, error) {
	object := objectName(prefix, filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, object, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + object

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": object,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

func (s *MinIOService) Owns(publicURL string) bool {
	return publicURL != "" && strings.HasPrefix(publicURL, s.publicURL+"/")
}

func (s *MinIOService) Delete(ctx context.Context, publicURL string) error {
	if !s.Owns(publicURL) {
		return nil
	}
	object := strings.TrimPrefix(publicURL, s.publicURL+"/")
	if idx := strings.Index(object, "?"); idx != -1 {
		object = object[:idx]
	}

	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectPath", object).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", object).Info("File deleted successfully from MinIO")
	return nil
}
