package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"supervisionlab-backend/shared/config"
)

const (
	connectMaxRetries = 10
	connectRetryDelay = 2 * time.Second
)

// LandingStore wraps the object-store client for the landing bucket.
type LandingStore struct {
	client     *minio.Client
	bucketName string
}

// NewLandingStore builds a client from config and verifies connectivity with
// a bounded linear retry. Individual uploads afterwards are never retried.
func NewLandingStore() (*LandingStore, error) {
	cfg := config.GetConfig()

	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %w", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		_, err = minioClient.ListBuckets(ctx)
		if err == nil {
			break
		}
		if attempt < connectMaxRetries {
			log.Printf("MinIO connection attempt %d failed, retrying in %s...", attempt, connectRetryDelay)
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO after %d attempts: %w", connectMaxRetries, err)
	}

	return &LandingStore{
		client:     minioClient,
		bucketName: cfg.LandingBucketName,
	}, nil
}

// EnsureBucket creates the landing bucket when it does not exist yet.
func (s *LandingStore) EnsureBucket(ctx context.Context) error {
	log.Printf("🪣 Checking bucket: %s", s.bucketName)

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("✅ Bucket '%s' created successfully", s.bucketName)
	} else {
		log.Printf("✅ Bucket '%s' already exists", s.bucketName)
	}

	return nil
}

// UploadObject uploads one named object into the landing bucket.
func (s *LandingStore) UploadObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("⬆️ Uploaded %d bytes to %s/%s", len(body), s.bucketName, key)
	return nil
}

// BucketName returns the landing bucket name.
func (s *LandingStore) BucketName() string {
	return s.bucketName
}
