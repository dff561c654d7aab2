package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage stores uploads in a Google Cloud Storage bucket under
// uploads/kyc/<case>/<doc_type>/<filename> and hands out short-lived signed
// URLs for downloads.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Store(content []byte, caseID uint, docType, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectKey := fmt.Sprintf("uploads/kyc/%d/%s/%s", caseID, docType, filename)

	writer := s.client.Bucket(s.bucket).Object(objectKey).NewWriter(ctx)
	if _, err := writer.Write(content); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize GCS write: %w", err)
	}

	return "gs://" + s.bucket + "/" + objectKey, nil
}

func (s *GCSStorage) ResolveURL(handle string) (string, bool) {
	prefix := "gs://" + s.bucket + "/"
	if !strings.HasPrefix(handle, prefix) {
		return "", false
	}
	objectKey := strings.TrimPrefix(handle, prefix)

	url, err := s.client.Bucket(s.bucket).SignedURL(objectKey, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(time.Hour),
	})
	if err != nil {
		log.Printf("Failed to sign URL for %s: %v", objectKey, err)
		return "", false
	}
	return url, true
}

func (s *GCSStorage) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Bucket(s.bucket).Attrs(ctx)
	return err
}
