package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"velox/internal/keys"
	"velox/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Archive keeps a history of observed camera snapshots in
// S3-compatible storage, one timestamped JSON object per run. It is
// optional infrastructure: the bot keeps its working state on disk.
type S3Archive struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// NewS3Archive initializes an archive over the bucket. It connects to
// the MinIO server using credentials from environment variables.
func NewS3Archive(bucket string) (*S3Archive, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &S3Archive{client: minioClient, bucket: bucket, now: time.Now}, nil
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (s *S3Archive) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}
	return nil
}

// ArchiveSnapshot stores snap under a key derived from the observation
// time.
func (s *S3Archive) ArchiveSnapshot(ctx context.Context, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot to JSON: %v", err)
	}

	objectKey := keys.Snapshot(s.now())
	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot in S3: %v", err)
	}

	log.Printf("Archived snapshot with %d cameras under key '%s'", len(snap), objectKey)
	return nil
}

// LoadSnapshot retrieves an archived snapshot by object key.
func (s *S3Archive) LoadSnapshot(ctx context.Context, objectKey string) (models.Snapshot, error) {
	object, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %v", err)
	}
	defer object.Close()

	var snap models.Snapshot
	if err := json.NewDecoder(object).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from stream: %v", err)
	}
	return snap, nil
}
