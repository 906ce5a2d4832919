package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rafabene/plazamap-backend/internal/domain/ports"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/config"
)

// MinioStore implementa ports.ObjectStore sobre um bucket MinIO/S3
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStore conecta no endpoint configurado e garante que o bucket
// de imagens existe
func NewMinioStore(ctx context.Context, cfg *config.StorageConfig, log ports.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("storage bucket created", "bucket", cfg.Bucket)
	}

	log.Info("object storage connected",
		"endpoint", cfg.Endpoint,
		"bucket", cfg.Bucket,
	)

	return &MinioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put grava o objeto e retorna a URL pública de leitura
func (s *MinioStore) Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", path, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, path), nil
}

// Remove exclui o objeto endereçado pela URL pública
func (s *MinioStore) Remove(ctx context.Context, url string) error {
	path, err := s.objectPath(url)
	if err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", path, err)
	}
	return nil
}

// objectPath extrai o caminho do objeto a partir da URL pública
func (s *MinioStore) objectPath(url string) (string, error) {
	prefix := s.publicBaseURL + "/" + s.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q is not served by this store", url)
	}
	return strings.TrimPrefix(url, prefix), nil
}
