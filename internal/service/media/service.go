package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"buildease/internal/config"
	"buildease/internal/repository"
)

// Service stores project gallery images in MinIO and records their public URLs
// on the project.
type Service interface {
	UploadGalleryImage(ctx context.Context, projectID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type service struct {
	projectRepo repository.ProjectRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(projectRepo repository.ProjectRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		projectRepo: projectRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) UploadGalleryImage(ctx context.Context, projectID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	storagePath := fmt.Sprintf("projects/%s/%s%s", time.Now().Format("2006/01"), uuid.New().String(), filepath.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	publicURL := s.getPublicURL(storagePath)

	if err := s.projectRepo.AppendGalleryImage(ctx, projectID, publicURL); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return "", err
	}

	return publicURL, nil
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
