package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hoshgeldi/core/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

var ErrUnsupportedType = errors.New("unsupported file type")

// Service stores uploaded post images. With object storage configured it
// writes to the S3-compatible bucket; otherwise files land in the local
// static directory and are served from /static.
type Service struct {
	cfg    *config.AppConfig
	client *minio.Client
}

func NewService(cfg *config.AppConfig) (*Service, error) {
	s := &Service{cfg: cfg}
	if !cfg.ObjectStorageEnabled() {
		return s, nil
	}

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage client: %w", err)
	}
	s.client = client
	return s, nil
}

// Upload stores the file and returns its public URL.
func (s *Service) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}

	objectName := uuid.New().String() + ext
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if s.client != nil {
		return s.uploadObject(ctx, objectName, src, header)
	}
	return s.uploadLocal(objectName, src)
}

func (s *Service) uploadObject(ctx context.Context, objectName string, src multipart.File, header *multipart.FileHeader) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Storage.Bucket, objectName, src, header.Size, minio.PutObjectOptions{
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("object storage upload: %w", err)
	}

	base := s.cfg.Storage.BaseURL
	if base == "" {
		scheme := "http"
		if s.cfg.Storage.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, s.cfg.Storage.Endpoint, s.cfg.Storage.Bucket)
	}
	return base + "/" + objectName, nil
}

func (s *Service) uploadLocal(objectName string, src io.Reader) (string, error) {
	dir := filepath.Join(s.cfg.StaticDir(), "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, objectName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/static/uploads/" + objectName, nil
}
