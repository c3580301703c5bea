package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNotFound - файл отсутствует в хранилище
var ErrNotFound = errors.New("storage: file not found")

// ErrInvalidKey - ключ пустой или выходит за пределы корня хранилища
var ErrInvalidKey = errors.New("storage: invalid key")

// Storage - бэкенд хранения файлов. Ключи относительные, разделитель "/".
type Storage interface {
	// Save сохраняет файл по ключу, перезаписывая существующий
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get открывает файл на чтение; ErrNotFound если файла нет
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete удаляет файл; отсутствие файла не ошибка
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// GetURL возвращает публичный URL файла
	GetURL(key string) string

	GetSize(ctx context.Context, key string) (int64, error)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// CleanKey нормализует ключ и отклоняет абсолютные пути и выход за корень.
func CleanKey(key string) (string, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	cleaned := path.Clean(key)
	if cleaned == "." {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
