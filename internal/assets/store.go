package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"

	"moto_portal/internal/logger"
	"moto_portal/internal/metrics"
	"moto_portal/internal/storage"
	"moto_portal/pkg/apperrors"
)

// Kind ограничивает набор допустимых расширений для конкретной загрузки
type Kind int

const (
	KindAny      Kind = iota // изображения и документы
	KindImage                // только изображения
	KindDocument             // только документы
)

// Optimizer преобразует содержимое изображения перед сохранением
type Optimizer interface {
	Optimize(data []byte) ([]byte, error)
}

// Options - политика загрузки
type Options struct {
	MaxSize            int64
	ImageExtensions    []string
	DocumentExtensions []string
	Optimizer          Optimizer // nil - сохранять как есть
}

// SavedFile - результат сохранения
type SavedFile struct {
	Path             string `json:"file_path"` // относительно корня загрузок, разделитель "/"
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"file_size"`
	ContentType      string `json:"content_type"`
}

// Store сохраняет загруженные файлы под сгенерированными именами
type Store struct {
	storage   storage.Storage
	maxSize   int64
	images    []string
	documents []string
	optimizer Optimizer
}

func NewStore(st storage.Storage, opts Options) *Store {
	return &Store{
		storage:   st,
		maxSize:   opts.MaxSize,
		images:    opts.ImageExtensions,
		documents: opts.DocumentExtensions,
		optimizer: opts.Optimizer,
	}
}

// MaxSize - лимит размера файла в байтах
func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// Allowed - разрешённые расширения для вида загрузки
func (s *Store) Allowed(kind Kind) []string {
	switch kind {
	case KindImage:
		return s.images
	case KindDocument:
		return s.documents
	default:
		out := make([]string, 0, len(s.images)+len(s.documents))
		out = append(out, s.images...)
		return append(out, s.documents...)
	}
}

// IsImage - расширение файла входит в набор изображений
func (s *Store) IsImage(name string) bool {
	return contains(s.images, Ext(name))
}

// Save проверяет и сохраняет содержимое в <subfolder>/<uuid><ext>.
// Ошибки: InvalidInput, InvalidExtension, TooLarge, StorageError.
func (s *Store) Save(ctx context.Context, content []byte, originalName, subfolder string, kind Kind) (*SavedFile, error) {
	category := categoryOf(subfolder)

	ext, err := s.check(originalName, subfolder, kind, int64(len(content)))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(category, metrics.UploadRejected).Inc()
		return nil, err
	}

	if s.optimizer != nil && contains(s.images, ext) {
		optimized, err := s.optimizer.Optimize(content)
		if err != nil {
			logger.CtxWarn(ctx, "Image optimization failed, storing original", "file", originalName, "error", err)
		} else {
			content = optimized
		}
	}

	filename := uuid.New().String() + ext
	storedPath := path.Join(cleanSubfolder(subfolder), filename)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.Save(ctx, storedPath, bytes.NewReader(content), contentType); err != nil {
		metrics.UploadsTotal.WithLabelValues(category, metrics.UploadFailed).Inc()
		logger.CtxWithError(ctx, "Failed to store uploaded file", err, "path", storedPath)
		return nil, apperrors.StorageError(err)
	}

	metrics.UploadsTotal.WithLabelValues(category, metrics.UploadOK).Inc()
	logger.CtxDebug(ctx, "File stored", "path", storedPath, "size", len(content))

	return &SavedFile{
		Path:             storedPath,
		Filename:         filename,
		OriginalFilename: originalName,
		Size:             int64(len(content)),
		ContentType:      contentType,
	}, nil
}

// SaveReader читает не больше MaxSize+1 байт и сохраняет через Save
func (s *Store) SaveReader(ctx context.Context, r io.Reader, originalName, subfolder string, kind Kind) (*SavedFile, error) {
	if _, err := s.check(originalName, subfolder, kind, 0); err != nil {
		metrics.UploadsTotal.WithLabelValues(categoryOf(subfolder), metrics.UploadRejected).Inc()
		return nil, err
	}

	content, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, apperrors.InvalidInput("Failed to read uploaded file").WithError(err)
	}

	return s.Save(ctx, content, originalName, subfolder, kind)
}

// Delete удаляет файл; никогда не возвращает ошибку, отсутствие файла - успех
func (s *Store) Delete(ctx context.Context, storedPath string) bool {
	if strings.TrimSpace(storedPath) == "" {
		return true
	}
	if err := s.storage.Delete(ctx, storedPath); err != nil {
		logger.CtxWithError(ctx, "Failed to delete stored file", err, "path", storedPath)
		return false
	}
	return true
}

// Open открывает сохранённый файл на чтение
func (s *Store) Open(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	return s.storage.Get(ctx, storedPath)
}

// URL - публичный адрес файла
func (s *Store) URL(storedPath string) string {
	return s.storage.GetURL(storedPath)
}

// check - порядок проверок: имя, подпапка, расширение, размер.
// Недопустимое расширение отклоняется независимо от размера.
func (s *Store) check(originalName, subfolder string, kind Kind, size int64) (string, error) {
	if strings.TrimSpace(originalName) == "" {
		return "", apperrors.ErrEmptyFilename
	}
	if err := validateSubfolder(subfolder); err != nil {
		return "", err
	}

	ext := Ext(originalName)
	allowed := s.Allowed(kind)
	if ext == "" || !contains(allowed, ext) {
		return "", apperrors.InvalidExtension(ext, allowed)
	}

	if s.maxSize > 0 && size > s.maxSize {
		return "", apperrors.TooLarge(s.maxSize)
	}
	return ext, nil
}

// Ext - расширение в нижнем регистре с точкой
func Ext(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.ToLower(path.Ext(path.Base(name)))
}

func cleanSubfolder(subfolder string) string {
	return strings.Trim(strings.ReplaceAll(strings.TrimSpace(subfolder), "\\", "/"), "/")
}

func validateSubfolder(subfolder string) error {
	sub := cleanSubfolder(subfolder)
	if sub == "" {
		return apperrors.InvalidInput("Upload folder must not be empty")
	}
	for _, part := range strings.Split(sub, "/") {
		if part == "" || part == "." || part == ".." {
			return apperrors.InvalidInput(fmt.Sprintf("Invalid upload folder %q", subfolder))
		}
	}
	return nil
}

func categoryOf(subfolder string) string {
	sub := cleanSubfolder(subfolder)
	if i := strings.Index(sub, "/"); i >= 0 {
		return sub[:i]
	}
	return sub
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
