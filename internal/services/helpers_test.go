package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moto_portal/internal/assets"
	"moto_portal/internal/models"
	"moto_portal/internal/storage"
)

// memStorage - хранилище в памяти, считает попытки удаления по ключу
type memStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	deletes map[string]int
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}, deletes: map[string]int{}}
}

func (m *memStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return nil
}

func (m *memStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes[key]++
	delete(m.files, key)
	return nil
}

func (m *memStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[key]
	return ok, nil
}

func (m *memStorage) GetURL(key string) string {
	return "/static/uploads/" + key
}

func (m *memStorage) GetSize(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return 0, storage.ErrNotFound
	}
	return int64(len(data)), nil
}

func (m *memStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

func newTestAssets(st storage.Storage) *assets.Store {
	return assets.NewStore(st, assets.Options{
		MaxSize:            1 << 20,
		ImageExtensions:    []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		DocumentExtensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"},
	})
}

func seedModel(t *testing.T, db *gorm.DB, name string) *models.Model {
	t.Helper()
	m := &models.Model{Name: name, IsActive: true}
	require.NoError(t, db.Create(m).Error)
	return m
}

func fileInput(name, content string) FileInput {
	return FileInput{Filename: name, Content: strings.NewReader(content)}
}
