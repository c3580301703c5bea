package assets

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/storage"
	"moto_portal/pkg/apperrors"
)

func newTestStore(t *testing.T, maxSize int64) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/static/uploads"})
	require.NoError(t, err)

	return NewStore(st, Options{
		MaxSize:            maxSize,
		ImageExtensions:    []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		DocumentExtensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"},
	}), dir
}

func TestSave_RoundTrip(t *testing.T) {
	store, dir := newTestStore(t, 1024)
	ctx := context.Background()

	cases := []struct {
		name      string
		subfolder string
		ext       string
	}{
		{"photo.JPG", "models", ".jpg"},
		{"scheme.png", "models/12", ".png"},
		{"manual.pdf", "regulations", ".pdf"},
		{`C:\docs\price list.xlsx`, "news", ".xlsx"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := []byte("content of " + tc.name)

			saved, err := store.Save(ctx, content, tc.name, tc.subfolder, KindAny)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(saved.Path, tc.subfolder+"/"))
			assert.NotContains(t, saved.Path, `\`)
			assert.Equal(t, tc.ext, filepath.Ext(saved.Path))
			assert.Equal(t, tc.name, saved.OriginalFilename)
			assert.Equal(t, int64(len(content)), saved.Size)

			stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(saved.Path)))
			require.NoError(t, err)
			assert.True(t, bytes.Equal(content, stored))
		})
	}
}

func TestSave_GeneratesUniqueNames(t *testing.T) {
	store, _ := newTestStore(t, 1024)
	ctx := context.Background()

	a, err := store.Save(ctx, []byte("a"), "same.jpg", "models", KindImage)
	require.NoError(t, err)
	b, err := store.Save(ctx, []byte("b"), "same.jpg", "models", KindImage)
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	assert.NotContains(t, a.Filename, "same")
}

func TestSave_InvalidExtensionRegardlessOfSize(t *testing.T) {
	store, _ := newTestStore(t, 16)
	ctx := context.Background()

	for _, size := range []int{0, 1, 16, 17, 1000} {
		for _, name := range []string{"script.exe", "archive.tar.gz", "noext", "photo.jpg.sh"} {
			_, err := store.Save(ctx, make([]byte, size), name, "models", KindAny)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidExtension), "name=%s size=%d", name, size)
		}
	}
}

func TestSave_KindRestrictsExtensions(t *testing.T) {
	store, _ := newTestStore(t, 1024)
	ctx := context.Background()

	_, err := store.Save(ctx, []byte("%PDF"), "manual.pdf", "models", KindImage)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidExtension))

	_, err = store.Save(ctx, []byte("img"), "photo.png", "news", KindDocument)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidExtension))
}

func TestSave_TooLarge(t *testing.T) {
	store, dir := newTestStore(t, 8)

	_, err := store.Save(context.Background(), make([]byte, 9), "big.jpg", "models", KindAny)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTooLarge))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveReader_TooLarge(t *testing.T) {
	store, _ := newTestStore(t, 8)

	_, err := store.SaveReader(context.Background(), strings.NewReader("0123456789"), "big.pdf", "news", KindAny)
	assert.True(t, apperrors.Is(err, apperrors.ErrTooLarge))
}

func TestSave_InvalidInput(t *testing.T) {
	store, _ := newTestStore(t, 1024)
	ctx := context.Background()

	_, err := store.Save(ctx, []byte("x"), "", "models", KindAny)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))

	_, err = store.Save(ctx, []byte("x"), "   ", "models", KindAny)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))

	for _, sub := range []string{"", "../etc", "models/../../x", "./models"} {
		_, err = store.Save(ctx, []byte("x"), "a.jpg", sub, KindAny)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput), "subfolder=%q", sub)
	}
}

func TestDelete(t *testing.T) {
	store, dir := newTestStore(t, 1024)
	ctx := context.Background()

	saved, err := store.Save(ctx, []byte("x"), "a.jpg", "models", KindImage)
	require.NoError(t, err)

	assert.True(t, store.Delete(ctx, saved.Path))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(saved.Path)))
	assert.True(t, os.IsNotExist(err))

	// повторное удаление и пустой путь - не ошибка
	assert.True(t, store.Delete(ctx, saved.Path))
	assert.True(t, store.Delete(ctx, ""))

	assert.False(t, store.Delete(ctx, "../outside.jpg"))
}

func TestURL(t *testing.T) {
	store, _ := newTestStore(t, 1024)
	assert.Equal(t, "/static/uploads/models/a.jpg", store.URL("models/a.jpg"))
}

type stubOptimizer struct{ calls int }

func (o *stubOptimizer) Optimize(data []byte) ([]byte, error) {
	o.calls++
	return []byte("small"), nil
}

func TestSave_OptimizesImagesOnly(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: dir})
	require.NoError(t, err)
	opt := &stubOptimizer{}
	store := NewStore(st, Options{
		MaxSize:            1024,
		ImageExtensions:    []string{".jpg"},
		DocumentExtensions: []string{".pdf"},
		Optimizer:          opt,
	})
	ctx := context.Background()

	img, err := store.Save(ctx, []byte("large image bytes"), "a.jpg", "models", KindAny)
	require.NoError(t, err)
	assert.Equal(t, int64(5), img.Size)

	_, err = store.Save(ctx, []byte("document"), "a.pdf", "news", KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1, opt.calls)
}
