package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	ok := map[string]string{
		"models/a.jpg":     "models/a.jpg",
		"models//a.jpg":    "models/a.jpg",
		`news\b.pdf`:       "news/b.pdf",
		"models/./x/a.png": "models/x/a.png",
	}
	for in, want := range ok {
		got, err := CleanKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "/etc/passwd", "../a.jpg", "models/../../a.jpg", "."} {
		_, err := CleanKey(bad)
		assert.ErrorIs(t, err, ErrInvalidKey, bad)
	}
}

func TestLocalStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	st, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/static/uploads/"})
	require.NoError(t, err)

	require.NoError(t, st.Save(ctx, "models/1/a.jpg", strings.NewReader("hello"), "image/jpeg"))

	exists, err := st.Exists(ctx, "models/1/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := st.GetSize(ctx, "models/1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	rc, err := st.Get(ctx, "models/1/a.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	assert.Equal(t, "/static/uploads/models/1/a.jpg", st.GetURL("models/1/a.jpg"))

	require.NoError(t, st.Delete(ctx, "models/1/a.jpg"))
	require.NoError(t, st.Delete(ctx, "models/1/a.jpg"))

	_, err = st.Get(ctx, "models/1/a.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	st, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	err = st.Save(context.Background(), "../escape.txt", strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
