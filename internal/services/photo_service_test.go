package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/testutil"
	"moto_portal/pkg/apperrors"
)

func newPhotoService(st *memStorage) PhotoService {
	return NewPhotoService(repositories.NewPhotoRepository(), repositories.NewModelRepository(), newTestAssets(st))
}

func TestPhotoService_UploadAppendsAndStoresFile(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	svc := newPhotoService(st)
	ctx := context.Background()
	model := seedModel(t, db, "R1")

	first, err := svc.Upload(ctx, db, model.ID, fileInput("front.jpg", "one"))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, db, model.ID, fileInput("side.png", "two"))
	require.NoError(t, err)

	assert.Less(t, first.SortOrder, second.SortOrder)
	assert.Equal(t, "front.jpg", first.OriginalFilename)
	assert.Contains(t, first.FilePath, "models/")
	assert.Equal(t, 2, st.count())

	photos, err := svc.List(ctx, db, model.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, first.ID, photos[0].ID)
}

func TestPhotoService_UploadRejectsDocument(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	svc := newPhotoService(st)
	model := seedModel(t, db, "R1")

	_, err := svc.Upload(context.Background(), db, model.ID, fileInput("manual.pdf", "doc"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidExtension))
	assert.Zero(t, st.count())
}

func TestPhotoService_UploadUnknownModel(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	svc := newPhotoService(st)

	_, err := svc.Upload(context.Background(), db, 999, fileInput("a.jpg", "x"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Zero(t, st.count())
}

func TestPhotoService_FailedInsertRemovesFile(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	svc := newPhotoService(st)
	model := seedModel(t, db, "R1")

	require.NoError(t, db.Migrator().DropTable(&models.ModelPhoto{}))

	_, err := svc.Upload(context.Background(), db, model.ID, fileInput("a.jpg", "x"))
	require.Error(t, err)
	assert.Zero(t, st.count(), "file must be removed when the row was not created")
}

func TestPhotoService_SetPrimaryAndReorder(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newPhotoService(newMemStorage())
	ctx := context.Background()
	model := seedModel(t, db, "R1")

	var ids []uint
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		p, err := svc.Upload(ctx, db, model.ID, fileInput(name, name))
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	_, err := svc.SetPrimary(ctx, db, ids[0])
	require.NoError(t, err)
	_, err = svc.SetPrimary(ctx, db, ids[2])
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(ctx, db, model.ID, []uint{ids[2], ids[0], ids[1]}))

	photos, err := svc.List(ctx, db, model.ID)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, []uint{ids[2], ids[0], ids[1]}, []uint{photos[0].ID, photos[1].ID, photos[2].ID})

	primary := 0
	for _, p := range photos {
		if p.IsPrimary {
			primary++
			assert.Equal(t, ids[2], p.ID)
		}
	}
	assert.Equal(t, 1, primary)
}

func TestPhotoService_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	svc := newPhotoService(st)
	ctx := context.Background()
	model := seedModel(t, db, "R1")

	p, err := svc.Upload(ctx, db, model.ID, fileInput("a.jpg", "x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, db, p.ID))
	assert.Equal(t, 1, st.deletes[p.FilePath])
	assert.Zero(t, st.count())

	err = svc.Delete(ctx, db, p.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
