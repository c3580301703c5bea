package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/testutil"
	"moto_portal/pkg/apperrors"
)

func TestModelService_DeleteCascade(t *testing.T) {
	db := testutil.NewDB(t)
	st := newMemStorage()
	store := newTestAssets(st)
	modelRepo := repositories.NewModelRepository()
	modelSvc := NewModelService(modelRepo, store)
	photoSvc := NewPhotoService(repositories.NewPhotoRepository(), modelRepo, store)
	ctx := context.Background()

	model := seedModel(t, db, "Cruiser")
	other := seedModel(t, db, "Other")

	var paths []string
	for _, name := range []string{"a.jpg", "b.jpg"} {
		p, err := photoSvc.Upload(ctx, db, model.ID, fileInput(name, name))
		require.NoError(t, err)
		paths = append(paths, p.FilePath)
	}
	otherPhoto, err := photoSvc.Upload(ctx, db, other.ID, fileInput("c.jpg", "c"))
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.ModelSpec{ModelID: model.ID, SpecName: "Power", SpecValue: "100"}).Error)
	require.NoError(t, db.Create(&models.ModelVideo{ModelID: model.ID, URL: "https://youtu.be/x"}).Error)

	require.NoError(t, modelSvc.Delete(ctx, db, model.ID))

	for _, p := range paths {
		assert.Equal(t, 1, st.deletes[p], "each photo file is deleted exactly once")
	}
	assert.Zero(t, st.deletes[otherPhoto.FilePath])
	assert.Equal(t, 1, st.count())

	var n int64
	db.Model(&models.ModelPhoto{}).Where("model_id = ?", model.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.ModelSpec{}).Where("model_id = ?", model.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.ModelVideo{}).Where("model_id = ?", model.ID).Count(&n)
	assert.Zero(t, n)

	_, err = modelSvc.GetFull(ctx, db, model.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestModelService_CreateAndPublicVisibility(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModelService(repositories.NewModelRepository(), newTestAssets(newMemStorage()))
	ctx := context.Background()

	active, err := svc.Create(ctx, db, &dto.CreateModelRequest{Name: "  Scrambler "})
	require.NoError(t, err)
	assert.Equal(t, "Scrambler", active.Name)
	assert.True(t, active.IsActive)

	hidden, err := svc.Create(ctx, db, &dto.CreateModelRequest{Name: "Prototype", IsActive: testutil.Ptr(false)})
	require.NoError(t, err)

	_, err = svc.GetActive(ctx, db, hidden.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	list, err := svc.ListActive(ctx, db, &dto.ModelListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	all, err := svc.List(ctx, db, &dto.ModelListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Create(ctx, db, &dto.CreateModelRequest{Name: "   "})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}

func TestModelService_FilterBySpecs(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewModelService(repositories.NewModelRepository(), newTestAssets(newMemStorage()))
	ctx := context.Background()

	a := seedModel(t, db, "A")
	b := seedModel(t, db, "B")
	require.NoError(t, db.Create(&models.ModelSpec{ModelID: a.ID, SpecName: "Engine", SpecValue: "650cc twin"}).Error)
	require.NoError(t, db.Create(&models.ModelSpec{ModelID: b.ID, SpecName: "Engine", SpecValue: "300cc single"}).Error)

	res, err := svc.FilterBySpecs(ctx, db, `{"Engine":"twin"}`)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, a.ID, res.Models[0].ID)
	assert.Equal(t, "twin", res.FiltersApplied["Engine"])

	_, err = svc.FilterBySpecs(ctx, db, `not json`)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}
