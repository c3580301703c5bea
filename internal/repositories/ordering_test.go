package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moto_portal/internal/models"
	"moto_portal/internal/testutil"
)

func seedModel(t *testing.T, db *gorm.DB, name string) *models.Model {
	t.Helper()
	m := &models.Model{Name: name, IsActive: true}
	require.NoError(t, NewModelRepository().Create(db, m))
	return m
}

func seedPhotos(t *testing.T, db *gorm.DB, modelID uint, n int) []models.ModelPhoto {
	t.Helper()
	repo := NewPhotoRepository()
	photos := make([]models.ModelPhoto, 0, n)
	for i := 0; i < n; i++ {
		p := models.ModelPhoto{
			ModelID: modelID,
			FileAsset: models.FileAsset{
				Filename: fmt.Sprintf("p%d.jpg", i),
				FilePath: fmt.Sprintf("models/%d/p%d.jpg", modelID, i),
			},
		}
		require.NoError(t, repo.Create(db, &p))
		photos = append(photos, p)
	}
	return photos
}

func TestPhotoCreate_AppendsMaxBased(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPhotoRepository()
	m := seedModel(t, db, "R1")

	photos := seedPhotos(t, db, m.ID, 3)
	assert.Equal(t, 1, photos[0].SortOrder)
	assert.Equal(t, 2, photos[1].SortOrder)
	assert.Equal(t, 3, photos[2].SortOrder)

	// после удаления среднего следующий номер не повторяет существующий
	require.NoError(t, repo.Delete(db, photos[1].ID))
	next := seedPhotos(t, db, m.ID, 1)[0]
	assert.Equal(t, 4, next.SortOrder)
}

func TestReorder_AssignsPositions(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPhotoRepository()
	m := seedModel(t, db, "R1")
	photos := seedPhotos(t, db, m.ID, 3)

	ids := []uint{photos[2].ID, photos[0].ID, photos[1].ID}
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return repo.Reorder(tx, m.ID, ids)
	}))

	got, err := repo.FindByModel(db, m.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, ids[i], p.ID)
		assert.Equal(t, i+1, p.SortOrder)
	}
}

func TestReorder_LeavesOmittedAndForeignUntouched(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPhotoRepository()
	m := seedModel(t, db, "R1")
	other := seedModel(t, db, "R2")
	photos := seedPhotos(t, db, m.ID, 3)
	foreign := seedPhotos(t, db, other.ID, 1)[0]

	// фото 0 пропущено, foreign принадлежит другой модели
	require.NoError(t, repo.Reorder(db, m.ID, []uint{photos[2].ID, foreign.ID, photos[1].ID}))

	p0, err := repo.FindByID(db, photos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p0.SortOrder)

	p2, err := repo.FindByID(db, photos[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p2.SortOrder)

	p1, err := repo.FindByID(db, photos[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p1.SortOrder)

	f, err := repo.FindByID(db, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.SortOrder)
}

func countPrimary(t *testing.T, db *gorm.DB, modelID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.ModelPhoto{}).
		Where("model_id = ? AND is_primary = ?", modelID, true).
		Count(&n).Error)
	return n
}

func TestSetPrimary_ExactlyOneForAnyPriorState(t *testing.T) {
	cases := map[string][]int{
		"none":     {},
		"one":      {1},
		"multiple": {0, 1, 2},
	}

	for name, primaries := range cases {
		t.Run(name, func(t *testing.T) {
			db := testutil.NewDB(t)
			repo := NewPhotoRepository()
			m := seedModel(t, db, "R1")
			other := seedModel(t, db, "R2")
			photos := seedPhotos(t, db, m.ID, 3)
			otherPhoto := seedPhotos(t, db, other.ID, 1)[0]

			require.NoError(t, db.Model(&models.ModelPhoto{}).Where("id = ?", otherPhoto.ID).
				Update("is_primary", true).Error)
			for _, idx := range primaries {
				require.NoError(t, db.Model(&models.ModelPhoto{}).Where("id = ?", photos[idx].ID).
					Update("is_primary", true).Error)
			}

			target := photos[2]
			require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
				return repo.SetPrimary(tx, &target)
			}))

			assert.Equal(t, int64(1), countPrimary(t, db, m.ID))
			got, err := repo.FindByID(db, target.ID)
			require.NoError(t, err)
			assert.True(t, got.IsPrimary)

			// соседняя коллекция не затронута
			assert.Equal(t, int64(1), countPrimary(t, db, other.ID))
		})
	}
}

func TestNextSortOrder_EmptyCollection(t *testing.T) {
	db := testutil.NewDB(t)
	m := seedModel(t, db, "R1")

	next, err := NextSortOrder(db, &models.ModelVideo{}, "model_id", m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}
