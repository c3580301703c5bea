package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/models"
	"moto_portal/internal/testutil"
)

func TestImportLogWorker_Prune(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	model := &models.Model{Name: "Scrambler"}
	require.NoError(t, db.Create(model).Error)

	old := &models.ImportLog{ModelID: model.ID, Filename: "old.xlsx"}
	old.CreatedAt = now.Add(-40 * 24 * time.Hour)
	fresh := &models.ImportLog{ModelID: model.ID, Filename: "fresh.xlsx"}
	fresh.CreatedAt = now.Add(-2 * 24 * time.Hour)
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(fresh).Error)

	w := NewImportLogWorker(db, 30*24*time.Hour, time.Hour)
	w.now = func() time.Time { return now }

	assert.Equal(t, int64(1), w.Prune(context.Background()))

	var left []models.ImportLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh.xlsx", left[0].Filename)

	assert.Equal(t, int64(0), w.Prune(context.Background()))
}

func TestImportLogWorker_DisabledDoesNotStart(t *testing.T) {
	db := testutil.NewDB(t)
	w := NewImportLogWorker(db, 0, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
}
