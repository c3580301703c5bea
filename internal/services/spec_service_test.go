package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/testutil"
	"moto_portal/pkg/apperrors"
)

func newSpecService() SpecService {
	return NewSpecService(repositories.NewSpecRepository(), repositories.NewModelRepository())
}

func TestSpecService_BulkUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSpecService()
	ctx := context.Background()
	model := seedModel(t, db, "Naked")

	_, err := svc.Create(ctx, db, model.ID, &dto.CreateSpecRequest{SpecName: "Power", SpecValue: "90"})
	require.NoError(t, err)

	res, err := svc.BulkUpsert(ctx, db, model.ID, []dto.SpecInput{
		{SpecName: "Power", SpecValue: "95", SpecUnit: testutil.Ptr("hp")},
		{SpecName: "Torque", SpecValue: "70", SpecUnit: testutil.Ptr(" ")},
		{SpecName: "", SpecValue: "ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 2, res.TotalProcessed)

	specs, err := svc.List(ctx, db, model.ID, &dto.SpecQuery{})
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "95", specs[0].SpecValue)
	assert.Equal(t, "hp", *specs[0].SpecUnit)
	assert.Nil(t, specs[1].SpecUnit)
	assert.Greater(t, specs[1].SortOrder, specs[0].SortOrder)
}

func TestSpecService_UnknownModel(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSpecService()

	_, err := svc.Create(context.Background(), db, 42, &dto.CreateSpecRequest{SpecName: "a", SpecValue: "b"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
