package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/spreadsheet"
	"moto_portal/internal/testutil"
	"moto_portal/pkg/apperrors"
)

func newTransferService() SpecTransferService {
	return NewSpecTransferService(
		repositories.NewSpecRepository(),
		repositories.NewModelRepository(),
		repositories.NewImportLogRepository(),
	)
}

func workbook(t *testing.T, header []string, rows ...[]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, spreadsheet.Write(&buf, "Sheet1", &spreadsheet.Table{Header: header, Rows: rows}))
	return &buf
}

func modelSpecs(t *testing.T, db *gorm.DB, modelID uint) []models.ModelSpec {
	t.Helper()
	var specs []models.ModelSpec
	require.NoError(t, db.Where("model_id = ?", modelID).Order("sort_order ASC, id ASC").Find(&specs).Error)
	return specs
}

var specHeader = []string{ColumnSpecName, ColumnSpecValue, ColumnSpecUnit}

func TestImport_MergeByName(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	ctx := context.Background()
	model := seedModel(t, db, "Adventure")

	first := workbook(t, specHeader,
		[]string{"Power", "100", "hp"},
		[]string{"Weight", "200", "kg"},
	)
	res, err := svc.Import(ctx, db, model.ID, first, dto.ImportOptions{Filename: "specs.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 2, res.TotalProcessed)

	second := workbook(t, specHeader,
		[]string{"Power", "110", "hp"},
		[]string{"Weight", "195", ""},
	)
	res, err = svc.Import(ctx, db, model.ID, second, dto.ImportOptions{Filename: "specs.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 2, res.Updated)

	specs := modelSpecs(t, db, model.ID)
	require.Len(t, specs, 2)
	assert.Equal(t, "Power", specs[0].SpecName)
	assert.Equal(t, "110", specs[0].SpecValue)
	assert.Equal(t, "195", specs[1].SpecValue)
	assert.Nil(t, specs[1].SpecUnit)
}

func TestImport_MissingColumnWritesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	model := seedModel(t, db, "Adventure")

	file := workbook(t, []string{ColumnSpecName, ColumnSpecUnit}, []string{"Power", "hp"})
	_, err := svc.Import(context.Background(), db, model.ID, file, dto.ImportOptions{Filename: "specs.xlsx"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeImportSchema))
	assert.Contains(t, err.Error(), ColumnSpecValue)

	assert.Empty(t, modelSpecs(t, db, model.ID))

	var logs int64
	db.Model(&models.ImportLog{}).Count(&logs)
	assert.Zero(t, logs)
}

func TestImport_SkipsBlankRowsAndLogs(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	model := seedModel(t, db, "Adventure")

	file := workbook(t, specHeader,
		[]string{"Power", "100", "hp"},
		[]string{"Weight", "", "kg"},
		[]string{"  ", "5", ""},
		[]string{"Tank", "18", "l"},
	)
	res, err := svc.Import(context.Background(), db, model.ID, file, dto.ImportOptions{Filename: "specs.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)

	specs := modelSpecs(t, db, model.ID)
	require.Len(t, specs, 2)
	assert.Equal(t, 0, specs[0].SortOrder)
	assert.Equal(t, "Tank", specs[1].SpecName)
	assert.Equal(t, 3, specs[1].SortOrder)

	logs, err := svc.History(context.Background(), db, model.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 2, logs[0].Skipped)
	assert.Equal(t, "specs.xlsx", logs[0].Filename)

	var details struct {
		SkippedRows []struct {
			Row int `json:"row"`
		} `json:"skipped_rows"`
	}
	require.NoError(t, json.Unmarshal(logs[0].Details, &details))
	require.Len(t, details.SkippedRows, 2)
	assert.Equal(t, 3, details.SkippedRows[0].Row)
}

func TestImport_ReplaceExisting(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	model := seedModel(t, db, "Adventure")
	require.NoError(t, db.Create(&models.ModelSpec{ModelID: model.ID, SpecName: "Old", SpecValue: "1"}).Error)
	require.NoError(t, db.Create(&models.ModelSpec{ModelID: model.ID, SpecName: "Power", SpecValue: "90"}).Error)

	file := workbook(t, specHeader, []string{"Power", "100", "hp"})
	res, err := svc.Import(context.Background(), db, model.ID, file, dto.ImportOptions{Filename: "specs.xlsx", ReplaceExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 0, res.Updated)

	specs := modelSpecs(t, db, model.ID)
	require.Len(t, specs, 1)
	assert.Equal(t, "100", specs[0].SpecValue)
}

func TestImport_LocalizedHeaders(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	model := seedModel(t, db, "Adventure")

	file := workbook(t, ExportHeaders, []string{"Power", "100", "hp"})
	res, err := svc.Import(context.Background(), db, model.ID, file, dto.ImportOptions{Filename: "specs.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestImport_Errors(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	ctx := context.Background()
	model := seedModel(t, db, "Adventure")

	_, err := svc.Import(ctx, db, model.ID, strings.NewReader("not a workbook"), dto.ImportOptions{Filename: "specs.xlsx"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeImportFormat))

	_, err = svc.Import(ctx, db, model.ID, strings.NewReader("a,b"), dto.ImportOptions{Filename: "specs.csv"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeImportFormat))

	_, err = svc.Import(ctx, db, 999, workbook(t, specHeader, []string{"a", "b", ""}), dto.ImportOptions{Filename: "specs.xlsx"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestExport_RoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newTransferService()
	ctx := context.Background()
	model := seedModel(t, db, "Adventure")

	_, _, err := svc.Export(ctx, db, model.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	src := workbook(t, specHeader,
		[]string{"Power", "100", "hp"},
		[]string{"Seat height", "850", "mm"},
	)
	_, err = svc.Import(ctx, db, model.ID, src, dto.ImportOptions{Filename: "specs.xlsx"})
	require.NoError(t, err)

	data, filename, err := svc.Export(ctx, db, model.ID)
	require.NoError(t, err)
	assert.Equal(t, "model_1_specs.xlsx", filename)

	table, err := spreadsheet.Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ExportHeaders, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Power", "100", "hp"}, table.Rows[0])

	// выгрузка импортируется обратно без изменений
	res, err := svc.Import(ctx, db, model.ID, bytes.NewReader(data), dto.ImportOptions{Filename: filename})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Len(t, modelSpecs(t, db, model.ID), 2)
}
