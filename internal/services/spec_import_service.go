package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"moto_portal/internal/logger"
	"moto_portal/internal/metrics"
	"moto_portal/internal/models"
	"moto_portal/internal/repositories"
	"moto_portal/internal/services/dto"
	"moto_portal/internal/spreadsheet"
	"moto_portal/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Колонки таблицы характеристик
const (
	ColumnSpecName  = "spec_name"
	ColumnSpecValue = "spec_value"
	ColumnSpecUnit  = "spec_unit"
)

// ExportHeaders - заголовки выгрузки; при импорте принимаются как синонимы
var ExportHeaders = []string{"Название характеристики", "Значение", "Единица измерения"}

// SpecTransferService - импорт и экспорт характеристик через таблицы xlsx
type SpecTransferService interface {
	// Import читает таблицу и сверяет строки с характеристиками модели по имени.
	// Структурные ошибки (файл, колонки) прерывают импорт без записи в БД;
	// плохие строки пропускаются.
	Import(ctx context.Context, db *gorm.DB, modelID uint, r io.Reader, opts dto.ImportOptions) (*dto.ImportResult, error)
	// Export возвращает книгу xlsx и имя файла
	Export(ctx context.Context, db *gorm.DB, modelID uint) ([]byte, string, error)
	History(ctx context.Context, db *gorm.DB, modelID uint, limit int) ([]models.ImportLog, error)
}

type specTransferService struct {
	specRepo      repositories.SpecRepository
	modelRepo     repositories.ModelRepository
	importLogRepo repositories.ImportLogRepository
}

func NewSpecTransferService(
	specRepo repositories.SpecRepository,
	modelRepo repositories.ModelRepository,
	importLogRepo repositories.ImportLogRepository,
) SpecTransferService {
	return &specTransferService{
		specRepo:      specRepo,
		modelRepo:     modelRepo,
		importLogRepo: importLogRepo,
	}
}

// skippedRow - запись о пропущенной строке для журнала импорта
type skippedRow struct {
	Row    int    `json:"row"` // номер строки в файле (с заголовком = 1)
	Reason string `json:"reason"`
}

type specColumns struct {
	name, value, unit int
}

func (s *specTransferService) Import(ctx context.Context, db *gorm.DB, modelID uint, r io.Reader, opts dto.ImportOptions) (*dto.ImportResult, error) {
	if opts.Filename != "" && strings.ToLower(path.Ext(opts.Filename)) != ".xlsx" {
		return nil, apperrors.ImportFormat(fmt.Errorf("unsupported file type %q, expected .xlsx", path.Ext(opts.Filename)))
	}

	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}

	table, err := spreadsheet.Read(r)
	if err != nil {
		logger.CtxWarn(ctx, "Spreadsheet could not be parsed", "model_id", modelID, "error", err)
		return nil, apperrors.ImportFormat(err)
	}

	cols, err := resolveSpecColumns(table)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{}
	var skipped []skippedRow

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if opts.ReplaceExisting {
		removed, err := s.specRepo.DeleteByModel(tx, modelID)
		if err != nil {
			return nil, mapRepoError(err)
		}
		logger.CtxInfo(ctx, "Existing specs removed before import", "model_id", modelID, "count", removed)
	}

	for i, row := range table.Rows {
		name := strings.TrimSpace(spreadsheet.Cell(row, cols.name))
		value := strings.TrimSpace(spreadsheet.Cell(row, cols.value))
		if name == "" || value == "" {
			result.Skipped++
			skipped = append(skipped, skippedRow{Row: i + 2, Reason: "blank spec_name or spec_value"})
			continue
		}

		var unit *string
		if u := strings.TrimSpace(spreadsheet.Cell(row, cols.unit)); u != "" {
			unit = &u
		}

		if !opts.ReplaceExisting {
			existing, err := s.specRepo.FindByName(tx, modelID, name)
			if err != nil {
				return nil, mapRepoError(err)
			}
			if existing != nil {
				if _, err := s.specRepo.Update(tx, existing.ID, map[string]interface{}{
					"spec_value": value,
					"spec_unit":  unit,
				}); err != nil {
					return nil, mapRepoError(err)
				}
				result.Updated++
				continue
			}
		}

		// sort_order = индекс строки данных в файле (с 0)
		if err := s.specRepo.Insert(tx, &models.ModelSpec{
			ModelID:   modelID,
			SpecName:  name,
			SpecValue: value,
			SpecUnit:  unit,
			SortOrder: i,
		}); err != nil {
			return nil, mapRepoError(err)
		}
		result.Imported++
	}
	result.TotalProcessed = result.Imported + result.Updated

	details, _ := json.Marshal(map[string]interface{}{"skipped_rows": skipped})
	if err := s.importLogRepo.Create(tx, &models.ImportLog{
		ModelID:         modelID,
		Filename:        opts.Filename,
		ReplaceExisting: opts.ReplaceExisting,
		Imported:        result.Imported,
		Updated:         result.Updated,
		Skipped:         result.Skipped,
		Details:         datatypes.JSON(details),
	}); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	metrics.SpecImportRows.WithLabelValues(metrics.RowImported).Add(float64(result.Imported))
	metrics.SpecImportRows.WithLabelValues(metrics.RowUpdated).Add(float64(result.Updated))
	metrics.SpecImportRows.WithLabelValues(metrics.RowSkipped).Add(float64(result.Skipped))

	logger.CtxInfo(ctx, "Specs imported",
		"model_id", modelID,
		"imported", result.Imported,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"replace", opts.ReplaceExisting,
	)
	return result, nil
}

// resolveSpecColumns ищет обязательные колонки; ImportSchema со списком отсутствующих
func resolveSpecColumns(table *spreadsheet.Table) (specColumns, error) {
	cols := specColumns{
		name:  table.Index(ColumnSpecName, ExportHeaders[0]),
		value: table.Index(ColumnSpecValue, ExportHeaders[1]),
		unit:  table.Index(ColumnSpecUnit, ExportHeaders[2]),
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, ColumnSpecName)
	}
	if cols.value < 0 {
		missing = append(missing, ColumnSpecValue)
	}
	if len(missing) > 0 {
		return cols, apperrors.ImportSchema(missing)
	}
	return cols, nil
}

func (s *specTransferService) Export(ctx context.Context, db *gorm.DB, modelID uint) ([]byte, string, error) {
	model, err := s.modelRepo.FindByID(db, modelID)
	if err != nil {
		return nil, "", mapRepoError(err)
	}

	specs, err := s.specRepo.FindByModel(db, modelID, repositories.SpecFilter{})
	if err != nil {
		return nil, "", mapRepoError(err)
	}
	if len(specs) == 0 {
		return nil, "", apperrors.NotFound("spec", "Model has no specs")
	}

	table := &spreadsheet.Table{Header: ExportHeaders, Rows: make([][]string, 0, len(specs))}
	for _, spec := range specs {
		unit := ""
		if spec.SpecUnit != nil {
			unit = *spec.SpecUnit
		}
		table.Rows = append(table.Rows, []string{spec.SpecName, spec.SpecValue, unit})
	}

	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, "Specs_"+truncateRunes(model.Name, 20), table); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return buf.Bytes(), fmt.Sprintf("model_%d_specs.xlsx", model.ID), nil
}

func (s *specTransferService) History(ctx context.Context, db *gorm.DB, modelID uint, limit int) ([]models.ImportLog, error) {
	if err := ensureModel(db, s.modelRepo, modelID); err != nil {
		return nil, err
	}
	logs, err := s.importLogRepo.FindByModel(db, modelID, limit)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return logs, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
