package workers

import (
	"context"
	"time"

	"moto_portal/internal/logger"
	"moto_portal/internal/repositories"

	"gorm.io/gorm"
)

// ImportLogWorker периодически удаляет старые записи журнала импорта
type ImportLogWorker struct {
	db        *gorm.DB
	repo      repositories.ImportLogRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewImportLogWorker(db *gorm.DB, retention, interval time.Duration) *ImportLogWorker {
	return &ImportLogWorker{
		db:        db,
		repo:      repositories.NewImportLogRepository(),
		retention: retention,
		interval:  interval,
		now:       time.Now,
	}
}

// Start запускает очистку в фоне до отмены ctx
func (w *ImportLogWorker) Start(ctx context.Context) {
	if w.retention <= 0 || w.interval <= 0 {
		logger.Info("Import log pruning disabled")
		return
	}
	go w.run(ctx)
}

func (w *ImportLogWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Import log worker stopped")
			return
		case <-ticker.C:
			w.Prune(ctx)
		}
	}
}

// Prune удаляет записи старше срока хранения и возвращает их число
func (w *ImportLogWorker) Prune(ctx context.Context) int64 {
	before := w.now().Add(-w.retention)
	removed, err := w.repo.DeleteOlderThan(w.db.WithContext(ctx), before)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to prune import logs", err)
		return 0
	}
	if removed > 0 {
		logger.CtxInfo(ctx, "Pruned import logs", "count", removed, "before", before)
	}
	return removed
}
