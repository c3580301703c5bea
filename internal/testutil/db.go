// Package testutil содержит общие помощники для тестов с базой данных.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"moto_portal/internal/models"
)

// NewDB открывает отдельную in-memory SQLite базу на тест и мигрирует схему.
// Одно соединение: in-memory база живёт, пока открыто хотя бы одно.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// Ptr возвращает указатель на значение
func Ptr[T any](v T) *T {
	return &v
}
