package services_test

import (
	"path/filepath"
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.StorageConfig{
		DBFile: filepath.Join(t.TempDir(), "sugari.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func float64Ptr(f float64) *float64 { return &f }

func int64Ptr(i int64) *int64 { return &i }
