package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.StorageConfig{
		DBFile: filepath.Join(t.TempDir(), "data", "sugari.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestOpen_CreatesFileAndSeedsSettings(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "data", "sugari.db")
	db, err := database.Open(config.StorageConfig{DBFile: dbFile})
	require.NoError(t, err)
	defer database.Close(db)

	_, err = os.Stat(dbFile)
	require.NoError(t, err, "database file should exist on disk")

	var settings database.UserSettings
	require.NoError(t, db.First(&settings, database.SettingsID).Error)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, database.UnitMgdl, settings.Units)
}

func TestInit_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Init(db))
	require.NoError(t, database.Init(db))

	var count int64
	require.NoError(t, db.Model(&database.UserSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "repeated init must not duplicate the settings row")
}

func TestInit_KeepsExistingSettings(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Model(&database.UserSettings{}).
		Where("id = ?", database.SettingsID).
		Update("units", database.UnitMmol).Error)

	require.NoError(t, database.Init(db))

	var settings database.UserSettings
	require.NoError(t, db.First(&settings, database.SettingsID).Error)
	assert.Equal(t, database.UnitMmol, settings.Units, "init must not overwrite stored settings")
}

func TestReset_WipesDataAndRestoresDefaults(t *testing.T) {
	db := openTestDB(t)

	reading := database.BloodSugarReading{Value: 120, Timestamp: 1700000000000}
	require.NoError(t, db.Create(&reading).Error)
	entry := database.FoodEntry{Name: "toast", Timestamp: 1700000000000}
	require.NoError(t, db.Create(&entry).Error)
	require.NoError(t, db.Model(&database.UserSettings{}).
		Where("id = ?", database.SettingsID).
		Update("dark_mode", true).Error)

	require.NoError(t, database.Reset(db))

	var readings int64
	require.NoError(t, db.Model(&database.BloodSugarReading{}).Count(&readings).Error)
	assert.Zero(t, readings)

	var entries int64
	require.NoError(t, db.Model(&database.FoodEntry{}).Count(&entries).Error)
	assert.Zero(t, entries)

	var settingsCount int64
	require.NoError(t, db.Model(&database.UserSettings{}).Count(&settingsCount).Error)
	assert.Equal(t, int64(1), settingsCount)

	var settings database.UserSettings
	require.NoError(t, db.First(&settings, database.SettingsID).Error)
	assert.False(t, settings.DarkMode, "reset must restore default settings")
}

func TestReset_RestartsIDs(t *testing.T) {
	db := openTestDB(t)

	first := database.BloodSugarReading{Value: 100, Timestamp: 1}
	require.NoError(t, db.Create(&first).Error)
	second := database.BloodSugarReading{Value: 110, Timestamp: 2}
	require.NoError(t, db.Create(&second).Error)
	require.Greater(t, second.ID, first.ID)

	require.NoError(t, database.Reset(db))

	fresh := database.BloodSugarReading{Value: 120, Timestamp: 3}
	require.NoError(t, db.Create(&fresh).Error)
	assert.Equal(t, uint(1), fresh.ID, "reset rebuilds tables so ids start over")
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	db := openTestDB(t)

	first := database.BloodSugarReading{Value: 100, Timestamp: 1}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Delete(&database.BloodSugarReading{}, first.ID).Error)

	second := database.BloodSugarReading{Value: 110, Timestamp: 2}
	require.NoError(t, db.Create(&second).Error)
	assert.Greater(t, second.ID, first.ID, "deleted ids must not be handed out again")
}
