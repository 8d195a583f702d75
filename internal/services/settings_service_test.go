package services_test

import (
	"context"
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_DefaultsOnFreshStore(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSettingsService(db)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)

	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, database.UnitMgdl, settings.Units)
	assert.Nil(t, settings.FirstName)

	var count int64
	require.NoError(t, db.Model(&database.UserSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsService_LazyCreateOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Delete(&database.UserSettings{}, database.SettingsID).Error)

	svc := services.NewSettingsService(db)
	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.True(t, settings.Notifications)
	assert.Equal(t, database.UnitMgdl, settings.Units)

	var count int64
	require.NoError(t, db.Model(&database.UserSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "lazy create must leave exactly one row")
}

func TestSettingsService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSettingsService(db)
	ctx := context.Background()

	units := database.UnitMmol
	darkMode := true
	updated, err := svc.UpdateSettings(ctx, database.SettingsPatch{
		FirstName: strPtr("Ada"),
		Units:     &units,
		DarkMode:  &darkMode,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.FirstName)
	assert.Equal(t, "Ada", *updated.FirstName)
	assert.Equal(t, database.UnitMmol, updated.Units)
	assert.True(t, updated.DarkMode)
	assert.True(t, updated.Notifications, "untouched fields keep their value")

	// A fresh service must see the same row from disk.
	fresh, err := services.NewSettingsService(db).GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, database.UnitMmol, fresh.Units)
	require.NotNil(t, fresh.FirstName)
	assert.Equal(t, "Ada", *fresh.FirstName)
}

func TestSettingsService_EmptyPatchKeepsRow(t *testing.T) {
	svc := services.NewSettingsService(newTestDB(t))
	ctx := context.Background()

	settings, err := svc.UpdateSettings(ctx, database.SettingsPatch{})
	require.NoError(t, err)
	assert.True(t, settings.Notifications)
	assert.Equal(t, database.UnitMgdl, settings.Units)
}

func TestSettingsService_InvalidateDropsStaleCache(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSettingsService(db)
	ctx := context.Background()

	_, err := svc.GetSettings(ctx)
	require.NoError(t, err)

	// Another writer changes the row behind the cached copy.
	units := database.UnitMmol
	_, err = services.NewSettingsService(db).UpdateSettings(ctx, database.SettingsPatch{Units: &units})
	require.NoError(t, err)

	stale, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, database.UnitMgdl, stale.Units)

	svc.Invalidate()
	reloaded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, database.UnitMmol, reloaded.Units)
}

func TestSettingsService_ReturnedRowIsACopy(t *testing.T) {
	svc := services.NewSettingsService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	first.Units = "garbage"
	first.DarkMode = true

	second, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, database.UnitMgdl, second.Units, "callers must not be able to poison the cache")
	assert.False(t, second.DarkMode)
}
