package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"gorm.io/gorm"
)

// SettingsService manages the single user settings row. Reads go through an
// in-memory copy so repeated lookups skip the database; the copy is refreshed
// after every write.
type SettingsService struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached *database.UserSettings
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings returns the settings row, lazily creating it with defaults when
// the table is empty. The upsert keyed on the fixed row id keeps concurrent
// first reads from producing a second row.
func (s *SettingsService) GetSettings(ctx context.Context) (*database.UserSettings, error) {
	s.mu.RLock()
	if s.cached != nil {
		out := *s.cached
		s.mu.RUnlock()
		return &out, nil
	}
	s.mu.RUnlock()

	settings := database.DefaultSettings()
	result := s.db.WithContext(ctx).FirstOrCreate(&settings, database.UserSettings{ID: database.SettingsID})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", result.Error)
	}

	s.mu.Lock()
	s.cached = &settings
	s.mu.Unlock()

	out := settings
	return &out, nil
}

// UpdateSettings applies the non-nil patch fields and returns the stored row.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch database.SettingsPatch) (*database.UserSettings, error) {
	if _, err := s.GetSettings(ctx); err != nil {
		return nil, err
	}

	cols := patch.Columns()
	if len(cols) > 0 {
		if err := s.db.WithContext(ctx).
			Model(&database.UserSettings{}).
			Where("id = ?", database.SettingsID).
			Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("failed to update user settings: %w", err)
		}
	}

	var settings database.UserSettings
	if err := s.db.WithContext(ctx).First(&settings, database.SettingsID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user settings: %w", err)
	}

	s.mu.Lock()
	s.cached = &settings
	s.mu.Unlock()

	out := settings
	return &out, nil
}

// Invalidate drops the cached row. Reset uses it after wiping the schema.
func (s *SettingsService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
