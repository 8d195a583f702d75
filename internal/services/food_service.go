package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{
		db: db,
	}
}

func (s *FoodService) AddEntry(ctx context.Context, entry *database.FoodEntry) (*database.FoodEntry, error) {
	if entry.Timestamp == 0 {
		entry.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}

	return entry, nil
}

func (s *FoodService) GetEntries(ctx context.Context, limit int) ([]database.FoodEntry, error) {
	var entries []database.FoodEntry
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get food entries: %w", err)
	}
	return entries, nil
}

func (s *FoodService) GetEntriesForRange(ctx context.Context, start, end int64) ([]database.FoodEntry, error) {
	var entries []database.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get food entries for range: %w", err)
	}
	return entries, nil
}

func (s *FoodService) UpdateEntry(ctx context.Context, id uint, patch database.FoodPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.FoodEntry{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update food entry: %w", err)
	}

	return nil
}

func (s *FoodService) DeleteEntry(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.FoodEntry{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}
	return nil
}
