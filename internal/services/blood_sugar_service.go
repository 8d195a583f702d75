package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

// BloodSugarService stores glucose readings. Values are persisted in mg/dL;
// unit conversion happens before the reading reaches this service.
type BloodSugarService struct {
	db *gorm.DB
}

func NewBloodSugarService(db *gorm.DB) *BloodSugarService {
	return &BloodSugarService{
		db: db,
	}
}

func (s *BloodSugarService) AddReading(ctx context.Context, reading *database.BloodSugarReading) (*database.BloodSugarReading, error) {
	if reading.Timestamp == 0 {
		reading.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("failed to create blood sugar reading: %w", err)
	}

	return reading, nil
}

func (s *BloodSugarService) GetReadings(ctx context.Context, limit int) ([]database.BloodSugarReading, error) {
	var readings []database.BloodSugarReading
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get blood sugar readings: %w", err)
	}
	return readings, nil
}

func (s *BloodSugarService) GetReadingsForRange(ctx context.Context, start, end int64) ([]database.BloodSugarReading, error) {
	var readings []database.BloodSugarReading
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get blood sugar readings for range: %w", err)
	}
	return readings, nil
}

func (s *BloodSugarService) UpdateReading(ctx context.Context, id uint, patch database.BloodSugarPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.BloodSugarReading{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update blood sugar reading: %w", err)
	}

	return nil
}

func (s *BloodSugarService) DeleteReading(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.BloodSugarReading{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete blood sugar reading: %w", err)
	}
	return nil
}
