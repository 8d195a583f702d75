package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

type BloodPressureService struct {
	db *gorm.DB
}

func NewBloodPressureService(db *gorm.DB) *BloodPressureService {
	return &BloodPressureService{
		db: db,
	}
}

func (s *BloodPressureService) AddReading(ctx context.Context, reading *database.BloodPressureReading) (*database.BloodPressureReading, error) {
	if reading.Timestamp == 0 {
		reading.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("failed to create blood pressure reading: %w", err)
	}

	return reading, nil
}

func (s *BloodPressureService) GetReadings(ctx context.Context, limit int) ([]database.BloodPressureReading, error) {
	var readings []database.BloodPressureReading
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get blood pressure readings: %w", err)
	}
	return readings, nil
}

func (s *BloodPressureService) GetReadingsForRange(ctx context.Context, start, end int64) ([]database.BloodPressureReading, error) {
	var readings []database.BloodPressureReading
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get blood pressure readings for range: %w", err)
	}
	return readings, nil
}

func (s *BloodPressureService) UpdateReading(ctx context.Context, id uint, patch database.BloodPressurePatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.BloodPressureReading{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update blood pressure reading: %w", err)
	}

	return nil
}

func (s *BloodPressureService) DeleteReading(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.BloodPressureReading{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete blood pressure reading: %w", err)
	}
	return nil
}
