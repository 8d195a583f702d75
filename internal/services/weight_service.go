package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{
		db: db,
	}
}

func (s *WeightService) AddMeasurement(ctx context.Context, m *database.WeightMeasurement) (*database.WeightMeasurement, error) {
	if m.Timestamp == 0 {
		m.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to create weight measurement: %w", err)
	}

	return m, nil
}

func (s *WeightService) GetMeasurements(ctx context.Context, limit int) ([]database.WeightMeasurement, error) {
	var measurements []database.WeightMeasurement
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&measurements).Error; err != nil {
		return nil, fmt.Errorf("failed to get weight measurements: %w", err)
	}
	return measurements, nil
}

func (s *WeightService) GetMeasurementsForRange(ctx context.Context, start, end int64) ([]database.WeightMeasurement, error) {
	var measurements []database.WeightMeasurement
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&measurements).Error; err != nil {
		return nil, fmt.Errorf("failed to get weight measurements for range: %w", err)
	}
	return measurements, nil
}

func (s *WeightService) UpdateMeasurement(ctx context.Context, id uint, patch database.WeightPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.WeightMeasurement{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update weight measurement: %w", err)
	}

	return nil
}

func (s *WeightService) DeleteMeasurement(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.WeightMeasurement{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete weight measurement: %w", err)
	}
	return nil
}
