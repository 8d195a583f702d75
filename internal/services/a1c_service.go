package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

type A1CService struct {
	db *gorm.DB
}

func NewA1CService(db *gorm.DB) *A1CService {
	return &A1CService{
		db: db,
	}
}

func (s *A1CService) AddReading(ctx context.Context, reading *database.A1CReading) (*database.A1CReading, error) {
	if reading.Timestamp == 0 {
		reading.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("failed to create A1C reading: %w", err)
	}

	return reading, nil
}

func (s *A1CService) GetReadings(ctx context.Context, limit int) ([]database.A1CReading, error) {
	var readings []database.A1CReading
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get A1C readings: %w", err)
	}
	return readings, nil
}

func (s *A1CService) GetReadingsForRange(ctx context.Context, start, end int64) ([]database.A1CReading, error) {
	var readings []database.A1CReading
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get A1C readings for range: %w", err)
	}
	return readings, nil
}

func (s *A1CService) UpdateReading(ctx context.Context, id uint, patch database.A1CPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.A1CReading{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update A1C reading: %w", err)
	}

	return nil
}

func (s *A1CService) DeleteReading(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.A1CReading{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete A1C reading: %w", err)
	}
	return nil
}
