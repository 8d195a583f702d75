package services

import (
	"context"
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

type InsulinService struct {
	db *gorm.DB
}

func NewInsulinService(db *gorm.DB) *InsulinService {
	return &InsulinService{
		db: db,
	}
}

func (s *InsulinService) AddDose(ctx context.Context, dose *database.InsulinDose) (*database.InsulinDose, error) {
	if dose.Timestamp == 0 {
		dose.Timestamp = utils.NowMillis()
	}

	if err := s.db.WithContext(ctx).Create(dose).Error; err != nil {
		return nil, fmt.Errorf("failed to create insulin dose: %w", err)
	}

	return dose, nil
}

func (s *InsulinService) GetDoses(ctx context.Context, limit int) ([]database.InsulinDose, error) {
	var doses []database.InsulinDose
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&doses).Error; err != nil {
		return nil, fmt.Errorf("failed to get insulin doses: %w", err)
	}
	return doses, nil
}

func (s *InsulinService) GetDosesForRange(ctx context.Context, start, end int64) ([]database.InsulinDose, error) {
	var doses []database.InsulinDose
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&doses).Error; err != nil {
		return nil, fmt.Errorf("failed to get insulin doses for range: %w", err)
	}
	return doses, nil
}

func (s *InsulinService) UpdateDose(ctx context.Context, id uint, patch database.InsulinPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.InsulinDose{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update insulin dose: %w", err)
	}

	return nil
}

func (s *InsulinService) DeleteDose(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&database.InsulinDose{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete insulin dose: %w", err)
	}
	return nil
}
