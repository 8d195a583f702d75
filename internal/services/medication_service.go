package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicationService stores medications and owns their photo files. Photos
// are copied into imagesDir under a generated name so the stored path never
// depends on the caller keeping the source file around.
type MedicationService struct {
	db        *gorm.DB
	imagesDir string
}

func NewMedicationService(db *gorm.DB, imagesDir string) *MedicationService {
	return &MedicationService{
		db:        db,
		imagesDir: imagesDir,
	}
}

func (s *MedicationService) AddMedication(ctx context.Context, med *database.Medication, imageSource string) (*database.Medication, error) {
	if med.Timestamp == 0 {
		med.Timestamp = utils.NowMillis()
	}

	if imageSource != "" {
		stored, err := s.importImage(imageSource)
		if err != nil {
			return nil, err
		}
		med.ImagePath = &stored
	}

	if err := s.db.WithContext(ctx).Create(med).Error; err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}

	return med, nil
}

func (s *MedicationService) GetMedications(ctx context.Context, limit int) ([]database.Medication, error) {
	var meds []database.Medication
	q := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&meds).Error; err != nil {
		return nil, fmt.Errorf("failed to get medications: %w", err)
	}
	return meds, nil
}

func (s *MedicationService) GetMedicationsForRange(ctx context.Context, start, end int64) ([]database.Medication, error) {
	var meds []database.Medication
	if err := s.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&meds).Error; err != nil {
		return nil, fmt.Errorf("failed to get medications for range: %w", err)
	}
	return meds, nil
}

func (s *MedicationService) UpdateMedication(ctx context.Context, id uint, patch database.MedicationPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&database.Medication{}).
		Where("id = ?", id).
		Updates(cols).Error; err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	return nil
}

// DeleteMedication removes the row and then its photo file. A missing row is
// not an error, and a failed file removal (already gone, permissions) is
// logged and swallowed so the record deletion stands.
func (s *MedicationService) DeleteMedication(ctx context.Context, id uint) error {
	var med database.Medication
	if err := s.db.WithContext(ctx).First(&med, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load medication: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&database.Medication{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	if med.ImagePath != nil && *med.ImagePath != "" {
		if err := os.Remove(*med.ImagePath); err != nil {
			logger.Warningf("failed to remove medication image %s: %v", *med.ImagePath, err)
		}
	}

	return nil
}

// importImage copies the source file into imagesDir under a generated name
// and returns the stored path.
func (s *MedicationService) importImage(source string) (string, error) {
	if err := os.MkdirAll(s.imagesDir, 0755); err != nil {
		return "", apperrors.NewFilesystemError(err, s.imagesDir)
	}

	src, err := os.Open(source)
	if err != nil {
		return "", apperrors.NewFilesystemError(err, source)
	}
	defer src.Close()

	dest := filepath.Join(s.imagesDir, uuid.NewString()+filepath.Ext(source))
	dst, err := os.Create(dest)
	if err != nil {
		return "", apperrors.NewFilesystemError(err, dest)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dest)
		return "", apperrors.NewFilesystemError(err, dest)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dest)
		return "", apperrors.NewFilesystemError(err, dest)
	}

	return dest, nil
}
