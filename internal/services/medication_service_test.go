package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0644))
	return path
}

func TestMedicationService_AddCopiesImage(t *testing.T) {
	imagesDir := filepath.Join(t.TempDir(), "images")
	svc := services.NewMedicationService(newTestDB(t), imagesDir)
	ctx := context.Background()

	source := writeTempImage(t, "metformin.jpg")
	saved, err := svc.AddMedication(ctx, &database.Medication{
		Name:      "Metformin",
		Type:      database.MedicationPill,
		Dosage:    "500mg",
		Frequency: "twice daily",
	}, source)
	require.NoError(t, err)

	require.NotNil(t, saved.ImagePath)
	assert.True(t, strings.HasPrefix(*saved.ImagePath, imagesDir), "image must live under the managed dir")
	assert.Equal(t, ".jpg", filepath.Ext(*saved.ImagePath))

	copied, err := os.ReadFile(*saved.ImagePath)
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", string(copied))

	// Source stays untouched.
	_, err = os.Stat(source)
	assert.NoError(t, err)
}

func TestMedicationService_AddWithoutImage(t *testing.T) {
	svc := services.NewMedicationService(newTestDB(t), filepath.Join(t.TempDir(), "images"))

	saved, err := svc.AddMedication(context.Background(), &database.Medication{
		Name:      "Lantus",
		Type:      database.MedicationInjection,
		Dosage:    "10 units",
		Frequency: "nightly",
	}, "")
	require.NoError(t, err)
	assert.Nil(t, saved.ImagePath)
}

func TestMedicationService_AddMissingImageSource(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMedicationService(db, filepath.Join(t.TempDir(), "images"))

	_, err := svc.AddMedication(context.Background(), &database.Medication{
		Name:      "Metformin",
		Type:      database.MedicationPill,
		Dosage:    "500mg",
		Frequency: "twice daily",
	}, filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeFilesystem, appErr.Type)

	var count int64
	require.NoError(t, db.Model(&database.Medication{}).Count(&count).Error)
	assert.Zero(t, count, "a failed image import must not leave a row behind")
}

func TestMedicationService_DeleteRemovesImage(t *testing.T) {
	imagesDir := filepath.Join(t.TempDir(), "images")
	svc := services.NewMedicationService(newTestDB(t), imagesDir)
	ctx := context.Background()

	saved, err := svc.AddMedication(ctx, &database.Medication{
		Name:      "Metformin",
		Type:      database.MedicationPill,
		Dosage:    "500mg",
		Frequency: "twice daily",
	}, writeTempImage(t, "metformin.jpg"))
	require.NoError(t, err)
	stored := *saved.ImagePath

	require.NoError(t, svc.DeleteMedication(ctx, saved.ID))

	meds, err := svc.GetMedications(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, meds)

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err), "stored image must be removed with the row")
}

func TestMedicationService_DeleteWithDanglingImagePath(t *testing.T) {
	imagesDir := filepath.Join(t.TempDir(), "images")
	svc := services.NewMedicationService(newTestDB(t), imagesDir)
	ctx := context.Background()

	saved, err := svc.AddMedication(ctx, &database.Medication{
		Name:      "Metformin",
		Type:      database.MedicationPill,
		Dosage:    "500mg",
		Frequency: "twice daily",
	}, writeTempImage(t, "metformin.jpg"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(*saved.ImagePath))

	assert.NoError(t, svc.DeleteMedication(ctx, saved.ID), "a missing file must not fail the delete")

	meds, err := svc.GetMedications(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, meds)
}

func TestMedicationService_DeleteMissingID_NoError(t *testing.T) {
	svc := services.NewMedicationService(newTestDB(t), filepath.Join(t.TempDir(), "images"))
	assert.NoError(t, svc.DeleteMedication(context.Background(), 42))
}

func TestMedicationService_Update(t *testing.T) {
	svc := services.NewMedicationService(newTestDB(t), filepath.Join(t.TempDir(), "images"))
	ctx := context.Background()

	saved, err := svc.AddMedication(ctx, &database.Medication{
		Name:      "Metformin",
		Type:      database.MedicationPill,
		Dosage:    "500mg",
		Frequency: "twice daily",
	}, "")
	require.NoError(t, err)

	err = svc.UpdateMedication(ctx, saved.ID, database.MedicationPatch{Dosage: strPtr("850mg")})
	require.NoError(t, err)

	meds, err := svc.GetMedications(ctx, 0)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "850mg", meds[0].Dosage)
	assert.Equal(t, "Metformin", meds[0].Name)
	assert.Equal(t, "twice daily", meds[0].Frequency)
}
