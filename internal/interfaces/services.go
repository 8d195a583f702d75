package interfaces

import (
	"context"

	"github.com/DarkSyed/sugari-sub000/internal/database"
)

// SettingsServiceInterface defines the contract for user settings operations
type SettingsServiceInterface interface {
	GetSettings(ctx context.Context) (*database.UserSettings, error)
	UpdateSettings(ctx context.Context, patch database.SettingsPatch) (*database.UserSettings, error)
	Invalidate()
}

// BloodSugarServiceInterface defines the contract for blood sugar operations
type BloodSugarServiceInterface interface {
	AddReading(ctx context.Context, reading *database.BloodSugarReading) (*database.BloodSugarReading, error)
	GetReadings(ctx context.Context, limit int) ([]database.BloodSugarReading, error)
	GetReadingsForRange(ctx context.Context, start, end int64) ([]database.BloodSugarReading, error)
	UpdateReading(ctx context.Context, id uint, patch database.BloodSugarPatch) error
	DeleteReading(ctx context.Context, id uint) error
}

// FoodServiceInterface defines the contract for food entry operations
type FoodServiceInterface interface {
	AddEntry(ctx context.Context, entry *database.FoodEntry) (*database.FoodEntry, error)
	GetEntries(ctx context.Context, limit int) ([]database.FoodEntry, error)
	GetEntriesForRange(ctx context.Context, start, end int64) ([]database.FoodEntry, error)
	UpdateEntry(ctx context.Context, id uint, patch database.FoodPatch) error
	DeleteEntry(ctx context.Context, id uint) error
}

// InsulinServiceInterface defines the contract for insulin dose operations
type InsulinServiceInterface interface {
	AddDose(ctx context.Context, dose *database.InsulinDose) (*database.InsulinDose, error)
	GetDoses(ctx context.Context, limit int) ([]database.InsulinDose, error)
	GetDosesForRange(ctx context.Context, start, end int64) ([]database.InsulinDose, error)
	UpdateDose(ctx context.Context, id uint, patch database.InsulinPatch) error
	DeleteDose(ctx context.Context, id uint) error
}

// A1CServiceInterface defines the contract for A1C reading operations
type A1CServiceInterface interface {
	AddReading(ctx context.Context, reading *database.A1CReading) (*database.A1CReading, error)
	GetReadings(ctx context.Context, limit int) ([]database.A1CReading, error)
	GetReadingsForRange(ctx context.Context, start, end int64) ([]database.A1CReading, error)
	UpdateReading(ctx context.Context, id uint, patch database.A1CPatch) error
	DeleteReading(ctx context.Context, id uint) error
}

// WeightServiceInterface defines the contract for weight measurement operations
type WeightServiceInterface interface {
	AddMeasurement(ctx context.Context, m *database.WeightMeasurement) (*database.WeightMeasurement, error)
	GetMeasurements(ctx context.Context, limit int) ([]database.WeightMeasurement, error)
	GetMeasurementsForRange(ctx context.Context, start, end int64) ([]database.WeightMeasurement, error)
	UpdateMeasurement(ctx context.Context, id uint, patch database.WeightPatch) error
	DeleteMeasurement(ctx context.Context, id uint) error
}

// BloodPressureServiceInterface defines the contract for blood pressure operations
type BloodPressureServiceInterface interface {
	AddReading(ctx context.Context, reading *database.BloodPressureReading) (*database.BloodPressureReading, error)
	GetReadings(ctx context.Context, limit int) ([]database.BloodPressureReading, error)
	GetReadingsForRange(ctx context.Context, start, end int64) ([]database.BloodPressureReading, error)
	UpdateReading(ctx context.Context, id uint, patch database.BloodPressurePatch) error
	DeleteReading(ctx context.Context, id uint) error
}

// MedicationServiceInterface defines the contract for medication operations.
// imageSource on Add names a file to copy into managed image storage; it may
// be empty for medications without a photo.
type MedicationServiceInterface interface {
	AddMedication(ctx context.Context, med *database.Medication, imageSource string) (*database.Medication, error)
	GetMedications(ctx context.Context, limit int) ([]database.Medication, error)
	GetMedicationsForRange(ctx context.Context, start, end int64) ([]database.Medication, error)
	UpdateMedication(ctx context.Context, id uint, patch database.MedicationPatch) error
	DeleteMedication(ctx context.Context, id uint) error
}
