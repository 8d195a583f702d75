package database

// Display units for blood sugar values. Readings are always stored in mg/dL;
// the unit only controls presentation.
const (
	UnitMgdl = "mg/dL"
	UnitMmol = "mmol/L"
)

// ValidUnit reports whether s is a supported display unit.
func ValidUnit(s string) bool {
	return s == UnitMgdl || s == UnitMmol
}

// ReadingContext describes when a blood sugar reading was taken.
type ReadingContext string

const (
	ContextBeforeMeal ReadingContext = "before_meal"
	ContextAfterMeal  ReadingContext = "after_meal"
	ContextFasting    ReadingContext = "fasting"
	ContextBedtime    ReadingContext = "bedtime"
	ContextOther      ReadingContext = "other"
)

// Valid reports whether c is one of the known reading contexts.
func (c ReadingContext) Valid() bool {
	switch c {
	case ContextBeforeMeal, ContextAfterMeal, ContextFasting, ContextBedtime, ContextOther:
		return true
	}
	return false
}

// InsulinType describes the kind of insulin in a dose.
type InsulinType string

const (
	InsulinRapid InsulinType = "rapid"
	InsulinLong  InsulinType = "long"
	InsulinMixed InsulinType = "mixed"
	InsulinOther InsulinType = "other"
)

// Valid reports whether t is one of the known insulin types.
func (t InsulinType) Valid() bool {
	switch t {
	case InsulinRapid, InsulinLong, InsulinMixed, InsulinOther:
		return true
	}
	return false
}

// MedicationType describes how a medication is administered.
type MedicationType string

const (
	MedicationPill      MedicationType = "pill"
	MedicationInjection MedicationType = "injection"
)

// Valid reports whether t is one of the known medication types.
func (t MedicationType) Valid() bool {
	return t == MedicationPill || t == MedicationInjection
}

// DiabetesType is the user's self-reported diagnosis.
type DiabetesType string

const (
	DiabetesType1       DiabetesType = "type1"
	DiabetesType2       DiabetesType = "type2"
	DiabetesGestational DiabetesType = "gestational"
	DiabetesPre         DiabetesType = "prediabetes"
	DiabetesOther       DiabetesType = "other"
)

// Valid reports whether t is one of the known diabetes types.
func (t DiabetesType) Valid() bool {
	switch t {
	case DiabetesType1, DiabetesType2, DiabetesGestational, DiabetesPre, DiabetesOther:
		return true
	}
	return false
}

// UserSettings is the singleton profile row. There is exactly one logical
// settings record at any time, kept under the fixed primary key.
type UserSettings struct {
	ID            uint          `gorm:"primaryKey;autoIncrement"`
	Email         *string       `gorm:"type:text"`
	FirstName     *string       `gorm:"type:text"`
	LastName      *string       `gorm:"type:text"`
	DiabetesType  *DiabetesType `gorm:"type:text"`
	Notifications bool          `gorm:"not null;default:true"`
	DarkMode      bool          `gorm:"not null;default:false"`
	Units         string        `gorm:"type:text;not null;default:'mg/dL'"`
}

func (UserSettings) TableName() string { return "user_settings" }

// SettingsID is the primary key of the singleton settings row.
const SettingsID uint = 1

// DefaultSettings returns the settings row created on first launch. Callers
// also use it as the in-memory fallback when the store is unavailable.
func DefaultSettings() UserSettings {
	return UserSettings{
		ID:            SettingsID,
		Notifications: true,
		DarkMode:      false,
		Units:         UnitMgdl,
	}
}

// BloodSugarReading is a single glucose measurement. Value is always stored
// in mg/dL regardless of the display unit in UserSettings.
type BloodSugarReading struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Value     float64         `gorm:"not null"`
	Timestamp int64           `gorm:"not null;index"`
	Context   *ReadingContext `gorm:"type:text"`
	Notes     *string         `gorm:"type:text"`
}

func (BloodSugarReading) TableName() string { return "blood_sugar_readings" }

// FoodEntry is a logged meal or snack. Carbs are grams, when known.
type FoodEntry struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:text;not null"`
	Carbs     *float64
	Timestamp int64   `gorm:"not null;index"`
	Notes     *string `gorm:"type:text"`
}

func (FoodEntry) TableName() string { return "food_entries" }

// InsulinDose is a single administered dose.
type InsulinDose struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Units     float64     `gorm:"not null"`
	Type      InsulinType `gorm:"type:text;not null"`
	Timestamp int64       `gorm:"not null;index"`
	Notes     *string     `gorm:"type:text"`
}

func (InsulinDose) TableName() string { return "insulin_doses" }

// A1CReading is a lab or home A1C result, in percent.
type A1CReading struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Value     float64 `gorm:"not null"`
	Timestamp int64   `gorm:"not null;index"`
	Notes     *string `gorm:"type:text"`
}

func (A1CReading) TableName() string { return "a1c_readings" }

// WeightMeasurement is a body weight entry. The unit is implied by user
// settings and not stored per row.
type WeightMeasurement struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Value     float64 `gorm:"not null"`
	Timestamp int64   `gorm:"not null;index"`
	Notes     *string `gorm:"type:text"`
}

func (WeightMeasurement) TableName() string { return "weight_measurements" }

// BloodPressureReading is a systolic/diastolic pair in mmHg.
type BloodPressureReading struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Systolic  int     `gorm:"not null"`
	Diastolic int     `gorm:"not null"`
	Timestamp int64   `gorm:"not null;index"`
	Notes     *string `gorm:"type:text"`
}

func (BloodPressureReading) TableName() string { return "blood_pressure_readings" }

// Medication is a recurring medication, optionally with a photo stored in
// the app data directory. The image file's lifecycle is tied to the row:
// deleting the row removes the file best-effort.
type Medication struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:text;not null"`
	Type      MedicationType `gorm:"type:text;not null"`
	Dosage    string         `gorm:"type:text;not null"`
	Frequency string         `gorm:"type:text;not null"`
	Notes     *string        `gorm:"type:text"`
	ImagePath *string        `gorm:"type:text"`
	Timestamp int64          `gorm:"not null;index"`
}

func (Medication) TableName() string { return "medications" }

// Models lists every persisted model in schema order. Init migrates them in
// this order and Reset drops them in reverse.
func Models() []interface{} {
	return []interface{}{
		&UserSettings{},
		&BloodSugarReading{},
		&FoodEntry{},
		&InsulinDose{},
		&A1CReading{},
		&WeightMeasurement{},
		&BloodPressureReading{},
		&Medication{},
	}
}
