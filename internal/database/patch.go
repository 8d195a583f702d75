package database

// Patch types carry partial updates. A nil field leaves the stored column
// unchanged; each Columns method maps the supplied fields onto a fixed set
// of column assignments, so no column name is ever built from input.
// An all-nil patch produces an empty map and callers skip the engine call.

// SettingsPatch is a partial update of the settings singleton.
type SettingsPatch struct {
	Email         *string
	FirstName     *string
	LastName      *string
	DiabetesType  *DiabetesType
	Notifications *bool
	DarkMode      *bool
	Units         *string
}

// Columns returns the column assignments for the supplied fields.
func (p SettingsPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.DiabetesType != nil {
		cols["diabetes_type"] = string(*p.DiabetesType)
	}
	if p.Notifications != nil {
		cols["notifications"] = *p.Notifications
	}
	if p.DarkMode != nil {
		cols["dark_mode"] = *p.DarkMode
	}
	if p.Units != nil {
		cols["units"] = *p.Units
	}
	return cols
}

// BloodSugarPatch is a partial update of a blood sugar reading.
type BloodSugarPatch struct {
	Value     *float64
	Timestamp *int64
	Context   *ReadingContext
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p BloodSugarPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Value != nil {
		cols["value"] = *p.Value
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Context != nil {
		cols["context"] = string(*p.Context)
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// FoodPatch is a partial update of a food entry.
type FoodPatch struct {
	Name      *string
	Carbs     *float64
	Timestamp *int64
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p FoodPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Carbs != nil {
		cols["carbs"] = *p.Carbs
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// InsulinPatch is a partial update of an insulin dose.
type InsulinPatch struct {
	Units     *float64
	Type      *InsulinType
	Timestamp *int64
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p InsulinPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Units != nil {
		cols["units"] = *p.Units
	}
	if p.Type != nil {
		cols["type"] = string(*p.Type)
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// A1CPatch is a partial update of an A1C reading.
type A1CPatch struct {
	Value     *float64
	Timestamp *int64
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p A1CPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Value != nil {
		cols["value"] = *p.Value
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// WeightPatch is a partial update of a weight measurement.
type WeightPatch struct {
	Value     *float64
	Timestamp *int64
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p WeightPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Value != nil {
		cols["value"] = *p.Value
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// BloodPressurePatch is a partial update of a blood pressure reading.
type BloodPressurePatch struct {
	Systolic  *int
	Diastolic *int
	Timestamp *int64
	Notes     *string
}

// Columns returns the column assignments for the supplied fields.
func (p BloodPressurePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Systolic != nil {
		cols["systolic"] = *p.Systolic
	}
	if p.Diastolic != nil {
		cols["diastolic"] = *p.Diastolic
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

// MedicationPatch is a partial update of a medication.
type MedicationPatch struct {
	Name      *string
	Type      *MedicationType
	Dosage    *string
	Frequency *string
	Notes     *string
	Timestamp *int64
}

// Columns returns the column assignments for the supplied fields.
func (p MedicationPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Type != nil {
		cols["type"] = string(*p.Type)
	}
	if p.Dosage != nil {
		cols["dosage"] = *p.Dosage
	}
	if p.Frequency != nil {
		cols["frequency"] = *p.Frequency
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.Timestamp != nil {
		cols["timestamp"] = *p.Timestamp
	}
	return cols
}
