package database_test

import (
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestSettingsPatch_ColumnsMapsEveryField(t *testing.T) {
	firstName := "Ada"
	lastName := "Lovelace"
	email := "ada@example.com"
	diabetesType := database.DiabetesType2
	notifications := false
	darkMode := true
	units := database.UnitMmol

	patch := database.SettingsPatch{
		FirstName:     &firstName,
		LastName:      &lastName,
		Email:         &email,
		DiabetesType:  &diabetesType,
		Notifications: &notifications,
		DarkMode:      &darkMode,
		Units:         &units,
	}

	cols := patch.Columns()
	assert.Equal(t, map[string]interface{}{
		"first_name":    "Ada",
		"last_name":     "Lovelace",
		"email":         "ada@example.com",
		"diabetes_type": "type2",
		"notifications": false,
		"dark_mode":     true,
		"units":         database.UnitMmol,
	}, cols)
}

func TestPatch_EmptyProducesNoColumns(t *testing.T) {
	assert.Empty(t, database.SettingsPatch{}.Columns())
	assert.Empty(t, database.BloodSugarPatch{}.Columns())
	assert.Empty(t, database.FoodPatch{}.Columns())
	assert.Empty(t, database.InsulinPatch{}.Columns())
	assert.Empty(t, database.A1CPatch{}.Columns())
	assert.Empty(t, database.WeightPatch{}.Columns())
	assert.Empty(t, database.BloodPressurePatch{}.Columns())
	assert.Empty(t, database.MedicationPatch{}.Columns())
}

func TestBloodSugarPatch_OnlySuppliedFields(t *testing.T) {
	value := 110.0
	patch := database.BloodSugarPatch{Value: &value}

	cols := patch.Columns()
	assert.Equal(t, map[string]interface{}{"value": 110.0}, cols)
}

func TestMedicationPatch_Columns(t *testing.T) {
	name := "Metformin"
	medType := database.MedicationPill
	dosage := "500mg"

	cols := database.MedicationPatch{Name: &name, Type: &medType, Dosage: &dosage}.Columns()
	assert.Equal(t, map[string]interface{}{
		"name":   "Metformin",
		"type":   "pill",
		"dosage": "500mg",
	}, cols)
}
