package glucose_test

import (
	"testing"

	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/glucose"
	"github.com/stretchr/testify/assert"
)

func reading(value float64, context *database.ReadingContext) database.BloodSugarReading {
	return database.BloodSugarReading{Value: value, Context: context}
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, glucose.Summary{}, glucose.Summarize(nil))
}

func TestSummarize_KnownSet(t *testing.T) {
	readings := []database.BloodSugarReading{
		reading(100, nil),
		reading(150, nil),
		reading(200, nil),
	}

	s := glucose.Summarize(readings)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 150.0, s.Average)
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 200.0, s.Max)
	assert.Equal(t, 66.7, s.InRangePct)
	// (150 + 46.7) / 28.7 rounded to one decimal.
	assert.Equal(t, 6.9, s.EstimatedA1C)
}

func TestSummarize_FastingContextTightensRange(t *testing.T) {
	fasting := database.ContextFasting
	readings := []database.BloodSugarReading{
		reading(150, &fasting),
		reading(150, nil),
	}

	s := glucose.Summarize(readings)
	assert.Equal(t, 50.0, s.InRangePct, "the fasting reading at 150 is out of range, the general one is not")
}

func TestSummarize_SingleReading(t *testing.T) {
	s := glucose.Summarize([]database.BloodSugarReading{reading(95, nil)})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 95.0, s.Average)
	assert.Equal(t, 95.0, s.Min)
	assert.Equal(t, 95.0, s.Max)
	assert.Equal(t, 100.0, s.InRangePct)
}
