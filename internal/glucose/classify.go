package glucose

import "github.com/DarkSyed/sugari-sub000/internal/database"

// Level buckets a reading for display and summaries.
type Level string

const (
	LevelLow      Level = "low"
	LevelInRange  Level = "in_range"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// Classification thresholds in mg/dL. Fasting readings use a tighter upper
// bound than post-meal ones.
const (
	LowBelow      = 70.0
	InRangeUpper  = 180.0
	FastingUpper  = 130.0
	VeryHighAbove = 250.0
)

// Classify buckets a stored mg/dL value. A fasting context tightens the
// in-range upper bound; a nil context uses the general bounds.
func Classify(mgdl float64, context *database.ReadingContext) Level {
	upper := InRangeUpper
	if context != nil && *context == database.ContextFasting {
		upper = FastingUpper
	}

	switch {
	case mgdl < LowBelow:
		return LevelLow
	case mgdl <= upper:
		return LevelInRange
	case mgdl <= VeryHighAbove:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
