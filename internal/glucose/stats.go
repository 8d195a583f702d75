package glucose

import (
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/shopspring/decimal"
)

// Summary aggregates a set of readings for the stats view. All values are
// mg/dL except EstimatedA1C, which is a percentage.
type Summary struct {
	Count        int
	Average      float64
	Min          float64
	Max          float64
	InRangePct   float64
	EstimatedA1C float64
}

// Summarize computes aggregate figures over readings. The zero Summary is
// returned for an empty slice. In-range classification honors each reading's
// own context, so fasting readings are held to the tighter bound.
func Summarize(readings []database.BloodSugarReading) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	sum := decimal.Zero
	min := readings[0].Value
	max := readings[0].Value
	inRange := 0
	for _, r := range readings {
		sum = sum.Add(decimal.NewFromFloat(r.Value))
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
		if Classify(r.Value, r.Context) == LevelInRange {
			inRange++
		}
	}

	n := decimal.NewFromInt(int64(len(readings)))
	avg := sum.Div(n)
	pct := decimal.NewFromInt(int64(inRange * 100)).Div(n)

	// Estimated A1C from mean glucose (ADA eAG formula inverted).
	ea1c := avg.Add(decimal.NewFromFloat(46.7)).Div(decimal.NewFromFloat(28.7))

	avgF, _ := avg.Round(1).Float64()
	pctF, _ := pct.Round(1).Float64()
	ea1cF, _ := ea1c.Round(1).Float64()

	return Summary{
		Count:        len(readings),
		Average:      avgF,
		Min:          min,
		Max:          max,
		InRangePct:   pctF,
		EstimatedA1C: ea1cF,
	}
}
