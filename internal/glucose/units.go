// Package glucose holds blood sugar unit conversion, level classification
// and range statistics. Stored values are always mg/dL; mmol/L exists only
// at the presentation edge.
package glucose

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MgdlPerMmol is the molar mass factor between the two clinical units.
const MgdlPerMmol = 18.0182

// ToMmol converts a mg/dL value to mmol/L.
func ToMmol(mgdl float64) float64 {
	return mgdl / MgdlPerMmol
}

// ToMgdl converts a mmol/L value to mg/dL.
func ToMgdl(mmol float64) float64 {
	return mmol * MgdlPerMmol
}

// RoundMmol rounds a mmol/L value to the single decimal place meters display.
func RoundMmol(mmol float64) float64 {
	f, _ := decimal.NewFromFloat(mmol).Round(1).Float64()
	return f
}

// Format renders a stored mg/dL value in the requested display unit.
// mg/dL values print as whole numbers, mmol/L with one decimal.
func Format(mgdl float64, unit string) string {
	if unit == "mmol/L" {
		return fmt.Sprintf("%s mmol/L", decimal.NewFromFloat(ToMmol(mgdl)).Round(1).String())
	}
	return fmt.Sprintf("%s mg/dL", decimal.NewFromFloat(mgdl).Round(0).String())
}
