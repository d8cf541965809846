// Package units holds the scalar unit conversions shared by every other
// package. Brewing formulas are a mix of US and metric conventions (gravity
// points per pound per gallon, liters per kilogram of grain), so conversions
// are kept in one place instead of scattering magic factors.
package units

const (
	LitersPerGallon = 3.78541
	PoundsPerKg     = 2.2046226218
	GramsPerPound   = 453.59237
	GramsPerOunce   = 28.349523125
	PsiPerBar       = 14.5037738
)

func CToF(c float64) float64 { return c*9.0/5.0 + 32.0 }

func FToC(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }

func LToGal(l float64) float64 { return l / LitersPerGallon }

func GalToL(gal float64) float64 { return gal * LitersPerGallon }

func KgToLb(kg float64) float64 { return kg * PoundsPerKg }

func LbToKg(lb float64) float64 { return lb / PoundsPerKg }

func GToOz(g float64) float64 { return g / GramsPerOunce }

func OzToG(oz float64) float64 { return oz * GramsPerOunce }

func PsiToBar(psi float64) float64 { return psi / PsiPerBar }

func BarToPsi(bar float64) float64 { return bar * PsiPerBar }
