package calc

import (
	"fmt"
	"math"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/units"
)

// PointsFromGrainBill returns gravity points (thousandths above 1.000)
// contributed by the grain bill into the batch volume at the given mash
// efficiency. Non-mashable kinds (extract, sugar) convert at 100%
// regardless of efficiency. A non-positive or non-finite volume yields 0.
func PointsFromGrainBill(items []model.GrainBillItem, batchVolumeL, efficiency float64) float64 {
	gal := units.LToGal(batchVolumeL)
	if !isFinite(gal) || gal <= 0 {
		return 0
	}
	total := 0.0
	for _, it := range items {
		if !isFinite(it.WeightKg) || it.WeightKg <= 0 {
			continue
		}
		if !isFinite(it.PotentialPoints) || it.PotentialPoints <= 0 {
			continue
		}
		eff := 1.0
		if it.Kind.Mashable() {
			eff = efficiency
		}
		if !isFinite(eff) || eff < 0 {
			continue
		}
		total += units.KgToLb(it.WeightKg) * it.PotentialPoints * eff
	}
	if !isFinite(total) {
		return 0
	}
	return total / gal
}

// OGFromPoints converts gravity points to specific gravity.
func OGFromPoints(points float64) float64 {
	if !isFinite(points) {
		return 1.0
	}
	return 1.0 + points/1000.0
}

// MCUFromGrainBill returns malt color units: Σ lb × °L / gal.
func MCUFromGrainBill(items []model.GrainBillItem, batchVolumeL float64) float64 {
	gal := units.LToGal(batchVolumeL)
	if !isFinite(gal) || gal <= 0 {
		return 0
	}
	total := 0.0
	for _, it := range items {
		if !isFinite(it.WeightKg) || it.WeightKg <= 0 {
			continue
		}
		if !isFinite(it.ColorLovibond) || it.ColorLovibond <= 0 {
			continue
		}
		total += units.KgToLb(it.WeightKg) * it.ColorLovibond
	}
	return total / gal
}

// SRMMorey is the Morey color equation: 1.4922 × mcu^0.6859. MCU is clamped
// to 0 first; fractional powers of negatives are undefined.
func SRMMorey(mcu float64) float64 {
	if !isFinite(mcu) || mcu <= 0 {
		return 0
	}
	return 1.4922 * math.Pow(mcu, 0.6859)
}

// Color is a display-only sRGB approximation of a beer color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SRMToColor maps SRM to a display color with per-channel exponential decay,
// each channel independently clamped to [0, 255]. Purely cosmetic.
func SRMToColor(srm float64) Color {
	if !isFinite(srm) || srm < 0 {
		srm = 0
	}
	return Color{
		R: colorChannel(250 * math.Exp(-0.028*srm)),
		G: colorChannel(235 * math.Exp(-0.077*srm)),
		B: colorChannel(200 * math.Exp(-0.180*srm)),
	}
}

func colorChannel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

// SGToPlato converts specific gravity to degrees Plato via the standard
// cubic approximation, valid for the realistic 1.000–1.150 range.
func SGToPlato(sg float64) float64 {
	if !isFinite(sg) {
		return 0
	}
	return -616.868 + 1111.14*sg - 630.272*sg*sg + 135.997*sg*sg*sg
}
