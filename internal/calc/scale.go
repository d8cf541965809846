package calc

import (
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/units"
)

// GrainShare is one fermentable expressed as a fraction of the grist rather
// than an absolute weight.
type GrainShare struct {
	Name            string          `json:"name,omitempty"`
	Fraction        float64         `json:"fraction"`
	PotentialPoints float64         `json:"potential_points"`
	ColorLovibond   float64         `json:"color_lovibond,omitempty"`
	Kind            model.GrainKind `json:"kind"`
}

// GrainWeightsForABV inverts the gravity calculation: given the grist as
// percentages and a target ABV, it returns absolute weights. This is the
// only inversion the engine performs; there is no solver behind it — the
// forward model is linear in mass, so one division recovers the total.
//
// The OG follows from ABV = (OG − FG) × 131.25 with FG tied to OG through
// the attenuation: OG − 1 = ABV / (131.25 × attenuation). Fractions are
// normalized by their sum, so shares need not add to exactly 1.
func GrainWeightsForABV(shares []GrainShare, targetABV, batchVolumeL, efficiency, attenuation float64) []model.GrainBillItem {
	if !isFinite(attenuation) || attenuation <= 0 {
		attenuation = DefaultAttenuation
	}
	if !isFinite(targetABV) || targetABV <= 0 {
		return nil
	}
	if !isFinite(batchVolumeL) || batchVolumeL <= 0 {
		return nil
	}
	if !isFinite(efficiency) || efficiency <= 0 {
		return nil
	}

	fracTotal := 0.0
	for _, s := range shares {
		if isFinite(s.Fraction) && s.Fraction > 0 {
			fracTotal += s.Fraction
		}
	}
	if fracTotal <= 0 {
		return nil
	}

	// Points-per-pound of the blended grist, efficiency applied per kind.
	blend := 0.0
	for _, s := range shares {
		if !isFinite(s.Fraction) || s.Fraction <= 0 {
			continue
		}
		if !isFinite(s.PotentialPoints) || s.PotentialPoints <= 0 {
			continue
		}
		eff := 1.0
		if s.Kind.Mashable() {
			eff = efficiency
		}
		blend += (s.Fraction / fracTotal) * s.PotentialPoints * eff
	}
	if blend <= 0 {
		return nil
	}

	neededPoints := targetABV / (131.25 * attenuation) * 1000.0
	totalLb := neededPoints * units.LToGal(batchVolumeL) / blend

	out := make([]model.GrainBillItem, 0, len(shares))
	for _, s := range shares {
		if !isFinite(s.Fraction) || s.Fraction <= 0 {
			continue
		}
		out = append(out, model.GrainBillItem{
			Name:            s.Name,
			WeightKg:        units.LbToKg(totalLb * s.Fraction / fracTotal),
			ColorLovibond:   s.ColorLovibond,
			PotentialPoints: s.PotentialPoints,
			Kind:            s.Kind,
		})
	}
	return out
}
