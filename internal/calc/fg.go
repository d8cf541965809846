package calc

import "github.com/AngelsOB/BrewTool-sub000/internal/model"

// DefaultAttenuation is the yeast attenuation assumed when the recipe does
// not carry one. Applied at the call boundary, not hidden inside formulas.
const DefaultAttenuation = 0.75

// Final-gravity regression constants. These are empirical tuning values with
// no physical derivation; they must not change or existing recipes stop
// reproducing bit-for-bit.
const (
	fgReferenceMashTempC   = 66.0
	fgMashTempSlope        = 0.006 // attenuation per °C·min, normalized by total mash time
	fgDecoctionBonus       = 0.005 // per decoction minute, normalized
	fgDefaultMashMin       = 60.0
	fgMashTimeStep         = 0.005 // per 15 min of deviation from 60
	fgMashTimeClampAbs     = 0.03
	fgReferenceFermTempC   = 20.0
	fgFermTempSlope        = 0.004 // per °C above 20
	fgReferenceFermDays    = 10.0
	fgFermDaysSlope        = 0.002 // per day beyond 10
	fgMinAttenuation       = 0.60
	fgMaxAttenuation       = 0.95
)

// EstimateFG predicts final gravity from the base yeast attenuation adjusted
// by the mash and fermentation schedules: cooler/longer mashes and decoction
// rests make the wort more fermentable, warmer/longer fermentations push
// attenuation up. This is a fitted heuristic, not a physical model.
//
// A non-positive attenuation falls back to DefaultAttenuation. The effective
// attenuation is always clamped to [0.60, 0.95].
func EstimateFG(og, attenuation float64, mashSteps []model.MashStep, ferm []model.FermentationStep) float64 {
	if !isFinite(og) {
		return 0
	}
	if !isFinite(attenuation) || attenuation <= 0 {
		attenuation = DefaultAttenuation
	}

	totalMashMin := 0.0
	for _, s := range mashSteps {
		if isFinite(s.DurationMin) && s.DurationMin > 0 {
			totalMashMin += s.DurationMin
		}
	}

	norm := totalMashMin
	if norm <= 0 {
		norm = fgDefaultMashMin
	}
	tempAdj := 0.0
	decoAdj := 0.0
	for _, s := range mashSteps {
		if !isFinite(s.DurationMin) || s.DurationMin <= 0 || !isFinite(s.TempC) {
			continue
		}
		tempAdj += (fgReferenceMashTempC - s.TempC) * fgMashTempSlope * s.DurationMin
		if s.Type == model.MashStepDecoction {
			decoAdj += fgDecoctionBonus * s.DurationMin
		}
	}
	tempAdj /= norm
	decoAdj /= norm

	mashMin := totalMashMin
	if mashMin <= 0 {
		mashMin = fgDefaultMashMin
	}
	timeAdj := clamp((mashMin-fgDefaultMashMin)/15.0*fgMashTimeStep, -fgMashTimeClampAbs, fgMashTimeClampAbs)

	totalDays := 0.0
	weightedTemp := 0.0
	for _, f := range ferm {
		if !isFinite(f.DurationDays) || f.DurationDays <= 0 || !isFinite(f.TempC) {
			continue
		}
		totalDays += f.DurationDays
		weightedTemp += f.TempC * f.DurationDays
	}
	avgTemp := fgReferenceFermTempC
	if totalDays > 0 {
		avgTemp = weightedTemp / totalDays
	}
	fermAdj := (avgTemp-fgReferenceFermTempC)*fgFermTempSlope + (totalDays-fgReferenceFermDays)*fgFermDaysSlope

	effective := clamp(attenuation+tempAdj+decoAdj+timeAdj+fermAdj, fgMinAttenuation, fgMaxAttenuation)
	return 1.0 + (og-1.0)*(1.0-effective)
}
