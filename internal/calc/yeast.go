package calc

import (
	"math"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/units"
)

// DefaultPitchRate is the ale pitch rate in billions of cells per mL·°P
// equivalent. Applied at the call boundary like the other defaults.
const DefaultPitchRate = 0.75

const (
	drySachetGrams      = 11.0
	dryCellsPerGramB    = 6.0
	defaultLiquidPackB  = 100.0
	viabilityLossPerDay = 0.007
)

// White-model regression constants and its saturation ceiling. The
// Braukaiser model deliberately has no such ceiling; the asymmetry is part
// of both models' definitions, not an oversight.
const (
	whiteCoefficient     = 12.54793776
	whiteExponent        = -0.4594858324
	whiteIntercept       = 0.9994994906
	whiteShakingBoost    = 0.5
	whiteMaxGrowthFactor = 6.0
	whiteSaturationBPerL = 200.0
)

const (
	braukaiserCellsPerGramDME = 1.4
	dmePotentialPointsPerLb   = 45.0
)

// RequiredCellsB is the viable-cell requirement for the batch in billions:
// pitch rate × batch volume (L) × °Plato of the wort.
func RequiredCellsB(pitchRate, batchVolumeL, og float64) float64 {
	if !isFinite(pitchRate) || pitchRate <= 0 {
		pitchRate = DefaultPitchRate
	}
	if !isFinite(batchVolumeL) || batchVolumeL <= 0 {
		return 0
	}
	plato := SGToPlato(og)
	if !isFinite(plato) || plato < 0 {
		return 0
	}
	return pitchRate * batchVolumeL * plato
}

// AvailableCellsB estimates the viable cells on hand in billions, before
// any starter steps.
//
// Dry sachets are assumed 11 g at 6 B/g and do not decay. Liquid packs decay
// 0.7%/day since manufacture, floored at zero viability; a missing
// manufacture age means full viability. Slurry is volume × density.
func AvailableCellsB(p model.YeastPitch) float64 {
	switch p.Form {
	case model.YeastFormDry:
		if !isFinite(p.Packs) || p.Packs <= 0 {
			return 0
		}
		return p.Packs * drySachetGrams * dryCellsPerGramB
	case model.YeastFormLiquid:
		if !isFinite(p.Packs) || p.Packs <= 0 {
			return 0
		}
		perPack := p.BillionsPerPack
		if !isFinite(perPack) || perPack <= 0 {
			perPack = defaultLiquidPackB
		}
		viability := 1.0
		if isFinite(p.DaysSinceManufacture) && p.DaysSinceManufacture > 0 {
			viability = clamp(1.0-viabilityLossPerDay*p.DaysSinceManufacture, 0, 1)
		}
		return p.Packs * perPack * viability
	case model.YeastFormSlurry:
		if !isFinite(p.SlurryVolumeL) || p.SlurryVolumeL <= 0 {
			return 0
		}
		if !isFinite(p.SlurryDensityBPerML) || p.SlurryDensityBPerML <= 0 {
			return 0
		}
		return p.SlurryVolumeL * 1000.0 * p.SlurryDensityBPerML
	default:
		return 0
	}
}

// StarterStepResult records one propagation step of a starter plan.
type StarterStepResult struct {
	Index       int               `json:"index"`
	VolumeL     float64           `json:"volume_l"`
	GravitySG   float64           `json:"gravity_sg"`
	Model       model.GrowthModel `json:"model"`
	StartCellsB float64           `json:"start_cells_b"`
	GrowthB     float64           `json:"growth_b"`
	EndCellsB   float64           `json:"end_cells_b"`
	DMEGrams    float64           `json:"dme_grams,omitempty"`
	Saturated   bool              `json:"saturated,omitempty"`
}

// growWhite applies the aeration-sensitive inoculation-rate regression.
// Growth factor is clamped to [0, 6] and the end count saturates at
// 200 B per liter of starter volume.
func growWhite(startB float64, step model.YeastStarterStep) StarterStepResult {
	res := StarterStepResult{StartCellsB: startB, EndCellsB: startB}
	if !isFinite(step.VolumeL) || step.VolumeL <= 0 || !isFinite(startB) || startB <= 0 {
		return res
	}
	inoculation := startB / step.VolumeL
	boost := 0.0
	if step.Aeration == model.AerationShaking {
		boost = whiteShakingBoost
	}
	gf := clamp(whiteCoefficient*math.Pow(inoculation, whiteExponent)-whiteIntercept+boost, 0, whiteMaxGrowthFactor)
	proposed := startB * (1.0 + gf)
	ceiling := whiteSaturationBPerL * step.VolumeL
	end := proposed
	if end > ceiling {
		end = ceiling
		res.Saturated = true
	}
	res.GrowthB = end - startB
	res.EndCellsB = end
	return res
}

// growBraukaiser adds cells in proportion to the DME mass needed to hit the
// step gravity at the step volume: 1.4 B per gram. No saturation ceiling.
func growBraukaiser(startB float64, step model.YeastStarterStep) StarterStepResult {
	res := StarterStepResult{StartCellsB: startB, EndCellsB: startB}
	if !isFinite(startB) || startB < 0 {
		return res
	}
	dme := DMEGramsForGravity(step.VolumeL, step.GravitySG)
	growth := dme * braukaiserCellsPerGramDME
	res.DMEGrams = dme
	res.GrowthB = growth
	res.EndCellsB = startB + growth
	return res
}

// DMEGramsForGravity returns the dry malt extract needed to raise volumeL of
// water to the target gravity, using the standard points/gal → lb → g chain
// at 45 points/lb/gal for DME.
func DMEGramsForGravity(volumeL, sg float64) float64 {
	if !isFinite(volumeL) || volumeL <= 0 || !isFinite(sg) {
		return 0
	}
	points := (sg - 1.0) * 1000.0
	if points <= 0 {
		return 0
	}
	lbs := points * units.LToGal(volumeL) / dmePotentialPointsPerLb
	return lbs * units.GramsPerPound
}

// GrowStarter runs the starter steps in order. Each step starts from the
// previous step's end count; the first starts from the initial available
// cells.
func GrowStarter(initialB float64, steps []model.YeastStarterStep) []StarterStepResult {
	out := make([]StarterStepResult, 0, len(steps))
	current := initialB
	for i, s := range steps {
		var r StarterStepResult
		switch s.Model {
		case model.GrowthModelBraukaiser:
			r = growBraukaiser(current, s)
		default:
			r = growWhite(current, s)
		}
		r.Index = i
		r.VolumeL = s.VolumeL
		r.GravitySG = s.GravitySG
		r.Model = s.Model
		if r.Model == "" {
			r.Model = model.GrowthModelWhite
		}
		out = append(out, r)
		current = r.EndCellsB
	}
	return out
}

// FinalCellsB is the cell count after all starter steps, or the initial
// count when there are none.
func FinalCellsB(initialB float64, steps []model.YeastStarterStep) float64 {
	results := GrowStarter(initialB, steps)
	if len(results) == 0 {
		return initialB
	}
	return results[len(results)-1].EndCellsB
}
