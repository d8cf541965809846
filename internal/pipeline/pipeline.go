// Package pipeline composes the pure calc functions into full recipe
// snapshots. It owns the fixed dependency order (grain bill → OG → FG → ABV;
// grain bill + hops + OG → IBU; grain bill + equipment → water volumes;
// OG + volume + yeast → starter) so callers recompute everything with one
// call whenever any input changes.
package pipeline

import (
	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

// Defaults are the ambient constants applied at the call boundary; the calc
// functions themselves take them as plain arguments.
type Defaults struct {
	Attenuation         float64
	PitchRate           float64
	HopAbsorptionLPerKg float64
}

func (d Defaults) withFallbacks() Defaults {
	if d.Attenuation <= 0 {
		d.Attenuation = calc.DefaultAttenuation
	}
	if d.PitchRate <= 0 {
		d.PitchRate = calc.DefaultPitchRate
	}
	if d.HopAbsorptionLPerKg <= 0 {
		d.HopAbsorptionLPerKg = model.DefaultHopAbsorptionLPerKg
	}
	return d
}

// Snapshot is the full set of derived quantities for one recipe. It is
// recomputed from scratch on every Run; nothing is cached here.
type Snapshot struct {
	OG    float64
	FG    float64
	Plato float64

	ABVSimple float64
	ABVByWeight float64

	IBU float64

	MCU      float64
	SRM      float64
	Color    calc.Color
	ColorHex string

	Volumes calc.WaterVolumes

	RequiredCellsB  float64
	AvailableCellsB float64
	FinalCellsB     float64
	CellsShortB     float64 // negative means underpitching
	StarterSteps    []calc.StarterStepResult

	MashWaterProfile   model.WaterProfile
	SpargeWaterProfile model.WaterProfile
	MixedWaterProfile  model.WaterProfile
	WaterDiff          *calc.ProfileDiff

	HopLedger []HopRow
}

// Run computes every derived quantity for the recipe. The recipe is taken by
// value and never mutated; Run is safe to call concurrently.
func Run(r model.Recipe, d Defaults) *Snapshot {
	d = d.withFallbacks()

	eq := r.Equipment
	if eq.HopAbsorptionLPerKg <= 0 {
		eq.HopAbsorptionLPerKg = d.HopAbsorptionLPerKg
	}
	attenuation := r.YeastAttenuation
	if attenuation <= 0 {
		attenuation = d.Attenuation
	}
	pitchRate := r.PitchRate
	if pitchRate <= 0 {
		pitchRate = d.PitchRate
	}

	snap := &Snapshot{}

	// Gravity chain.
	points := calc.PointsFromGrainBill(r.Grains, r.BatchVolumeL, r.Efficiency)
	snap.OG = calc.OGFromPoints(points)
	snap.Plato = calc.SGToPlato(snap.OG)
	snap.FG = calc.EstimateFG(snap.OG, attenuation, r.MashSteps, r.Fermentation)
	snap.ABVSimple = calc.ABV(calc.ABVModelSimple, snap.OG, snap.FG)
	snap.ABVByWeight = calc.ABV(calc.ABVModelABW, snap.OG, snap.FG)

	// Color.
	snap.MCU = calc.MCUFromGrainBill(r.Grains, r.BatchVolumeL)
	snap.SRM = calc.SRMMorey(snap.MCU)
	snap.Color = calc.SRMToColor(snap.SRM)
	snap.ColorHex = snap.Color.Hex()

	// Bitterness, row by row so the ledger and the total stay consistent.
	snap.HopLedger = buildHopLedger(r.Hops, r.BatchVolumeL, snap.OG)
	for _, row := range snap.HopLedger {
		snap.IBU += row.IBU
	}

	// Water volumes.
	snap.Volumes = calc.ComputeWaterVolumes(r.Method, r.TotalGrainKg(), r.BatchVolumeL, eq, r.KettleHopMassKg())

	// Water chemistry: each body is salted separately, then mixed by volume.
	snap.MashWaterProfile = r.SourceWater.Add(calc.IonDelta(r.MashSalts, snap.Volumes.MashWaterL)).ClampNonNegative()
	snap.SpargeWaterProfile = r.SourceWater.Add(calc.IonDelta(r.SpargeSalts, snap.Volumes.SpargeWaterL)).ClampNonNegative()
	snap.MixedWaterProfile = calc.MixProfiles([]calc.VolumeProfile{
		{VolumeL: snap.Volumes.MashWaterL, Profile: snap.MashWaterProfile},
		{VolumeL: snap.Volumes.SpargeWaterL, Profile: snap.SpargeWaterProfile},
	})
	if r.TargetWater != nil {
		diff := calc.DiffAgainstTarget(snap.MixedWaterProfile, *r.TargetWater, 0)
		snap.WaterDiff = &diff
	}

	// Yeast.
	snap.RequiredCellsB = calc.RequiredCellsB(pitchRate, r.BatchVolumeL, snap.OG)
	snap.AvailableCellsB = calc.AvailableCellsB(r.Pitch)
	snap.StarterSteps = calc.GrowStarter(snap.AvailableCellsB, r.StarterSteps)
	snap.FinalCellsB = snap.AvailableCellsB
	if n := len(snap.StarterSteps); n > 0 {
		snap.FinalCellsB = snap.StarterSteps[n-1].EndCellsB
	}
	snap.CellsShortB = snap.FinalCellsB - snap.RequiredCellsB

	return snap
}
