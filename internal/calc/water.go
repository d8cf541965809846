package calc

import "github.com/AngelsOB/BrewTool-sub000/internal/model"

// WaterVolumes is the per-stage water requirement derived for a recipe.
// CapacityExceeded is set when the mash water had to be clamped to the tun
// capacity and the shortfall moved to the sparge.
type WaterVolumes struct {
	PreBoilL         float64 `json:"pre_boil_l"`
	MashWaterL       float64 `json:"mash_water_l"`
	SpargeWaterL     float64 `json:"sparge_water_l"`
	CapacityExceeded bool    `json:"capacity_exceeded"`
}

// EffectiveKettleLossL folds hop wort absorption into the base kettle loss.
// Only kettle hops (boil, first wort, whirlpool) absorb here.
func EffectiveKettleLossL(baseKettleLossL, hopAbsorptionLPerKg, kettleHopMassKg float64) float64 {
	return baseKettleLossL + hopAbsorptionLPerKg*kettleHopMassKg
}

// PreBoilVolumeL works backward from the batch volume through boil-off,
// kettle and chiller losses, then scales up by the cooling shrinkage: the
// pre-boil wort must be larger so that what survives the boil and the chill
// still fills the fermenter.
func PreBoilVolumeL(batchVolumeL, boilTimeMin, boilOffRateLPerHr, kettleLossL, chillerLossL, coolingShrinkage float64) float64 {
	v := batchVolumeL + boilOffRateLPerHr*boilTimeMin/60.0 + kettleLossL + chillerLossL
	shrink := 1.0 - coolingShrinkage
	if shrink <= 0 {
		return v
	}
	return v / shrink
}

// MashWaterL is the strike water: grain mass at the mash thickness plus the
// tun deadspace.
func MashWaterL(grainMassKg, mashThicknessLPerKg, deadspaceL float64) float64 {
	return grainMassKg*mashThicknessLPerKg + deadspaceL
}

// SpargeWaterL sources the rest of the pre-boil volume from the sparge,
// including the water the grain absorbs and never gives back.
func SpargeWaterL(preBoilL, mashWaterL, grainMassKg, grainAbsorptionLPerKg float64) float64 {
	s := preBoilL - mashWaterL + grainMassKg*grainAbsorptionLPerKg
	if s < 0 {
		return 0
	}
	return s
}

// spargeFromMashUsedL redistributes the mash-stage total after the mash
// water has been capped. The mash + sparge total is preserved exactly; only
// the split moves.
func spargeFromMashUsedL(desiredTotalL, usedMashL float64) float64 {
	s := desiredTotalL - usedMashL
	if s < 0 {
		return 0
	}
	return s
}

// ComputeWaterVolumes derives all stage volumes for the given brew method.
// The computation is two-phase: first the unconstrained ideal, then a
// redistribution pass when the mash tun capacity (if any) is exceeded, so
// both paths satisfy the same conservation invariant.
func ComputeWaterVolumes(method model.BrewMethod, grainMassKg, batchVolumeL float64, eq model.EquipmentParams, kettleHopMassKg float64) WaterVolumes {
	kettleLoss := EffectiveKettleLossL(eq.KettleLossL, eq.HopAbsorptionLPerKg, kettleHopMassKg)
	preBoil := PreBoilVolumeL(batchVolumeL, eq.BoilTimeMin, eq.BoilOffRateLPerHr, kettleLoss, eq.ChillerLossL, eq.CoolingShrinkage)
	absorbedL := grainMassKg * eq.GrainAbsorptionLPerKg

	if method == model.BrewMethodBIABFull {
		// Full-volume BIAB holds the entire pre-boil volume, plus what the
		// grain will absorb, in the mash vessel at once.
		mash := preBoil + absorbedL + eq.MashTunDeadspaceL
		out := WaterVolumes{PreBoilL: preBoil, MashWaterL: mash}
		if eq.MashTunCapacityL > 0 && mash > eq.MashTunCapacityL {
			out.MashWaterL = eq.MashTunCapacityL
			out.SpargeWaterL = spargeFromMashUsedL(mash, eq.MashTunCapacityL)
			out.CapacityExceeded = true
		}
		return out
	}

	// Three-vessel and BIAB-with-sparge share the mash/sparge accounting.
	mash := MashWaterL(grainMassKg, eq.MashThicknessLPerKg, eq.MashTunDeadspaceL)
	sparge := SpargeWaterL(preBoil, mash, grainMassKg, eq.GrainAbsorptionLPerKg)
	out := WaterVolumes{PreBoilL: preBoil, MashWaterL: mash, SpargeWaterL: sparge}
	if eq.MashTunCapacityL > 0 && mash > eq.MashTunCapacityL {
		desiredTotal := mash + sparge
		out.MashWaterL = eq.MashTunCapacityL
		out.SpargeWaterL = spargeFromMashUsedL(desiredTotal, eq.MashTunCapacityL)
		out.CapacityExceeded = true
	}
	return out
}
