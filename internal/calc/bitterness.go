package calc

import (
	"math"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

// Tinseth hop-utilization model: utilization is the product of a gravity
// factor (denser wort isomerizes less) and a time factor (longer contact
// isomerizes more), with per-timing-class scaling on top.
const (
	firstWortBonus    = 1.10 // pre-boil contact
	dryHopIsoCredit   = 0.05
	mashIsoCredit     = 0.15
	referenceSteepMin = 60.0 // nominal contact time for dry-hop/mash credits
)

// TinsethGravityFactor is 1.65 × 0.000125^(g − 1). Strictly decreasing in
// gravity; returns 0 (never NaN/Inf) for non-finite input.
func TinsethGravityFactor(wortGravity float64) float64 {
	if !isFinite(wortGravity) {
		return 0
	}
	return 1.65 * math.Pow(0.000125, wortGravity-1.0)
}

// TinsethTimeFactor is (1 − e^(−0.04t)) / 4.15. Zero at t=0, strictly
// increasing; returns 0 for negative or non-finite minutes.
func TinsethTimeFactor(minutes float64) float64 {
	if !isFinite(minutes) || minutes < 0 {
		return 0
	}
	return (1.0 - math.Exp(-0.04*minutes)) / 4.15
}

// TinsethUtilization is the base boil utilization.
func TinsethUtilization(minutes, gravity float64) float64 {
	return TinsethGravityFactor(gravity) * TinsethTimeFactor(minutes)
}

// whirlpoolTempFactor scales utilization by stand temperature: nothing at or
// below 60°C, full boil utilization at 100°C, with the temperature clamped
// to [60, 100] before exponentiation.
func whirlpoolTempFactor(tempC float64) float64 {
	if !isFinite(tempC) || tempC <= 60 {
		return 0
	}
	t := clamp(tempC, 60, 100)
	return math.Pow((t-60.0)/40.0, 1.8)
}

// HopUtilization resolves the utilization for one addition given the boil
// gravity. Malformed timing-class-specific fields yield 0.
func HopUtilization(h model.HopAddition, gravity float64) float64 {
	switch h.Timing {
	case model.HopTimingBoil:
		return TinsethUtilization(h.BoilTimeMin, gravity)
	case model.HopTimingFirstWort:
		return TinsethUtilization(h.BoilTimeMin, gravity) * firstWortBonus
	case model.HopTimingWhirlpool:
		return TinsethUtilization(h.WhirlpoolTimeMin, gravity) * whirlpoolTempFactor(h.WhirlpoolTempC)
	case model.HopTimingDryHop:
		return TinsethUtilization(referenceSteepMin, gravity) * dryHopIsoCredit
	case model.HopTimingMash:
		return TinsethUtilization(referenceSteepMin, gravity) * mashIsoCredit
	default:
		return 0
	}
}

// IBUSingleAddition is mg/L of iso-alpha acids contributed by one addition:
// mass(g) × alpha × 1000 × utilization / volume(L). Returns 0 rather than a
// division artifact for non-positive or non-finite volume, mass, or alpha.
func IBUSingleAddition(h model.HopAddition, volumeL, gravity float64) float64 {
	if !isFinite(volumeL) || volumeL <= 0 {
		return 0
	}
	if !isFinite(h.MassG) || h.MassG <= 0 {
		return 0
	}
	if !isFinite(h.AlphaAcid) || h.AlphaAcid <= 0 {
		return 0
	}
	u := HopUtilization(h, gravity)
	if !isFinite(u) || u <= 0 {
		return 0
	}
	return h.MassG * h.AlphaAcid * 1000.0 * u / volumeL
}

// IBUTotal sums per-addition IBU over the schedule. A nil schedule is empty;
// malformed additions contribute 0 without aborting the rest of the sum.
func IBUTotal(additions []model.HopAddition, volumeL, gravity float64) float64 {
	total := 0.0
	for _, h := range additions {
		total += IBUSingleAddition(h, volumeL, gravity)
	}
	return total
}
