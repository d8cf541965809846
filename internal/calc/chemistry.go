package calc

import (
	"math"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

// Per-gram-per-liter ion yields in ppm, from molar mass ratios. Example:
// gypsum (CaSO4·2H2O, 172.17 g/mol) is 23.28% Ca and 55.76% SO4 by mass, so
// 1 g/L contributes 232.8 ppm Ca and 557.6 ppm SO4.
type ionYield struct {
	ca, mg, na, cl, so4, hco3 float64
}

var (
	gypsumYield          = ionYield{ca: 232.8, so4: 557.7}
	calciumChlorideYield = ionYield{ca: 272.6, cl: 482.3}
	epsomSaltYield       = ionYield{mg: 98.6, so4: 389.8}
	tableSaltYield       = ionYield{na: 393.4, cl: 606.6}
	bakingSodaYield      = ionYield{na: 273.7, hco3: 726.3}
)

// minChemVolumeL floors the dilution volume so a zero volume degrades to a
// huge-but-finite concentration instead of a division by zero.
const minChemVolumeL = 1e-4

// DefaultIonTolerancePPM is the band half-width for target comparisons.
const DefaultIonTolerancePPM = 20.0

// IonDelta returns the ppm contribution of the salt additions dissolved in
// volumeL of water. Negative or absent salt masses contribute nothing.
func IonDelta(s model.SaltAdditions, volumeL float64) model.WaterProfile {
	if !isFinite(volumeL) {
		return model.WaterProfile{}
	}
	v := math.Max(volumeL, minChemVolumeL)

	var p model.WaterProfile
	add := func(grams float64, y ionYield) {
		if !isFinite(grams) || grams <= 0 {
			return
		}
		gramsPerLiter := grams / v
		p.CaPPM += gramsPerLiter * y.ca
		p.MgPPM += gramsPerLiter * y.mg
		p.NaPPM += gramsPerLiter * y.na
		p.ClPPM += gramsPerLiter * y.cl
		p.SO4PPM += gramsPerLiter * y.so4
		p.HCO3PPM += gramsPerLiter * y.hco3
	}
	add(s.GypsumG, gypsumYield)
	add(s.CalciumChlorideG, calciumChlorideYield)
	add(s.EpsomSaltG, epsomSaltYield)
	add(s.TableSaltG, tableSaltYield)
	add(s.BakingSodaG, bakingSodaYield)
	return p
}

// VolumeProfile pairs a water body with its ion profile for mixing.
type VolumeProfile struct {
	VolumeL float64            `json:"volume_l"`
	Profile model.WaterProfile `json:"profile"`
}

// MixProfiles volume-weights ion profiles across multiple water bodies,
// e.g. separately salted mash and sparge water. Zero total volume yields the
// zero profile, never NaN.
func MixProfiles(parts []VolumeProfile) model.WaterProfile {
	total := 0.0
	for _, p := range parts {
		if isFinite(p.VolumeL) && p.VolumeL > 0 {
			total += p.VolumeL
		}
	}
	if total <= 0 {
		return model.WaterProfile{}
	}
	var out model.WaterProfile
	for _, p := range parts {
		if !isFinite(p.VolumeL) || p.VolumeL <= 0 {
			continue
		}
		out = out.Add(p.Profile.Scale(p.VolumeL / total))
	}
	return out
}

// IonBand classifies an ion against its target within a tolerance.
type IonBand string

const (
	IonWithin IonBand = "within"
	IonOver   IonBand = "over"
	IonUnder  IonBand = "under"
)

// ProfileDiff is the per-ion delta (actual − target) with display bands.
type ProfileDiff struct {
	Delta model.WaterProfile `json:"delta"`
	Bands map[string]IonBand `json:"bands"`
}

// DiffAgainstTarget subtracts the target from the actual profile and bands
// each ion. A non-positive tolerance falls back to DefaultIonTolerancePPM.
func DiffAgainstTarget(actual, target model.WaterProfile, tolerancePPM float64) ProfileDiff {
	if !isFinite(tolerancePPM) || tolerancePPM <= 0 {
		tolerancePPM = DefaultIonTolerancePPM
	}
	delta := actual.Add(target.Scale(-1))
	return ProfileDiff{
		Delta: delta,
		Bands: map[string]IonBand{
			"ca":   ionBand(delta.CaPPM, tolerancePPM),
			"mg":   ionBand(delta.MgPPM, tolerancePPM),
			"na":   ionBand(delta.NaPPM, tolerancePPM),
			"cl":   ionBand(delta.ClPPM, tolerancePPM),
			"so4":  ionBand(delta.SO4PPM, tolerancePPM),
			"hco3": ionBand(delta.HCO3PPM, tolerancePPM),
		},
	}
}

func ionBand(delta, tol float64) IonBand {
	switch {
	case delta > tol:
		return IonOver
	case delta < -tol:
		return IonUnder
	default:
		return IonWithin
	}
}
