package model

// Recipe bundles everything the calculation pipeline consumes. It is a plain
// value record: the engine never mutates or retains it, and every derived
// quantity is recomputed from scratch on each call.
type Recipe struct {
	Name         string     `json:"name,omitempty"`
	BatchVolumeL float64    `json:"batch_volume_l"`
	Efficiency   float64    `json:"efficiency"`
	Method       BrewMethod `json:"method,omitempty"`

	Grains       []GrainBillItem    `json:"grains,omitempty"`
	Hops         []HopAddition      `json:"hops,omitempty"`
	MashSteps    []MashStep         `json:"mash_steps,omitempty"`
	Fermentation []FermentationStep `json:"fermentation,omitempty"`

	// YeastAttenuation is the base attenuation fraction; <= 0 means the
	// caller-side default applies.
	YeastAttenuation float64            `json:"yeast_attenuation,omitempty"`
	Pitch            YeastPitch         `json:"pitch,omitempty"`
	PitchRate        float64            `json:"pitch_rate,omitempty"`
	StarterSteps     []YeastStarterStep `json:"starter_steps,omitempty"`

	Equipment EquipmentParams `json:"equipment"`

	SourceWater WaterProfile  `json:"source_water,omitempty"`
	MashSalts   SaltAdditions `json:"mash_salts,omitempty"`
	SpargeSalts SaltAdditions `json:"sparge_salts,omitempty"`
	TargetWater *WaterProfile `json:"target_water,omitempty"`
}

// TotalGrainKg sums the grain bill; negative weights are ignored.
func (r Recipe) TotalGrainKg() float64 {
	total := 0.0
	for _, g := range r.Grains {
		if g.WeightKg > 0 {
			total += g.WeightKg
		}
	}
	return total
}

// KettleHopMassKg sums the hops that end up in the kettle (boil, first wort,
// whirlpool) for the hop-absorption share of the kettle loss.
func (r Recipe) KettleHopMassKg() float64 {
	total := 0.0
	for _, h := range r.Hops {
		if h.Timing.InKettle() && h.MassG > 0 {
			total += h.MassG
		}
	}
	return total / 1000.0
}
