package model

// MashStepType distinguishes how a mash step reaches its rest temperature.
type MashStepType string

const (
	MashStepInfusion  MashStepType = "infusion"
	MashStepDecoction MashStepType = "decoction"
	MashStepRamp      MashStepType = "ramp"
)

// MashStep is one rest in the mash schedule.
// DecoctionFraction (0..1) is only meaningful for decoction steps.
type MashStep struct {
	Type              MashStepType `json:"type"`
	TempC             float64      `json:"temp_c"`
	DurationMin       float64      `json:"duration_min"`
	DecoctionFraction float64      `json:"decoction_fraction,omitempty"`
}
