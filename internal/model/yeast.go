package model

// GrowthModel selects the starter growth formula. The two models have
// genuinely different shapes and saturation policies, so they stay separate
// implementations keyed by this tag.
type GrowthModel string

const (
	GrowthModelWhite      GrowthModel = "white"
	GrowthModelBraukaiser GrowthModel = "braukaiser"
)

// Aeration is the starter aeration regime; it only affects the White model.
type Aeration string

const (
	AerationNone    Aeration = "none"
	AerationShaking Aeration = "shaking"
)

// YeastForm is the form the pitch arrives in.
type YeastForm string

const (
	YeastFormDry    YeastForm = "dry"
	YeastFormLiquid YeastForm = "liquid"
	YeastFormSlurry YeastForm = "slurry"
)

// YeastPitch describes the yeast on hand before any starter steps.
// Units:
// - Packs: count (dry sachets or liquid packs)
// - BillionsPerPack: liquid packs only, typically 100 or 200
// - DaysSinceManufacture: liquid viability decay input
// - SlurryVolumeL / SlurryDensityBPerML: slurry pitches only
type YeastPitch struct {
	Form                 YeastForm `json:"form"`
	Packs                float64   `json:"packs,omitempty"`
	BillionsPerPack      float64   `json:"billions_per_pack,omitempty"`
	DaysSinceManufacture float64   `json:"days_since_manufacture,omitempty"`
	SlurryVolumeL        float64   `json:"slurry_volume_l,omitempty"`
	SlurryDensityBPerML  float64   `json:"slurry_density_b_per_ml,omitempty"`
}

// YeastStarterStep is one propagation step of a starter plan.
type YeastStarterStep struct {
	VolumeL   float64     `json:"volume_l"`
	GravitySG float64     `json:"gravity_sg"`
	Model     GrowthModel `json:"model"`
	Aeration  Aeration    `json:"aeration,omitempty"`
}
