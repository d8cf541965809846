package models

import "github.com/AngelsOB/BrewTool-sub000/internal/model"

// CalculateRequest represents the request body for computing a recipe snapshot
type CalculateRequest struct {
	Recipe        model.Recipe     `json:"recipe" binding:"required"`
	EquipmentFile string           `json:"equipment_file,omitempty"` // preset id, e.g. "1_three_vessel"
	Defaults      DefaultsConfig   `json:"defaults,omitempty"`
	Options       CalculateOptions `json:"options,omitempty"`
}

// DefaultsConfig overrides the server-side calculation defaults
type DefaultsConfig struct {
	Attenuation         float64 `json:"attenuation,omitempty"`
	PitchRate           float64 `json:"pitch_rate,omitempty"`
	HopAbsorptionLPerKg float64 `json:"hop_absorption_l_per_kg,omitempty"`
}

// CalculateOptions contains optional calculation parameters
type CalculateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// ScaleRequest represents a request to size a grain bill for a target ABV
type ScaleRequest struct {
	Shares       []GrainShare `json:"shares" binding:"required"`
	TargetABV    float64      `json:"target_abv" binding:"required"`
	BatchVolumeL float64      `json:"batch_volume_l" binding:"required"`
	Efficiency   float64      `json:"efficiency" binding:"required"`
	Attenuation  float64      `json:"attenuation,omitempty"`
}

// GrainShare defines one fermentable's fraction of the scaled bill
type GrainShare struct {
	Name            string  `json:"name,omitempty"`
	Fraction        float64 `json:"fraction"`
	PotentialPoints float64 `json:"potential_points"`
	ColorLovibond   float64 `json:"color_lovibond,omitempty"`
	Kind            string  `json:"kind,omitempty"`
}

// WaterRequest represents a request to compute salt additions against a target
type WaterRequest struct {
	SourceWater  model.WaterProfile  `json:"source_water"`
	TargetWater  model.WaterProfile  `json:"target_water" binding:"required"`
	Salts        model.SaltAdditions `json:"salts"`
	VolumeL      float64             `json:"volume_l" binding:"required"`
	TolerancePPM float64             `json:"tolerance_ppm,omitempty"` // default: 20
}
