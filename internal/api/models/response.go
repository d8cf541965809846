package models

// CalculateResponse represents the response from a snapshot calculation
type CalculateResponse struct {
	ID       string       `json:"id,omitempty"`
	Status   string       `json:"status"`
	Snapshot SnapshotBody `json:"snapshot"`
	Ledger   []HopRow     `json:"ledger,omitempty"`
}

// SnapshotBody contains the derived quantities for one recipe
type SnapshotBody struct {
	OG    float64 `json:"og"`
	FG    float64 `json:"fg"`
	Plato float64 `json:"plato"`

	ABVSimple   float64 `json:"abv_simple"`
	ABVByWeight float64 `json:"abv_by_weight"`

	IBU float64 `json:"ibu"`

	MCU      float64 `json:"mcu"`
	SRM      float64 `json:"srm"`
	ColorHex string  `json:"color_hex"`

	PreBoilL         float64 `json:"pre_boil_l"`
	MashWaterL       float64 `json:"mash_water_l"`
	SpargeWaterL     float64 `json:"sparge_water_l"`
	CapacityExceeded bool    `json:"capacity_exceeded"`

	RequiredCellsB  float64           `json:"required_cells_b"`
	AvailableCellsB float64           `json:"available_cells_b"`
	FinalCellsB     float64           `json:"final_cells_b"`
	CellsShortB     float64           `json:"cells_short_b"`
	StarterSteps    []StarterStepBody `json:"starter_steps,omitempty"`

	MashWaterProfile   WaterProfileBody `json:"mash_water_profile"`
	SpargeWaterProfile WaterProfileBody `json:"sparge_water_profile"`
	MixedWaterProfile  WaterProfileBody `json:"mixed_water_profile"`
	WaterDiff          *WaterDiffBody   `json:"water_diff,omitempty"`
}

// StarterStepBody contains one starter step's growth result
type StarterStepBody struct {
	Index       int     `json:"index"`
	VolumeL     float64 `json:"volume_l"`
	GravitySG   float64 `json:"gravity_sg"`
	Model       string  `json:"model"`
	StartCellsB float64 `json:"start_cells_b"`
	GrowthB     float64 `json:"growth_b"`
	EndCellsB   float64 `json:"end_cells_b"`
	DMEGrams    float64 `json:"dme_grams"`
	Saturated   bool    `json:"saturated"`
}

// WaterProfileBody contains the six tracked ion concentrations in ppm
type WaterProfileBody struct {
	CaPPM   float64 `json:"ca_ppm"`
	MgPPM   float64 `json:"mg_ppm"`
	NaPPM   float64 `json:"na_ppm"`
	ClPPM   float64 `json:"cl_ppm"`
	SO4PPM  float64 `json:"so4_ppm"`
	HCO3PPM float64 `json:"hco3_ppm"`
}

// WaterDiffBody contains the achieved-vs-target comparison
type WaterDiffBody struct {
	Delta WaterProfileBody  `json:"delta"`
	Bands map[string]string `json:"bands"` // ion -> "within"/"over"/"under"
}

// HopRow represents one hop addition in the bitterness ledger
type HopRow struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Timing      string  `json:"timing"`
	MassG       float64 `json:"mass_g"`
	AlphaAcid   float64 `json:"alpha_acid"`
	TimeMin     float64 `json:"time_min"`
	Utilization float64 `json:"utilization"`
	IBU         float64 `json:"ibu"`
	CumIBU      float64 `json:"cum_ibu"`
}

// ScaleResponse represents the response from a grain-bill scaling request
type ScaleResponse struct {
	Grains       []ScaledGrain `json:"grains"`
	TotalWeightKg float64      `json:"total_weight_kg"`
}

// ScaledGrain is one sized fermentable
type ScaledGrain struct {
	Name            string  `json:"name,omitempty"`
	WeightKg        float64 `json:"weight_kg"`
	PotentialPoints float64 `json:"potential_points"`
	ColorLovibond   float64 `json:"color_lovibond,omitempty"`
	Kind            string  `json:"kind,omitempty"`
}

// WaterResponse represents the response from a water chemistry request
type WaterResponse struct {
	Achieved WaterProfileBody `json:"achieved"`
	Diff     WaterDiffBody    `json:"diff"`
}

// EquipmentInfo represents information about an equipment preset
type EquipmentInfo struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	File  string         `json:"file"`
	Specs EquipmentSpecs `json:"specs"`
}

// EquipmentSpecs contains headline equipment numbers
type EquipmentSpecs struct {
	MashTunCapacityL  float64 `json:"mash_tun_capacity_l"`
	BoilOffRateLPerHr float64 `json:"boil_off_rate_l_per_hr"`
}

// FormulaInfo represents information about a calculation variant
type FormulaInfo struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"` // "abv_model", "growth_model", "brew_method"
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters,omitempty"`
}

// ParameterInfo describes a formula parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
