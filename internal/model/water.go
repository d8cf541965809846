package model

// WaterProfile is a water body described by its six brewing-relevant ion
// concentrations, all in ppm.
type WaterProfile struct {
	CaPPM   float64 `json:"ca_ppm"`
	MgPPM   float64 `json:"mg_ppm"`
	NaPPM   float64 `json:"na_ppm"`
	ClPPM   float64 `json:"cl_ppm"`
	SO4PPM  float64 `json:"so4_ppm"`
	HCO3PPM float64 `json:"hco3_ppm"`
}

// Add returns the ion-wise sum of two profiles.
func (p WaterProfile) Add(o WaterProfile) WaterProfile {
	return WaterProfile{
		CaPPM:   p.CaPPM + o.CaPPM,
		MgPPM:   p.MgPPM + o.MgPPM,
		NaPPM:   p.NaPPM + o.NaPPM,
		ClPPM:   p.ClPPM + o.ClPPM,
		SO4PPM:  p.SO4PPM + o.SO4PPM,
		HCO3PPM: p.HCO3PPM + o.HCO3PPM,
	}
}

// Scale returns the profile with every ion multiplied by f.
func (p WaterProfile) Scale(f float64) WaterProfile {
	return WaterProfile{
		CaPPM:   p.CaPPM * f,
		MgPPM:   p.MgPPM * f,
		NaPPM:   p.NaPPM * f,
		ClPPM:   p.ClPPM * f,
		SO4PPM:  p.SO4PPM * f,
		HCO3PPM: p.HCO3PPM * f,
	}
}

// ClampNonNegative floors every ion at zero. Profiles are always
// non-negative after clamping; dilution math can otherwise drift below zero.
func (p WaterProfile) ClampNonNegative() WaterProfile {
	f := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return WaterProfile{
		CaPPM:   f(p.CaPPM),
		MgPPM:   f(p.MgPPM),
		NaPPM:   f(p.NaPPM),
		ClPPM:   f(p.ClPPM),
		SO4PPM:  f(p.SO4PPM),
		HCO3PPM: f(p.HCO3PPM),
	}
}

// SaltAdditions are grams of each brewing salt added to a water body.
// A zero value means the salt is not added.
type SaltAdditions struct {
	GypsumG          float64 `json:"gypsum_g,omitempty"`
	CalciumChlorideG float64 `json:"calcium_chloride_g,omitempty"`
	EpsomSaltG       float64 `json:"epsom_salt_g,omitempty"`
	TableSaltG       float64 `json:"table_salt_g,omitempty"`
	BakingSodaG      float64 `json:"baking_soda_g,omitempty"`
}
