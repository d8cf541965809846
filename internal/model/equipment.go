package model

import "errors"

// BrewMethod selects the water-volume accounting variant.
type BrewMethod string

const (
	BrewMethodThreeVessel BrewMethod = "three_vessel"
	BrewMethodBIABFull    BrewMethod = "biab_full"
	BrewMethodBIABSparge  BrewMethod = "biab_sparge"
)

// DefaultHopAbsorptionLPerKg is the wort volume lost to kettle hops when
// the equipment does not specify its own coefficient.
const DefaultHopAbsorptionLPerKg = 0.7

// EquipmentParams defines the physical losses and rates of the brew rig.
// Units:
// - MashThicknessLPerKg: liters of strike water per kg of grain
// - GrainAbsorptionLPerKg: liters retained per kg of grain
// - MashTunDeadspaceL / MashTunCapacityL: L; capacity <= 0 means uncapped
// - BoilTimeMin: min
// - BoilOffRateLPerHr: L/hr
// - CoolingShrinkage: fraction 0..1
// - KettleLossL / ChillerLossL: L
// - HopAbsorptionLPerKg: L/kg of kettle hops
type EquipmentParams struct {
	MashThicknessLPerKg   float64 `json:"mash_thickness_l_per_kg"`
	GrainAbsorptionLPerKg float64 `json:"grain_absorption_l_per_kg"`
	MashTunDeadspaceL     float64 `json:"mash_tun_deadspace_l"`
	MashTunCapacityL      float64 `json:"mash_tun_capacity_l,omitempty"`
	BoilTimeMin           float64 `json:"boil_time_min"`
	BoilOffRateLPerHr     float64 `json:"boil_off_rate_l_per_hr"`
	CoolingShrinkage      float64 `json:"cooling_shrinkage"`
	KettleLossL           float64 `json:"kettle_loss_l"`
	ChillerLossL          float64 `json:"chiller_loss_l"`
	HopAbsorptionLPerKg   float64 `json:"hop_absorption_l_per_kg,omitempty"`
}

func (p EquipmentParams) Validate() error {
	if p.MashThicknessLPerKg <= 0 {
		return errors.New("MashThicknessLPerKg must be > 0")
	}
	if p.GrainAbsorptionLPerKg < 0 {
		return errors.New("GrainAbsorptionLPerKg must be >= 0")
	}
	if p.MashTunDeadspaceL < 0 {
		return errors.New("MashTunDeadspaceL must be >= 0")
	}
	if p.BoilTimeMin < 0 {
		return errors.New("BoilTimeMin must be >= 0")
	}
	if p.BoilOffRateLPerHr < 0 {
		return errors.New("BoilOffRateLPerHr must be >= 0")
	}
	if p.CoolingShrinkage < 0 || p.CoolingShrinkage >= 1 {
		return errors.New("CoolingShrinkage must be in [0, 1)")
	}
	if p.KettleLossL < 0 || p.ChillerLossL < 0 {
		return errors.New("kettle/chiller losses must be >= 0")
	}
	if p.HopAbsorptionLPerKg < 0 {
		return errors.New("HopAbsorptionLPerKg must be >= 0")
	}
	return nil
}
