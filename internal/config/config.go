package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/pipeline"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load equipment parameters from a separate YAML (e.g. examples/equipment/*.yaml).
	// If both EquipmentFile and Equipment are provided, Equipment overrides EquipmentFile.
	EquipmentFile string          `yaml:"equipment_file"`
	Equipment     EquipmentConfig `yaml:"equipment"`
	Defaults      DefaultsConfig  `yaml:"defaults"`
}

type EquipmentConfig struct {
	Name                  string  `yaml:"name"`
	MashThicknessLPerKg   float64 `yaml:"mash_thickness_l_per_kg"`
	GrainAbsorptionLPerKg float64 `yaml:"grain_absorption_l_per_kg"`
	MashTunDeadspaceL     float64 `yaml:"mash_tun_deadspace_l"`
	MashTunCapacityL      float64 `yaml:"mash_tun_capacity_l"`
	BoilTimeMin           float64 `yaml:"boil_time_min"`
	BoilOffRateLPerHr     float64 `yaml:"boil_off_rate_l_per_hr"`
	CoolingShrinkage      float64 `yaml:"cooling_shrinkage"`
	KettleLossL           float64 `yaml:"kettle_loss_l"`
	ChillerLossL          float64 `yaml:"chiller_loss_l"`
	HopAbsorptionLPerKg   float64 `yaml:"hop_absorption_l_per_kg"`
}

type DefaultsConfig struct {
	Attenuation         float64 `yaml:"attenuation"`
	PitchRate           float64 `yaml:"pitch_rate"`
	HopAbsorptionLPerKg float64 `yaml:"hop_absorption_l_per_kg"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If equipment_file is set, load it and merge in any explicit overrides from c.Equipment.
	if c.EquipmentFile != "" {
		eqPath := c.EquipmentFile
		if !filepath.IsAbs(eqPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), eqPath)
			if _, err := os.Stat(cand); err == nil {
				eqPath = cand
			}
		}
		loaded, err := LoadEquipmentFile(eqPath)
		if err != nil {
			return nil, err
		}
		c.Equipment = MergeEquipment(loaded, c.Equipment)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Equipment.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("equipment config invalid: %w", err)
	}
	if c.Defaults.Attenuation < 0 || c.Defaults.Attenuation > 1 {
		return errors.New("defaults.attenuation must be in [0, 1]")
	}
	if c.Defaults.PitchRate < 0 {
		return errors.New("defaults.pitch_rate must be >= 0")
	}
	if c.Defaults.HopAbsorptionLPerKg < 0 {
		return errors.New("defaults.hop_absorption_l_per_kg must be >= 0")
	}
	return nil
}

func (e EquipmentConfig) ToModelParams() model.EquipmentParams {
	return model.EquipmentParams{
		MashThicknessLPerKg:   e.MashThicknessLPerKg,
		GrainAbsorptionLPerKg: e.GrainAbsorptionLPerKg,
		MashTunDeadspaceL:     e.MashTunDeadspaceL,
		MashTunCapacityL:      e.MashTunCapacityL,
		BoilTimeMin:           e.BoilTimeMin,
		BoilOffRateLPerHr:     e.BoilOffRateLPerHr,
		CoolingShrinkage:      e.CoolingShrinkage,
		KettleLossL:           e.KettleLossL,
		ChillerLossL:          e.ChillerLossL,
		HopAbsorptionLPerKg:   e.HopAbsorptionLPerKg,
	}
}

func (d DefaultsConfig) ToPipelineDefaults() pipeline.Defaults {
	return pipeline.Defaults{
		Attenuation:         d.Attenuation,
		PitchRate:           d.PitchRate,
		HopAbsorptionLPerKg: d.HopAbsorptionLPerKg,
	}
}

type equipmentFileWrapper struct {
	Equipment EquipmentConfig `yaml:"equipment"`
}

func LoadEquipmentFile(path string) (EquipmentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return EquipmentConfig{}, err
	}
	var w equipmentFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return EquipmentConfig{}, err
	}
	return w.Equipment, nil
}

// MergeEquipment overlays non-zero fields from override onto base.
// This is used when loading an equipment file and then applying overrides from the request.
func MergeEquipment(base, override EquipmentConfig) EquipmentConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.MashThicknessLPerKg != 0 {
		out.MashThicknessLPerKg = override.MashThicknessLPerKg
	}
	if override.GrainAbsorptionLPerKg != 0 {
		out.GrainAbsorptionLPerKg = override.GrainAbsorptionLPerKg
	}
	if override.MashTunDeadspaceL != 0 {
		out.MashTunDeadspaceL = override.MashTunDeadspaceL
	}
	if override.MashTunCapacityL != 0 {
		out.MashTunCapacityL = override.MashTunCapacityL
	}
	if override.BoilTimeMin != 0 {
		out.BoilTimeMin = override.BoilTimeMin
	}
	if override.BoilOffRateLPerHr != 0 {
		out.BoilOffRateLPerHr = override.BoilOffRateLPerHr
	}
	// Note: these are allowed to be 0 in theory, but our configs use non-zero values.
	if override.CoolingShrinkage != 0 {
		out.CoolingShrinkage = override.CoolingShrinkage
	}
	if override.KettleLossL != 0 {
		out.KettleLossL = override.KettleLossL
	}
	if override.ChillerLossL != 0 {
		out.ChillerLossL = override.ChillerLossL
	}
	if override.HopAbsorptionLPerKg != 0 {
		out.HopAbsorptionLPerKg = override.HopAbsorptionLPerKg
	}
	return out
}
