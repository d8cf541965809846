package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"
	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/config"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalculateHandler handles recipe snapshot requests
type CalculateHandler struct {
	equipmentDir string
}

// NewCalculateHandler creates a new calculate handler
func NewCalculateHandler(equipmentDir string) *CalculateHandler {
	return &CalculateHandler{equipmentDir: equipmentDir}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	recipe := req.Recipe
	if req.EquipmentFile != "" {
		merged, err := h.resolveEquipment(req.EquipmentFile, recipe.Equipment)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_EQUIPMENT",
					Message: err.Error(),
				},
			})
			return
		}
		recipe.Equipment = merged
	}

	snap := pipeline.Run(recipe, pipeline.Defaults{
		Attenuation:         req.Defaults.Attenuation,
		PitchRate:           req.Defaults.PitchRate,
		HopAbsorptionLPerKg: req.Defaults.HopAbsorptionLPerKg,
	})

	c.JSON(http.StatusOK, buildCalculateResponse(snap, req.Options.IncludeLedger))
}

// resolveEquipment loads a preset by id and overlays any non-zero fields the
// request supplied inline.
func (h *CalculateHandler) resolveEquipment(id string, override model.EquipmentParams) (model.EquipmentParams, error) {
	path := filepath.Join(h.equipmentDir, id+".yaml")
	if _, err := os.Stat(path); err != nil {
		return model.EquipmentParams{}, fmt.Errorf("unknown equipment preset %q", id)
	}
	base, err := config.LoadEquipmentFile(path)
	if err != nil {
		return model.EquipmentParams{}, err
	}
	merged := config.MergeEquipment(base, equipmentConfigFromParams(override))
	return merged.ToModelParams(), nil
}

func equipmentConfigFromParams(p model.EquipmentParams) config.EquipmentConfig {
	return config.EquipmentConfig{
		MashThicknessLPerKg:   p.MashThicknessLPerKg,
		GrainAbsorptionLPerKg: p.GrainAbsorptionLPerKg,
		MashTunDeadspaceL:     p.MashTunDeadspaceL,
		MashTunCapacityL:      p.MashTunCapacityL,
		BoilTimeMin:           p.BoilTimeMin,
		BoilOffRateLPerHr:     p.BoilOffRateLPerHr,
		CoolingShrinkage:      p.CoolingShrinkage,
		KettleLossL:           p.KettleLossL,
		ChillerLossL:          p.ChillerLossL,
		HopAbsorptionLPerKg:   p.HopAbsorptionLPerKg,
	}
}

func buildCalculateResponse(snap *pipeline.Snapshot, includeLedger bool) models.CalculateResponse {
	body := models.SnapshotBody{
		OG:    snap.OG,
		FG:    snap.FG,
		Plato: snap.Plato,

		ABVSimple:   snap.ABVSimple,
		ABVByWeight: snap.ABVByWeight,

		IBU: snap.IBU,

		MCU:      snap.MCU,
		SRM:      snap.SRM,
		ColorHex: snap.ColorHex,

		PreBoilL:         snap.Volumes.PreBoilL,
		MashWaterL:       snap.Volumes.MashWaterL,
		SpargeWaterL:     snap.Volumes.SpargeWaterL,
		CapacityExceeded: snap.Volumes.CapacityExceeded,

		RequiredCellsB:  snap.RequiredCellsB,
		AvailableCellsB: snap.AvailableCellsB,
		FinalCellsB:     snap.FinalCellsB,
		CellsShortB:     snap.CellsShortB,

		MashWaterProfile:   waterProfileBody(snap.MashWaterProfile),
		SpargeWaterProfile: waterProfileBody(snap.SpargeWaterProfile),
		MixedWaterProfile:  waterProfileBody(snap.MixedWaterProfile),
	}
	for _, s := range snap.StarterSteps {
		body.StarterSteps = append(body.StarterSteps, models.StarterStepBody{
			Index:       s.Index,
			VolumeL:     s.VolumeL,
			GravitySG:   s.GravitySG,
			Model:       string(s.Model),
			StartCellsB: s.StartCellsB,
			GrowthB:     s.GrowthB,
			EndCellsB:   s.EndCellsB,
			DMEGrams:    s.DMEGrams,
			Saturated:   s.Saturated,
		})
	}
	if snap.WaterDiff != nil {
		d := waterDiffBody(*snap.WaterDiff)
		body.WaterDiff = &d
	}

	resp := models.CalculateResponse{
		ID:       uuid.New().String(),
		Status:   "completed",
		Snapshot: body,
	}
	if includeLedger {
		for _, r := range snap.HopLedger {
			resp.Ledger = append(resp.Ledger, models.HopRow{
				Index:       r.Index,
				Name:        r.Name,
				Timing:      string(r.Timing),
				MassG:       r.MassG,
				AlphaAcid:   r.AlphaAcid,
				TimeMin:     r.TimeMin,
				Utilization: r.Utilization,
				IBU:         r.IBU,
				CumIBU:      r.CumIBU,
			})
		}
	}
	return resp
}

func waterProfileBody(p model.WaterProfile) models.WaterProfileBody {
	return models.WaterProfileBody{
		CaPPM:   p.CaPPM,
		MgPPM:   p.MgPPM,
		NaPPM:   p.NaPPM,
		ClPPM:   p.ClPPM,
		SO4PPM:  p.SO4PPM,
		HCO3PPM: p.HCO3PPM,
	}
}

func waterDiffBody(d calc.ProfileDiff) models.WaterDiffBody {
	bands := make(map[string]string, len(d.Bands))
	for ion, band := range d.Bands {
		bands[ion] = string(band)
	}
	return models.WaterDiffBody{
		Delta: waterProfileBody(d.Delta),
		Bands: bands,
	}
}
