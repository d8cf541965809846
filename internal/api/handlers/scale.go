package handlers

import (
	"net/http"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"
	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"

	"github.com/gin-gonic/gin"
)

// Scale handles POST /api/v1/scale
func Scale(c *gin.Context) {
	var req models.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	shares := make([]calc.GrainShare, 0, len(req.Shares))
	for _, s := range req.Shares {
		shares = append(shares, calc.GrainShare{
			Name:            s.Name,
			Fraction:        s.Fraction,
			PotentialPoints: s.PotentialPoints,
			ColorLovibond:   s.ColorLovibond,
			Kind:            model.GrainKind(s.Kind),
		})
	}

	grains := calc.GrainWeightsForABV(shares, req.TargetABV, req.BatchVolumeL, req.Efficiency, req.Attenuation)
	if grains == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCALE_INPUTS",
				Message: "target ABV, batch volume, efficiency and share fractions must be positive",
			},
		})
		return
	}

	resp := models.ScaleResponse{}
	for _, g := range grains {
		resp.Grains = append(resp.Grains, models.ScaledGrain{
			Name:            g.Name,
			WeightKg:        g.WeightKg,
			PotentialPoints: g.PotentialPoints,
			ColorLovibond:   g.ColorLovibond,
			Kind:            string(g.Kind),
		})
		resp.TotalWeightKg += g.WeightKg
	}
	c.JSON(http.StatusOK, resp)
}
