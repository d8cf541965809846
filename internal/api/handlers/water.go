package handlers

import (
	"net/http"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"
	"github.com/AngelsOB/BrewTool-sub000/internal/calc"

	"github.com/gin-gonic/gin"
)

// Water handles POST /api/v1/water
func Water(c *gin.Context) {
	var req models.WaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	achieved := req.SourceWater.Add(calc.IonDelta(req.Salts, req.VolumeL)).ClampNonNegative()
	diff := calc.DiffAgainstTarget(achieved, req.TargetWater, req.TolerancePPM)

	c.JSON(http.StatusOK, models.WaterResponse{
		Achieved: waterProfileBody(achieved),
		Diff:     waterDiffBody(diff),
	})
}
