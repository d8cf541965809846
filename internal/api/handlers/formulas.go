package handlers

import (
	"net/http"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"

	"github.com/gin-gonic/gin"
)

// FormulaHandler handles formula metadata requests
type FormulaHandler struct{}

// NewFormulaHandler creates a new formula handler
func NewFormulaHandler() *FormulaHandler {
	return &FormulaHandler{}
}

// ListFormulas handles GET /api/v1/formulas
func (h *FormulaHandler) ListFormulas(c *gin.Context) {
	formulas := []models.FormulaInfo{
		{
			Name:        "simple",
			Kind:        "abv_model",
			Description: "Linear approximation: (OG - FG) * 131.25. The everyday homebrew formula.",
		},
		{
			Name:        "abw",
			Kind:        "abv_model",
			Description: "Alcohol-by-weight based formula, more accurate for strong beers.",
		},
		{
			Name:        "white",
			Kind:        "growth_model",
			Description: "Inoculation-rate growth regression with a per-liter saturation ceiling.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "aeration",
					Type:        "string",
					Description: "Starter aeration: 'none' or 'shaking' (adds a fixed growth boost)",
					Default:     "none",
				},
			},
		},
		{
			Name:        "braukaiser",
			Kind:        "growth_model",
			Description: "Extract-based growth: cells grown proportional to grams of DME, no ceiling.",
		},
		{
			Name:        "three_vessel",
			Kind:        "brew_method",
			Description: "Separate mash tun and sparge; strike water set by mash thickness.",
		},
		{
			Name:        "biab_full",
			Kind:        "brew_method",
			Description: "Brew-in-a-bag with full volume in the kettle, no sparge.",
		},
		{
			Name:        "biab_sparge",
			Kind:        "brew_method",
			Description: "Brew-in-a-bag mash with a separate sparge addition.",
		},
	}

	c.JSON(http.StatusOK, gin.H{"formulas": formulas})
}
