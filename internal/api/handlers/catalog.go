package handlers

import (
	"fmt"
	"net/http"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"
	"github.com/AngelsOB/BrewTool-sub000/internal/data"

	"github.com/gin-gonic/gin"
)

// GetCatalog handles GET /api/v1/catalog/:kind
func GetCatalog(c *gin.Context) {
	kind := c.Param("kind")

	catalog, err := data.LoadCatalog(data.GetDefaultCatalogPath())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CATALOG_LOAD_ERROR",
				Message: fmt.Sprintf("Failed to load catalog: %v", err),
			},
		})
		return
	}

	switch kind {
	case "grains":
		c.JSON(http.StatusOK, gin.H{"grains": catalog.Grains})
	case "hops":
		c.JSON(http.StatusOK, gin.H{"hops": catalog.Hops})
	case "yeasts":
		c.JSON(http.StatusOK, gin.H{"yeasts": catalog.Yeasts})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_CATALOG_KIND",
				Message: fmt.Sprintf("unknown catalog kind %q, want grains, hops or yeasts", kind),
			},
		})
	}
}
