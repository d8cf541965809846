package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/models"
	"github.com/AngelsOB/BrewTool-sub000/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// EquipmentHandler handles equipment preset requests
type EquipmentHandler struct {
	equipmentDir string
}

// EquipmentDir returns the preset directory path
func (h *EquipmentHandler) EquipmentDir() string {
	return h.equipmentDir
}

// NewEquipmentHandler creates a new equipment handler. The preset directory
// comes from EQUIPMENT_DIR, defaulting to examples/equipment under the
// working directory.
func NewEquipmentHandler() *EquipmentHandler {
	dir := os.Getenv("EQUIPMENT_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "equipment")
		} else {
			dir = "./examples/equipment"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	slog.Info("Using equipment preset directory", "dir", dir)

	return &EquipmentHandler{equipmentDir: dir}
}

// ListEquipment handles GET /api/v1/equipment
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	presets := []models.EquipmentInfo{}

	entries, err := os.ReadDir(h.equipmentDir)
	if err != nil {
		slog.Warn("Failed to read equipment directory", "dir", h.equipmentDir, "error", err)
		c.JSON(http.StatusOK, gin.H{"equipment": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.equipmentDir, entry.Name())
		info, err := h.loadEquipmentInfo(path, entry.Name())
		if err != nil {
			slog.Warn("Skipping invalid equipment file", "path", path, "error", err)
			continue
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"equipment": presets})
}

func (h *EquipmentHandler) loadEquipmentInfo(path, filename string) (*models.EquipmentInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Equipment config.EquipmentConfig `yaml:"equipment"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	// Keep the full filename without extension as the ID for consistency
	// (e.g., "1_three_vessel.yaml" -> "1_three_vessel").
	id := strings.TrimSuffix(filename, ".yaml")

	name := wrapper.Equipment.Name
	if name == "" {
		name = id
	}

	return &models.EquipmentInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.EquipmentSpecs{
			MashTunCapacityL:  wrapper.Equipment.MashTunCapacityL,
			BoilOffRateLPerHr: wrapper.Equipment.BoilOffRateLPerHr,
		},
	}, nil
}
