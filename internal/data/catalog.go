package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogGrain is one fermentable in the ingredient catalog.
type CatalogGrain struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"` // e.g., "grain", "extract", "sugar"
	PotentialPoints float64 `json:"potential_points"`
	ColorLovibond   float64 `json:"color_lovibond"`
}

// CatalogHop is one hop variety with its typical alpha acid range.
type CatalogHop struct {
	Name         string  `json:"name"`
	AlphaAcidLow float64 `json:"alpha_acid_low"`
	AlphaAcidHigh float64 `json:"alpha_acid_high"`
}

// CatalogYeast is one yeast strain with its published attenuation range.
type CatalogYeast struct {
	Name            string  `json:"name"`
	Lab             string  `json:"lab"`
	Form            string  `json:"form"` // e.g., "dry", "liquid"
	AttenuationLow  float64 `json:"attenuation_low"`
	AttenuationHigh float64 `json:"attenuation_high"`
}

// Catalog represents a collection of catalog ingredients
type Catalog struct {
	UpdatedAt string         `json:"updated_at"` // ISO 8601 timestamp
	Grains    []CatalogGrain `json:"grains"`
	Hops      []CatalogHop   `json:"hops"`
	Yeasts    []CatalogYeast `json:"yeasts"`
}

// LoadCatalog loads the ingredient catalog from a JSON file
func LoadCatalog(filePath string) (*Catalog, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &c, nil
}

// SaveCatalog saves the ingredient catalog to a JSON file
func SaveCatalog(c *Catalog, filePath string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// GetDefaultCatalogPath returns the default path for the catalog file
func GetDefaultCatalogPath() string {
	// Try environment variable first
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return path
	}
	// Default to data/catalog.json in project root
	return "./data/catalog.json"
}

// FindGrain looks up a fermentable by name, case-insensitively.
func (c *Catalog) FindGrain(name string) (CatalogGrain, bool) {
	if c == nil {
		return CatalogGrain{}, false
	}
	for _, g := range c.Grains {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return CatalogGrain{}, false
}

// FindHop looks up a hop variety by name, case-insensitively.
func (c *Catalog) FindHop(name string) (CatalogHop, bool) {
	if c == nil {
		return CatalogHop{}, false
	}
	for _, h := range c.Hops {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return CatalogHop{}, false
}

// FindYeast looks up a yeast strain by name, case-insensitively.
func (c *Catalog) FindYeast(name string) (CatalogYeast, bool) {
	if c == nil {
		return CatalogYeast{}, false
	}
	for _, y := range c.Yeasts {
		if strings.EqualFold(y.Name, name) {
			return y, true
		}
	}
	return CatalogYeast{}, false
}
