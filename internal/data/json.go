package data

import (
	"encoding/json"
	"os"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

func LoadRecipeJSON(path string) (*model.Recipe, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r model.Recipe
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
