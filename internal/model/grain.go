package model

// GrainKind classifies how a fermentable converts during the mash.
// Keep these values stable; they are used in JSON requests and CSV output.
type GrainKind string

const (
	GrainKindGrain   GrainKind = "grain"
	GrainKindAdjunct GrainKind = "adjunct"
	GrainKindExtract GrainKind = "extract"
	GrainKindSugar   GrainKind = "sugar"
)

// Mashable reports whether mash efficiency applies to this kind.
// Extracts and sugars always convert at 100%.
func (k GrainKind) Mashable() bool {
	switch k {
	case GrainKindGrain, GrainKindAdjunct:
		return true
	default:
		return false
	}
}

// GrainBillItem is one fermentable in the grain bill.
// Units:
// - WeightKg: kg
// - ColorLovibond: °L
// - PotentialPoints: gravity points per lb per gallon at 100% conversion
type GrainBillItem struct {
	Name            string    `json:"name,omitempty"`
	WeightKg        float64   `json:"weight_kg"`
	ColorLovibond   float64   `json:"color_lovibond"`
	PotentialPoints float64   `json:"potential_points"`
	Kind            GrainKind `json:"kind"`
}
