package model

// FermentationStage orders the stages of a fermentation plan.
type FermentationStage string

const (
	StagePrimary      FermentationStage = "primary"
	StageSecondary    FermentationStage = "secondary"
	StageConditioning FermentationStage = "conditioning"
	StageColdCrash    FermentationStage = "cold_crash"
	StagePackaging    FermentationStage = "packaging"
)

// Order returns the position of the stage in a normal plan. Unknown stages
// sort last.
func (s FermentationStage) Order() int {
	switch s {
	case StagePrimary:
		return 0
	case StageSecondary:
		return 1
	case StageConditioning:
		return 2
	case StageColdCrash:
		return 3
	case StagePackaging:
		return 4
	default:
		return 5
	}
}

// FermentationStep is one stage of the fermentation plan.
// PressurePSI is carried for pressure-fermented recipes but no derived
// quantity currently consumes it.
type FermentationStep struct {
	Stage        FermentationStage `json:"stage"`
	TempC        float64           `json:"temp_c"`
	DurationDays float64           `json:"duration_days"`
	PressurePSI  float64           `json:"pressure_psi,omitempty"`
}
