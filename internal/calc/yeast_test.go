package calc

import (
	"math"
	"testing"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

func TestRequiredCellsB(t *testing.T) {
	// 0.75 B/mL·°P × 20 L × ~11.9°P
	plato := SGToPlato(1.048)
	want := 0.75 * 20 * plato
	if got := RequiredCellsB(0, 20, 1.048); !almostEqual(got, want, 1e-9) {
		t.Errorf("RequiredCellsB = %v, want %v", got, want)
	}
	if got := RequiredCellsB(1.0, 20, 1.048); !almostEqual(got, 20*plato, 1e-9) {
		t.Errorf("explicit pitch rate = %v", got)
	}
	if got := RequiredCellsB(0.75, 0, 1.048); got != 0 {
		t.Errorf("zero volume = %v, want 0", got)
	}
	if got := RequiredCellsB(0.75, 20, math.NaN()); got != 0 {
		t.Errorf("NaN gravity = %v, want 0", got)
	}
}

func TestAvailableCellsB(t *testing.T) {
	tests := []struct {
		name  string
		pitch model.YeastPitch
		want  float64
		tol   float64
	}{
		{"one dry sachet", model.YeastPitch{Form: model.YeastFormDry, Packs: 1}, 66, 1e-9},
		{"two dry sachets", model.YeastPitch{Form: model.YeastFormDry, Packs: 2}, 132, 1e-9},
		{"fresh liquid pack defaults to 100B", model.YeastPitch{Form: model.YeastFormLiquid, Packs: 1}, 100, 1e-9},
		{"200B pack", model.YeastPitch{Form: model.YeastFormLiquid, Packs: 1, BillionsPerPack: 200}, 200, 1e-9},
		{"30-day-old liquid", model.YeastPitch{Form: model.YeastFormLiquid, Packs: 1, DaysSinceManufacture: 30}, 100 * (1 - 0.007*30), 1e-9},
		{"ancient liquid floors at zero", model.YeastPitch{Form: model.YeastFormLiquid, Packs: 1, DaysSinceManufacture: 400}, 0, 0},
		{"slurry", model.YeastPitch{Form: model.YeastFormSlurry, SlurryVolumeL: 0.5, SlurryDensityBPerML: 1.2}, 600, 1e-9},
		{"no packs", model.YeastPitch{Form: model.YeastFormDry}, 0, 0},
		{"unknown form", model.YeastPitch{Form: "spores", Packs: 3}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailableCellsB(tt.pitch); !almostEqual(got, tt.want, tt.tol) {
				t.Errorf("AvailableCellsB = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWhiteModelSaturation(t *testing.T) {
	step := model.YeastStarterStep{VolumeL: 1, GravitySG: 1.037, Model: model.GrowthModelWhite}
	res := GrowStarter(180, []model.YeastStarterStep{step})
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if !res[0].Saturated {
		t.Error("expected saturation at 180B into 1L")
	}
	if !almostEqual(res[0].EndCellsB, 200, 1e-9) {
		t.Errorf("EndCellsB = %v, want ceiling 200", res[0].EndCellsB)
	}
}

func TestWhiteModelNeverExceedsCeiling(t *testing.T) {
	for _, start := range []float64{10, 50, 100, 180, 500} {
		for _, vol := range []float64{0.5, 1, 2, 4} {
			step := model.YeastStarterStep{VolumeL: vol, GravitySG: 1.037, Model: model.GrowthModelWhite}
			end := FinalCellsB(start, []model.YeastStarterStep{step})
			if end > 200*vol+1e-9 {
				t.Errorf("start=%v vol=%v: end %v exceeds 200×%v", start, vol, end, vol)
			}
		}
	}
}

func TestBraukaiserModel(t *testing.T) {
	step := model.YeastStarterStep{VolumeL: 2, GravitySG: 1.037, Model: model.GrowthModelBraukaiser}
	res := GrowStarter(100, []model.YeastStarterStep{step})[0]

	wantDME := DMEGramsForGravity(2, 1.037)
	if !almostEqual(res.DMEGrams, wantDME, 1e-9) {
		t.Errorf("DMEGrams = %v, want %v", res.DMEGrams, wantDME)
	}
	if !almostEqual(res.EndCellsB, 100+wantDME*1.4, 1e-9) {
		t.Errorf("EndCellsB = %v, want %v", res.EndCellsB, 100+wantDME*1.4)
	}
	if res.Saturated {
		t.Error("Braukaiser model must never report saturation")
	}
}

// The White model saturates at 200 B/L; the Braukaiser model deliberately
// does not. Same inputs, different ceilings — this asymmetry is part of the
// models' definitions.
func TestGrowthModelSaturationAsymmetry(t *testing.T) {
	white := model.YeastStarterStep{VolumeL: 1, GravitySG: 1.040, Model: model.GrowthModelWhite}
	brau := model.YeastStarterStep{VolumeL: 1, GravitySG: 1.040, Model: model.GrowthModelBraukaiser}

	start := 180.0
	whiteEnd := FinalCellsB(start, []model.YeastStarterStep{white})
	brauEnd := FinalCellsB(start, []model.YeastStarterStep{brau})

	if whiteEnd > 200+1e-9 {
		t.Errorf("White end %v exceeds its 200 B ceiling", whiteEnd)
	}
	if brauEnd <= 200 {
		t.Errorf("Braukaiser end %v should pass the White ceiling for these inputs", brauEnd)
	}
	if whiteEnd == brauEnd {
		t.Error("models should diverge once growth would exceed the cap")
	}
}

func TestShakingBoostsGrowth(t *testing.T) {
	still := model.YeastStarterStep{VolumeL: 2, GravitySG: 1.037, Model: model.GrowthModelWhite, Aeration: model.AerationNone}
	shaken := model.YeastStarterStep{VolumeL: 2, GravitySG: 1.037, Model: model.GrowthModelWhite, Aeration: model.AerationShaking}

	endStill := FinalCellsB(100, []model.YeastStarterStep{still})
	endShaken := FinalCellsB(100, []model.YeastStarterStep{shaken})
	if endShaken <= endStill {
		t.Errorf("shaking should grow more cells: %v <= %v", endShaken, endStill)
	}
}

func TestMultiStepChaining(t *testing.T) {
	steps := []model.YeastStarterStep{
		{VolumeL: 1, GravitySG: 1.037, Model: model.GrowthModelWhite},
		{VolumeL: 2, GravitySG: 1.037, Model: model.GrowthModelWhite},
		{VolumeL: 4, GravitySG: 1.037, Model: model.GrowthModelBraukaiser},
	}
	res := GrowStarter(50, steps)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	if res[0].StartCellsB != 50 {
		t.Errorf("first step starts at %v, want 50", res[0].StartCellsB)
	}
	for i := 1; i < len(res); i++ {
		if res[i].StartCellsB != res[i-1].EndCellsB {
			t.Errorf("step %d starts at %v, want previous end %v", i, res[i].StartCellsB, res[i-1].EndCellsB)
		}
	}
	if got := FinalCellsB(50, steps); got != res[2].EndCellsB {
		t.Errorf("FinalCellsB = %v, want %v", got, res[2].EndCellsB)
	}
}

func TestGrowStarterDegenerateInputs(t *testing.T) {
	zeroVol := model.YeastStarterStep{VolumeL: 0, GravitySG: 1.037, Model: model.GrowthModelWhite}
	res := GrowStarter(100, []model.YeastStarterStep{zeroVol})[0]
	if res.EndCellsB != 100 {
		t.Errorf("zero-volume step should be a no-op: %v", res.EndCellsB)
	}

	if got := FinalCellsB(0, []model.YeastStarterStep{{VolumeL: 1, GravitySG: 1.037, Model: model.GrowthModelWhite}}); got != 0 {
		t.Errorf("growing zero cells in the White model = %v, want 0", got)
	}
	if got := FinalCellsB(75, nil); got != 75 {
		t.Errorf("no steps should return the initial count: %v", got)
	}
}

func TestDMEGramsForGravity(t *testing.T) {
	// 40 points into 1 gal needs 40/45 lb of DME.
	want := 40.0 / 45.0 * 453.59237
	if got := DMEGramsForGravity(3.78541, 1.040); !almostEqual(got, want, 1e-6) {
		t.Errorf("DMEGramsForGravity = %v, want %v", got, want)
	}
	if got := DMEGramsForGravity(2, 0.990); got != 0 {
		t.Errorf("sub-1.000 gravity = %v, want 0", got)
	}
	if got := DMEGramsForGravity(0, 1.040); got != 0 {
		t.Errorf("zero volume = %v, want 0", got)
	}
}
