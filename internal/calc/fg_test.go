package calc

import (
	"math"
	"testing"

	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

func TestEstimateFGNoSchedules(t *testing.T) {
	// With no mash or fermentation steps the only adjustment is the
	// fermentation-days term at its zero-day default: (0-10)*0.002 = -0.02.
	got := EstimateFG(1.050, 0.75, nil, nil)
	want := 1.0 + 0.050*(1.0-0.73)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("EstimateFG = %v, want %v", got, want)
	}
}

func TestEstimateFGDefaultAttenuation(t *testing.T) {
	withDefault := EstimateFG(1.050, 0, nil, nil)
	explicit := EstimateFG(1.050, DefaultAttenuation, nil, nil)
	if withDefault != explicit {
		t.Errorf("zero attenuation should fall back to default: %v vs %v", withDefault, explicit)
	}
	if got := EstimateFG(1.050, math.NaN(), nil, nil); got != explicit {
		t.Errorf("NaN attenuation should fall back to default: %v", got)
	}
}

func TestEstimateFGCoolerMashFerments(t *testing.T) {
	cool := []model.MashStep{{Type: model.MashStepInfusion, TempC: 63, DurationMin: 60}}
	warm := []model.MashStep{{Type: model.MashStepInfusion, TempC: 69, DurationMin: 60}}
	fgCool := EstimateFG(1.050, 0.75, cool, nil)
	fgWarm := EstimateFG(1.050, 0.75, warm, nil)
	if fgCool >= fgWarm {
		t.Errorf("cooler mash should finish lower: cool=%v warm=%v", fgCool, fgWarm)
	}
}

func TestEstimateFGDecoctionBonus(t *testing.T) {
	infusion := []model.MashStep{{Type: model.MashStepInfusion, TempC: 66, DurationMin: 60}}
	decoction := []model.MashStep{{Type: model.MashStepDecoction, TempC: 66, DurationMin: 60, DecoctionFraction: 0.3}}
	fgInf := EstimateFG(1.050, 0.75, infusion, nil)
	fgDec := EstimateFG(1.050, 0.75, decoction, nil)
	// Decoction adds 0.005*60/60 = 0.005 attenuation over the infusion mash.
	wantDelta := 0.050 * 0.005
	if !almostEqual(fgInf-fgDec, wantDelta, 1e-9) {
		t.Errorf("decoction delta = %v, want %v", fgInf-fgDec, wantDelta)
	}
}

func TestEstimateFGMashTimeClamp(t *testing.T) {
	// 240 min deviates +180 from the reference; raw adjustment 0.06 must
	// clamp to +0.03.
	long := []model.MashStep{{Type: model.MashStepInfusion, TempC: 66, DurationMin: 240}}
	ref := []model.MashStep{{Type: model.MashStepInfusion, TempC: 66, DurationMin: 60}}
	fgLong := EstimateFG(1.050, 0.75, long, nil)
	fgRef := EstimateFG(1.050, 0.75, ref, nil)
	if !almostEqual(fgRef-fgLong, 0.050*0.03, 1e-9) {
		t.Errorf("mash-time clamp delta = %v, want %v", fgRef-fgLong, 0.050*0.03)
	}
}

func TestEstimateFGAttenuationCeiling(t *testing.T) {
	// Pathological profile: very cold long mash plus warm long fermentation
	// pushes raw attenuation past 0.95; FG must come from exactly 0.95.
	mash := []model.MashStep{{Type: model.MashStepInfusion, TempC: 40, DurationMin: 120}}
	ferm := []model.FermentationStep{{Stage: model.StagePrimary, TempC: 25, DurationDays: 14}}
	got := EstimateFG(1.060, 0.75, mash, ferm)
	want := 1.0 + 0.060*(1.0-0.95)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("FG above ceiling = %v, want %v (clamped at 0.95)", got, want)
	}
}

func TestEstimateFGAttenuationFloor(t *testing.T) {
	// Very hot mash pushes raw attenuation below 0.60.
	mash := []model.MashStep{{Type: model.MashStepInfusion, TempC: 78, DurationMin: 90}}
	got := EstimateFG(1.060, 0.62, mash, nil)
	want := 1.0 + 0.060*(1.0-0.60)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("FG below floor = %v, want %v (clamped at 0.60)", got, want)
	}
}

func TestEstimateFGFermentationWeighting(t *testing.T) {
	// 10 days at 18 and 10 days at 26 average to 22°C over 20 days:
	// (22-20)*0.004 + (20-10)*0.002 = 0.028.
	ferm := []model.FermentationStep{
		{Stage: model.StagePrimary, TempC: 18, DurationDays: 10},
		{Stage: model.StageConditioning, TempC: 26, DurationDays: 10},
	}
	got := EstimateFG(1.050, 0.75, nil, ferm)
	want := 1.0 + 0.050*(1.0-(0.75+0.028))
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("EstimateFG = %v, want %v", got, want)
	}
}

func TestEstimateFGNonFiniteOG(t *testing.T) {
	if got := EstimateFG(math.NaN(), 0.75, nil, nil); got != 0 {
		t.Errorf("EstimateFG(NaN OG) = %v, want 0", got)
	}
}
