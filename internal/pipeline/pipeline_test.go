package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testRecipe() model.Recipe {
	return model.Recipe{
		Name:         "pale ale",
		BatchVolumeL: 20,
		Efficiency:   0.72,
		Method:       model.BrewMethodThreeVessel,
		Grains: []model.GrainBillItem{
			{Name: "pale malt", WeightKg: 2, ColorLovibond: 2, PotentialPoints: 36, Kind: model.GrainKindGrain},
		},
		Hops: []model.HopAddition{
			{Name: "magnum", MassG: 20, AlphaAcid: 0.10, Timing: model.HopTimingBoil, BoilTimeMin: 60},
		},
		Equipment: model.EquipmentParams{
			MashThicknessLPerKg:   3,
			GrainAbsorptionLPerKg: 1,
			MashTunDeadspaceL:     2,
			BoilTimeMin:           60,
			BoilOffRateLPerHr:     3,
			CoolingShrinkage:      0.04,
			KettleLossL:           1,
			ChillerLossL:          0.5,
		},
	}
}

func TestRunGravityChain(t *testing.T) {
	snap := Run(testRecipe(), Defaults{})

	wantPoints := calc.PointsFromGrainBill(testRecipe().Grains, 20, 0.72)
	wantOG := 1 + wantPoints/1000
	if !almostEqual(snap.OG, wantOG, 1e-9) {
		t.Fatalf("OG = %v, want %v", snap.OG, wantOG)
	}
	if snap.FG <= 1.0 || snap.FG >= snap.OG {
		t.Fatalf("FG = %v out of range (OG %v)", snap.FG, snap.OG)
	}
	wantABV := (snap.OG - snap.FG) * 131.25
	if !almostEqual(snap.ABVSimple, wantABV, 1e-9) {
		t.Fatalf("ABVSimple = %v, want %v", snap.ABVSimple, wantABV)
	}
	if snap.ABVByWeight <= 0 {
		t.Fatalf("ABVByWeight = %v, want > 0", snap.ABVByWeight)
	}
}

func TestRunBitternessMatchesDirectFormula(t *testing.T) {
	r := testRecipe()
	snap := Run(r, Defaults{})

	want := calc.IBUTotal(r.Hops, r.BatchVolumeL, snap.OG)
	if !almostEqual(snap.IBU, want, 1e-9) {
		t.Fatalf("IBU = %v, want %v", snap.IBU, want)
	}
	// A 20 g / 10% AA / 60 min addition into 20 L of mid-gravity wort lands
	// in normal pale ale territory.
	if snap.IBU < 15 || snap.IBU > 45 {
		t.Fatalf("IBU = %v, want within [15, 45]", snap.IBU)
	}
}

func TestRunHopLedgerCumulative(t *testing.T) {
	r := testRecipe()
	r.Hops = append(r.Hops,
		model.HopAddition{Name: "cascade", MassG: 30, AlphaAcid: 0.06, Timing: model.HopTimingWhirlpool, WhirlpoolTimeMin: 15, WhirlpoolTempC: 80},
		model.HopAddition{Name: "citra", MassG: 50, AlphaAcid: 0.12, Timing: model.HopTimingDryHop},
	)
	snap := Run(r, Defaults{})

	if len(snap.HopLedger) != 3 {
		t.Fatalf("ledger rows = %d, want 3", len(snap.HopLedger))
	}
	sum := 0.0
	for i, row := range snap.HopLedger {
		if row.Index != i {
			t.Fatalf("row %d has index %d", i, row.Index)
		}
		sum += row.IBU
		if !almostEqual(row.CumIBU, sum, 1e-9) {
			t.Fatalf("row %d cum IBU = %v, want %v", i, row.CumIBU, sum)
		}
	}
	if !almostEqual(snap.IBU, sum, 1e-9) {
		t.Fatalf("total IBU = %v, ledger sum = %v", snap.IBU, sum)
	}
	if snap.HopLedger[1].TimeMin != 15 {
		t.Fatalf("whirlpool row time = %v, want 15", snap.HopLedger[1].TimeMin)
	}
}

func TestRunWaterVolumesUseHopAbsorptionDefault(t *testing.T) {
	r := testRecipe()
	snap := Run(r, Defaults{})

	eq := r.Equipment
	eq.HopAbsorptionLPerKg = model.DefaultHopAbsorptionLPerKg
	want := calc.ComputeWaterVolumes(r.Method, r.TotalGrainKg(), r.BatchVolumeL, eq, r.KettleHopMassKg())
	if !almostEqual(snap.Volumes.PreBoilL, want.PreBoilL, 1e-9) {
		t.Fatalf("pre-boil = %v, want %v", snap.Volumes.PreBoilL, want.PreBoilL)
	}
	if !almostEqual(snap.Volumes.MashWaterL+snap.Volumes.SpargeWaterL, want.MashWaterL+want.SpargeWaterL, 1e-9) {
		t.Fatalf("total water = %v, want %v",
			snap.Volumes.MashWaterL+snap.Volumes.SpargeWaterL, want.MashWaterL+want.SpargeWaterL)
	}
}

func TestRunWaterChemistryMix(t *testing.T) {
	r := testRecipe()
	r.SourceWater = model.WaterProfile{CaPPM: 20, SO4PPM: 30}
	r.MashSalts = model.SaltAdditions{GypsumG: 2}
	snap := Run(r, Defaults{})

	if snap.MashWaterProfile.CaPPM <= r.SourceWater.CaPPM {
		t.Fatalf("mash Ca = %v, want above source %v", snap.MashWaterProfile.CaPPM, r.SourceWater.CaPPM)
	}
	if !almostEqual(snap.SpargeWaterProfile.CaPPM, r.SourceWater.CaPPM, 1e-9) {
		t.Fatalf("sparge Ca = %v, want unchanged %v", snap.SpargeWaterProfile.CaPPM, r.SourceWater.CaPPM)
	}
	// The blend sits between the two bodies.
	if snap.MixedWaterProfile.CaPPM <= snap.SpargeWaterProfile.CaPPM ||
		snap.MixedWaterProfile.CaPPM >= snap.MashWaterProfile.CaPPM {
		t.Fatalf("mixed Ca = %v, want between %v and %v",
			snap.MixedWaterProfile.CaPPM, snap.SpargeWaterProfile.CaPPM, snap.MashWaterProfile.CaPPM)
	}
	if snap.WaterDiff != nil {
		t.Fatalf("water diff set without a target profile")
	}

	r.TargetWater = &model.WaterProfile{CaPPM: 100}
	snap = Run(r, Defaults{})
	if snap.WaterDiff == nil {
		t.Fatalf("water diff missing with a target profile")
	}
}

func TestRunYeastChain(t *testing.T) {
	r := testRecipe()
	r.Pitch = model.YeastPitch{Form: model.YeastFormLiquid, Packs: 1, BillionsPerPack: 100}
	r.StarterSteps = []model.YeastStarterStep{
		{VolumeL: 2, GravitySG: 1.037},
	}
	snap := Run(r, Defaults{})

	wantRequired := calc.RequiredCellsB(calc.DefaultPitchRate, r.BatchVolumeL, snap.OG)
	if !almostEqual(snap.RequiredCellsB, wantRequired, 1e-9) {
		t.Fatalf("required cells = %v, want %v", snap.RequiredCellsB, wantRequired)
	}
	if snap.AvailableCellsB != 100 {
		t.Fatalf("available cells = %v, want 100", snap.AvailableCellsB)
	}
	if len(snap.StarterSteps) != 1 {
		t.Fatalf("starter steps = %d, want 1", len(snap.StarterSteps))
	}
	if snap.FinalCellsB <= snap.AvailableCellsB {
		t.Fatalf("final cells = %v, want growth above %v", snap.FinalCellsB, snap.AvailableCellsB)
	}
	if !almostEqual(snap.CellsShortB, snap.FinalCellsB-snap.RequiredCellsB, 1e-9) {
		t.Fatalf("cells short = %v, want %v", snap.CellsShortB, snap.FinalCellsB-snap.RequiredCellsB)
	}
}

func TestRunEmptyRecipe(t *testing.T) {
	snap := Run(model.Recipe{}, Defaults{})

	if snap.OG != 1.0 {
		t.Fatalf("OG = %v, want 1.0", snap.OG)
	}
	if snap.IBU != 0 {
		t.Fatalf("IBU = %v, want 0", snap.IBU)
	}
	if snap.HopLedger != nil {
		t.Fatalf("ledger = %v, want nil", snap.HopLedger)
	}
	for _, v := range []float64{snap.FG, snap.SRM, snap.Volumes.PreBoilL, snap.FinalCellsB} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite derived value in empty snapshot")
		}
	}
}

func TestWriteHopLedgerCSV(t *testing.T) {
	r := testRecipe()
	snap := Run(r, Defaults{})

	path := filepath.Join(t.TempDir(), "hops.csv")
	if err := WriteHopLedgerCSV(path, snap.HopLedger); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 1+len(snap.HopLedger) {
		t.Fatalf("csv lines = %d, want %d", len(lines), 1+len(snap.HopLedger))
	}
	if !strings.HasPrefix(lines[0], "index,name,timing") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "magnum") {
		t.Fatalf("row missing hop name: %q", lines[1])
	}
}
