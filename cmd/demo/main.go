package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AngelsOB/BrewTool-sub000/internal/config"
	"github.com/AngelsOB/BrewTool-sub000/internal/data"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/pipeline"
)

// Demo:
// - Build (or load) a recipe
// - Run the calculation pipeline once
// - Print the snapshot to show how the pieces fit together
func main() {
	recipePath := flag.String("recipe", "", "Path to recipe JSON (optional, built-in pale ale if omitted)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write the hop ledger CSV (e.g. results/hops.csv)")
	flag.Parse()

	recipe := sampleRecipe()
	if *recipePath != "" {
		loaded, err := data.LoadRecipeJSON(*recipePath)
		if err != nil {
			panic(err)
		}
		recipe = *loaded
	}

	defaults := pipeline.Defaults{}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		defaults = cfg.Defaults.ToPipelineDefaults()
		if recipe.Equipment.MashThicknessLPerKg == 0 {
			recipe.Equipment = cfg.Equipment.ToModelParams()
		}
	}

	snap := pipeline.Run(recipe, defaults)

	fmt.Printf("%s (%.1f L at %.0f%% efficiency)\n", recipe.Name, recipe.BatchVolumeL, recipe.Efficiency*100)
	fmt.Printf("  OG %.4f  FG %.4f  ABV %.2f%%  IBU %.1f  SRM %.1f %s\n",
		snap.OG, snap.FG, snap.ABVSimple, snap.IBU, snap.SRM, snap.ColorHex)
	fmt.Printf("  pre-boil %.2f L  mash %.2f L  sparge %.2f L\n",
		snap.Volumes.PreBoilL, snap.Volumes.MashWaterL, snap.Volumes.SpargeWaterL)
	fmt.Printf("  yeast: need %.0fB, pitching %.0fB\n", snap.RequiredCellsB, snap.FinalCellsB)
	for _, s := range snap.StarterSteps {
		fmt.Printf("  starter step %d: %.1f L @ %.3f -> %.0fB (+%.0fB)\n",
			s.Index, s.VolumeL, s.GravitySG, s.EndCellsB, s.GrowthB)
	}

	if *outCSV != "" {
		if err := pipeline.WriteHopLedgerCSV(*outCSV, snap.HopLedger); err != nil {
			fmt.Fprintf(os.Stderr, "write ledger: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d hop rows to %s\n", len(snap.HopLedger), *outCSV)
	}
}

func sampleRecipe() model.Recipe {
	return model.Recipe{
		Name:         "house pale ale",
		BatchVolumeL: 20,
		Efficiency:   0.72,
		Method:       model.BrewMethodThreeVessel,
		Grains: []model.GrainBillItem{
			{Name: "pale malt", WeightKg: 4.2, ColorLovibond: 2, PotentialPoints: 36, Kind: model.GrainKindGrain},
			{Name: "crystal 60", WeightKg: 0.3, ColorLovibond: 60, PotentialPoints: 34, Kind: model.GrainKindGrain},
		},
		Hops: []model.HopAddition{
			{Name: "magnum", MassG: 15, AlphaAcid: 0.12, Timing: model.HopTimingBoil, BoilTimeMin: 60},
			{Name: "cascade", MassG: 30, AlphaAcid: 0.06, Timing: model.HopTimingWhirlpool, WhirlpoolTimeMin: 15, WhirlpoolTempC: 80},
		},
		MashSteps: []model.MashStep{
			{Type: model.MashStepInfusion, TempC: 66, DurationMin: 60},
		},
		Fermentation: []model.FermentationStep{
			{Stage: model.StagePrimary, TempC: 19, DurationDays: 10},
		},
		Pitch: model.YeastPitch{Form: model.YeastFormDry, Packs: 1},
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
