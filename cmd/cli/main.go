package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/config"
	"github.com/AngelsOB/BrewTool-sub000/internal/data"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
	"github.com/AngelsOB/BrewTool-sub000/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calc":
		cmdCalc(os.Args[2:])
	case "scale":
		cmdScale(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --recipe recipe.json --config examples/config.yaml --out results/hops.csv")
	fmt.Println("  cli scale --abv 5.5 --volume 20 --efficiency 0.72 --points 36")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - calc prints the derived snapshot and writes the per-addition hop CSV")
	fmt.Println("  - scale sizes a single-grain bill for a target ABV")
}

func cmdCalc(args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	recipePath := fs.String("recipe", "recipe.json", "Path to recipe JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional output CSV path for the hop ledger")
	_ = fs.Parse(args)

	recipe, err := data.LoadRecipeJSON(*recipePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recipe: %v\n", err)
		os.Exit(1)
	}

	defaults := pipeline.Defaults{}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		defaults = cfg.Defaults.ToPipelineDefaults()
		// A recipe without its own equipment uses the configured rig.
		if recipe.Equipment.MashThicknessLPerKg == 0 {
			recipe.Equipment = cfg.Equipment.ToModelParams()
		}
	}

	snap := pipeline.Run(*recipe, defaults)

	fmt.Printf("OG=%.4f FG=%.4f (%.1f°P)\n", snap.OG, snap.FG, snap.Plato)
	fmt.Printf("ABV=%.2f%% (simple) %.2f%% (abw) IBU=%.1f SRM=%.1f %s\n",
		snap.ABVSimple, snap.ABVByWeight, snap.IBU, snap.SRM, snap.ColorHex)
	fmt.Printf("Water: pre-boil=%.2fL mash=%.2fL sparge=%.2fL", snap.Volumes.PreBoilL, snap.Volumes.MashWaterL, snap.Volumes.SpargeWaterL)
	if snap.Volumes.CapacityExceeded {
		fmt.Printf(" (mash tun capacity exceeded)")
	}
	fmt.Println()
	fmt.Printf("Yeast: need %.0fB, have %.0fB", snap.RequiredCellsB, snap.FinalCellsB)
	if snap.CellsShortB < 0 {
		fmt.Printf(" (short %.0fB)", -snap.CellsShortB)
	}
	fmt.Println()

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
			os.Exit(1)
		}
		if err := pipeline.WriteHopLedgerCSV(*outPath, snap.HopLedger); err != nil {
			fmt.Fprintf(os.Stderr, "write ledger: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(snap.HopLedger), *outPath)
	}
}

func cmdScale(args []string) {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	abv := fs.Float64("abv", 0, "Target ABV percent")
	volume := fs.Float64("volume", 20, "Batch volume in liters")
	efficiency := fs.Float64("efficiency", 0.72, "Mash efficiency fraction")
	points := fs.Float64("points", 36, "Grain potential in points per pound per gallon")
	attenuation := fs.Float64("attenuation", 0, "Yeast attenuation fraction (0 = default)")
	_ = fs.Parse(args)

	if *abv <= 0 {
		fmt.Println("--abv is required")
		os.Exit(2)
	}

	shares := []calc.GrainShare{{Name: "base malt", Fraction: 1, PotentialPoints: *points, Kind: model.GrainKindGrain}}
	grains := calc.GrainWeightsForABV(shares, *abv, *volume, *efficiency, *attenuation)
	if grains == nil {
		fmt.Fprintln(os.Stderr, "invalid scale inputs")
		os.Exit(1)
	}

	total := 0.0
	for _, g := range grains {
		fmt.Printf("%-20s %.3f kg\n", g.Name, g.WeightKg)
		total += g.WeightKg
	}
	fmt.Printf("%-20s %.3f kg\n", "total", total)
}
