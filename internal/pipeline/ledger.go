package pipeline

import (
	"github.com/AngelsOB/BrewTool-sub000/internal/calc"
	"github.com/AngelsOB/BrewTool-sub000/internal/model"
)

// HopRow is one row of per-addition bitterness output.
// This is the primary artifact for "where the IBUs came from".
type HopRow struct {
	Index int

	Name   string
	Timing model.HopTiming

	MassG     float64
	AlphaAcid float64
	TimeMin   float64

	Utilization float64
	IBU         float64
	CumIBU      float64
}

func buildHopLedger(hops []model.HopAddition, batchVolumeL, og float64) []HopRow {
	if len(hops) == 0 {
		return nil
	}
	rows := make([]HopRow, 0, len(hops))
	cum := 0.0
	for i, h := range hops {
		timeMin := h.BoilTimeMin
		if h.Timing == model.HopTimingWhirlpool {
			timeMin = h.WhirlpoolTimeMin
		}
		ibu := calc.IBUSingleAddition(h, batchVolumeL, og)
		cum += ibu
		rows = append(rows, HopRow{
			Index:       i,
			Name:        h.Name,
			Timing:      h.Timing,
			MassG:       h.MassG,
			AlphaAcid:   h.AlphaAcid,
			TimeMin:     timeMin,
			Utilization: calc.HopUtilization(h, og),
			IBU:         ibu,
			CumIBU:      cum,
		})
	}
	return rows
}
