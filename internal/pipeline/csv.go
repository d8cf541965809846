package pipeline

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteHopLedgerCSV(path string, ledger []HopRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"name",
		"timing",
		"mass_g",
		"alpha_acid",
		"time_min",
		"utilization",
		"ibu",
		"cum_ibu",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			r.Name,
			string(r.Timing),
			fmtFloat(r.MassG),
			fmtFloat(r.AlphaAcid),
			fmtFloat(r.TimeMin),
			fmtFloat(r.Utilization),
			fmtFloat(r.IBU),
			fmtFloat(r.CumIBU),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
