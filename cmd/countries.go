package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/pkg/export"
)

func newCountriesCmd() *cobra.Command {
	var (
		year   int
		format string
	)
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Print the historical snapshot of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := dataset.Default()
			first, last := data.YearRange()
			if year < first || year > last {
				return fmt.Errorf("year %d outside [%d,%d]", year, first, last)
			}
			snap := data.Snapshot(year)
			switch format {
			case "table":
				return writeSnapshotTable(cmd.OutOrStdout(), snap)
			case "json":
				return writeSnapshotJSON(cmd.OutOrStdout(), year, snap)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().IntVar(&year, "year", dataset.LastYear, "historical year")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "table or json")
	return cmd
}

func writeSnapshotTable(w io.Writer, snap []model.EnergyData) error {
	rows := make([][]string, 0, len(snap)+1)
	for _, d := range snap {
		rows = append(rows, []string{
			d.Country,
			export.Decimal(d.Solar),
			export.Decimal(d.Wind),
			export.Decimal(d.Hydro),
			export.Decimal(d.Total),
			export.Decimal(d.RenewablePercentage),
			export.Decimal(d.CO2Reduction),
		})
	}
	s := dataset.Summarize(snap)
	rows = append(rows, []string{
		"Total",
		export.Decimal(s.SolarCapacity),
		export.Decimal(s.WindCapacity),
		export.Decimal(s.HydroCapacity),
		export.Decimal(s.TotalCapacity),
		export.Decimal(s.AvgRenewablePercentage),
		export.Decimal(s.TotalCO2Reduction),
	})
	return export.WriteTable(w,
		[]string{"Country", "Solar GW", "Wind GW", "Hydro GW", "Total GW", "Renewable %", "CO2 reduction %"},
		rows)
}

func writeSnapshotJSON(w io.Writer, year int, snap []model.EnergyData) error {
	return writeJSON(w, struct {
		Year      int                `json:"year"`
		Countries []model.EnergyData `json:"countries"`
		Summary   dataset.Summary    `json:"summary"`
	}{year, snap, dataset.Summarize(snap)})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
