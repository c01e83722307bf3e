package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/pkg/export"
)

func newScenariosCmd(load func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the growth scenarios and their constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			catalog, err := cfg.Forecast.Catalog()
			if err != nil {
				return err
			}
			var rows [][]string
			for _, c := range catalog.All() {
				rows = append(rows, []string{
					c.Kind.String(),
					c.Kind.Label(),
					export.Decimal(c.GrowthRate),
					export.Decimal(c.CeilingPercent()),
					c.Kind.Description(),
				})
			}
			return export.WriteTable(cmd.OutOrStdout(),
				[]string{"Scenario", "Label", "Growth %/yr", "Ceiling %", "Description"}, rows)
		},
	}
}
