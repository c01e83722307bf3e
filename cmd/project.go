package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/app"
	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/pkg/export"
)

type projectOptions struct {
	year       int
	percentage float64
	target     float64
	scenario   string
	horizon    int
	format     string
}

func newProjectCmd(load func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	var o projectOptions
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the projection for the given inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("horizon") {
				o.horizon = cfg.Forecast.Horizon
			}
			if !cmd.Flags().Changed("percentage") {
				data := dataset.Default()
				o.percentage = data.AverageRenewable(data.ClampYear(o.year))
			}
			points, err := project(cfg.Forecast, o)
			if err != nil {
				return err
			}
			return writePoints(cmd.OutOrStdout(), o, points)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.year, "year", dataset.LastYear, "year the projection starts from")
	f.Float64Var(&o.percentage, "percentage", 0, "current renewable percentage (default: dataset average for --year)")
	f.Float64Var(&o.target, "target", 50, "CO2 reduction target in percent")
	f.StringVar(&o.scenario, "scenario", model.ScenarioModerate.String(), "conservative, moderate or aggressive")
	f.IntVar(&o.horizon, "horizon", projection.DefaultHorizon, "number of projected years")
	f.StringVarP(&o.format, "format", "o", "table", "table, json, csv, yaml or html")
	return cmd
}

func project(cfg config.ForecastConfig, o projectOptions) ([]model.ForecastPoint, error) {
	sc, err := model.ParseScenario(o.scenario)
	if err != nil {
		return nil, err
	}
	proj, err := app.NewProjector(cfg)
	if err != nil {
		return nil, err
	}
	in, err := cfg.Policy().Apply(projection.Input{
		CurrentYear:        o.year,
		CurrentPercentage:  o.percentage,
		TargetCO2Reduction: o.target,
		Scenario:           sc,
		Horizon:            o.horizon,
	})
	if err != nil {
		return nil, err
	}
	return proj.Project(in)
}

func writePoints(w io.Writer, o projectOptions, points []model.ForecastPoint) error {
	switch o.format {
	case "table":
		return export.WriteForecastTable(w, points)
	case "json":
		return export.WriteJSON(w, points)
	case "csv":
		return export.WriteCSV(w, points)
	case "yaml":
		return export.WriteYAML(w, points)
	case "html":
		sc, _ := model.ParseScenario(o.scenario)
		return export.WriteForecastChart(w, export.ChartTitle(o.year, sc, o.target), points)
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}
