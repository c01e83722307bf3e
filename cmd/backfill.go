package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/app"
	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/core/dataset"
	coremetrics "github.com/kilianp07/renewables/core/metrics"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/jobs/backfill"
)

func newBackfillCmd(load func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	var (
		opts      backfill.Options
		scenarios []string
	)
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Replay historical years into the configured metrics sinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if len(cfg.Metrics.Sinks) == 0 {
				return errors.New("metrics.sinks is empty")
			}
			for _, s := range scenarios {
				sc, err := model.ParseScenario(s)
				if err != nil {
					return err
				}
				opts.Scenarios = append(opts.Scenarios, sc)
			}
			if !cmd.Flags().Changed("horizon") {
				opts.Horizon = cfg.Forecast.Horizon
			}
			proj, err := app.NewProjector(cfg.Forecast)
			if err != nil {
				return err
			}
			sink, err := coremetrics.NewProjectionSink(cfg.Metrics.Sinks)
			if err != nil {
				return fmt.Errorf("metrics sinks: %w", err)
			}
			if c, ok := sink.(interface{ Close() }); ok {
				defer c.Close()
			}
			rep, err := backfill.Backfill(cmd.Context(), dataset.Default(), proj, cfg.Forecast.Policy(), sink, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d years, %d snapshots, %d projections\n", rep.Years, rep.Snapshots, rep.Projections)
			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.From, "from", dataset.FirstYear, "first replayed year")
	f.IntVar(&opts.To, "to", dataset.LastYear, "last replayed year")
	f.Float64Var(&opts.Target, "target", 50, "CO2 reduction target in percent")
	f.StringSliceVar(&scenarios, "scenario", []string{"conservative", "moderate", "aggressive"}, "scenarios projected from each year")
	f.IntVar(&opts.Horizon, "horizon", 0, "number of projected years (default: forecast.horizon)")
	return cmd
}
