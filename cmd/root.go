package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/app"
	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/infra/logger"
)

const defaultConfigPath = "config.yaml"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "renewables",
		Short:         "Renewable energy projection service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "configuration file")

	load := func(cmd *cobra.Command) (*config.Config, error) {
		return loadConfig(cfgPath, cmd.Flags().Changed("config"))
	}
	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := load(cmd)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	}
	root.RunE = serve
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the API, the timeline and the configured publishers",
		RunE:  serve,
	})
	root.AddCommand(newProjectCmd(load), newCountriesCmd(), newScenariosCmd(load), newWatchCmd(load), newBackfillCmd(load))
	return root
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig falls back to defaults when the default file is absent.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
