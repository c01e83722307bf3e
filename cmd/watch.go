package cmd

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/kilianp07/renewables/config"
	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/infra/mqtt"
)

var newSubscriber = func(cfg mqtt.Config, handle mqtt.UpdateHandler) (io.Closer, error) {
	s, err := mqtt.NewPahoSubscriber(cfg, handle)
	if err != nil {
		return nil, err
	}
	return closerFunc(s.Close), nil
}

type closerFunc func()

func (f closerFunc) Close() error { f(); return nil }

func newWatchCmd(load func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the forecast updates published on the MQTT broker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if cfg.MQTT.Broker == "" {
				return errors.New("mqtt.broker is not configured")
			}
			mc := cfg.MQTT
			if cmd.Flags().Changed("prefix") {
				mc.TopicPrefix = prefix
			}
			var mu sync.Mutex
			out := cmd.OutOrStdout()
			sub, err := newSubscriber(mc, func(_ string, u session.Update) {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintln(out, mqtt.FormatUpdate(u))
			})
			if err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			defer sub.Close()
			<-cmd.Context().Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", mqtt.DefaultTopicPrefix, "topic prefix to follow")
	return cmd
}
