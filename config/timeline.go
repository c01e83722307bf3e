package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/session"
)

// TimelineConfig holds the initial selection of the interactive session.
type TimelineConfig struct {
	IntervalMS int     `json:"interval_ms"`
	StartYear  int     `json:"start_year"`
	Scenario   string  `json:"scenario"`
	Target     float64 `json:"target"`
	Autoplay   bool    `json:"autoplay"`
}

// SetDefaults applies the reference selection.
func (c *TimelineConfig) SetDefaults() {
	if c.IntervalMS <= 0 {
		c.IntervalMS = int(session.DefaultInterval / time.Millisecond)
	}
	if c.StartYear == 0 {
		c.StartYear = dataset.LastYear
	}
	if c.Scenario == "" {
		c.Scenario = model.ScenarioModerate.String()
	}
	if c.Target == 0 {
		c.Target = 50
	}
}

// Interval returns the playback step.
func (c TimelineConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate checks the scenario name and the interval.
func (c TimelineConfig) Validate() error {
	if _, err := model.ParseScenario(c.Scenario); err != nil {
		return err
	}
	if c.IntervalMS < 10 {
		return fmt.Errorf("interval_ms must be at least 10")
	}
	return nil
}

// Options converts the section to session options.
func (c TimelineConfig) Options(horizon int) session.Options {
	opts := session.DefaultOptions()
	opts.Year = c.StartYear
	opts.Target = c.Target
	opts.Interval = c.Interval()
	opts.Horizon = horizon
	if sc, err := model.ParseScenario(c.Scenario); err == nil {
		opts.Scenario = sc
	}
	return opts
}
