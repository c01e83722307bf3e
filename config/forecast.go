package config

import (
	"fmt"

	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/core/scenario"
)

// ForecastConfig tunes the projection engine and its input policy.
type ForecastConfig struct {
	// TargetPolicy is one of clamp, reject or passthrough.
	TargetPolicy string  `json:"target_policy"`
	TargetMin    float64 `json:"target_min"`
	TargetMax    float64 `json:"target_max"`
	MaxHorizon   int     `json:"max_horizon"`
	Horizon      int     `json:"horizon"`
	// CacheSize bounds the memoized projections; negative disables the cache.
	CacheSize int                          `json:"cache_size"`
	Scenarios map[string]scenario.Override `json:"scenarios"`
}

// SetDefaults applies the reference policy.
func (c *ForecastConfig) SetDefaults() {
	def := projection.DefaultPolicy()
	if c.TargetPolicy == "" {
		c.TargetPolicy = string(def.Mode)
	}
	if c.TargetMin == 0 && c.TargetMax == 0 {
		c.TargetMin, c.TargetMax = def.TargetMin, def.TargetMax
	}
	if c.MaxHorizon == 0 {
		c.MaxHorizon = def.MaxHorizon
	}
	if c.Horizon == 0 {
		c.Horizon = projection.DefaultHorizon
	}
	if c.CacheSize == 0 {
		c.CacheSize = projection.DefaultCacheSize
	}
}

// Policy returns the input policy described by the section.
func (c ForecastConfig) Policy() projection.Policy {
	return projection.Policy{
		Mode:       projection.Mode(c.TargetPolicy),
		TargetMin:  c.TargetMin,
		TargetMax:  c.TargetMax,
		MaxHorizon: c.MaxHorizon,
	}
}

// Catalog returns the scenario catalog with the configured overrides.
func (c ForecastConfig) Catalog() (*scenario.Catalog, error) {
	return scenario.New(c.Scenarios)
}

// Validate checks the policy, the horizon and the scenario overrides.
func (c ForecastConfig) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.Horizon < 0 || c.Horizon > c.MaxHorizon {
		return fmt.Errorf("horizon %d not in [0,%d]", c.Horizon, c.MaxHorizon)
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}
