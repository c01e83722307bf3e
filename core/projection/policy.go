package projection

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrPercentageOutOfRange = errors.New("current percentage out of range")
	ErrTargetOutOfRange     = errors.New("co2 reduction target out of range")
	ErrHorizonTooLarge      = errors.New("horizon too large")
	ErrNotFinite            = errors.New("input is not a finite number")
)

// Mode selects how Policy treats out of range values.
type Mode string

const (
	// ModeClamp bounds values to the accepted range.
	ModeClamp Mode = "clamp"
	// ModeReject returns an error for any out of range value.
	ModeReject Mode = "reject"
	// ModePassthrough hands percentage and target to the engine untouched.
	ModePassthrough Mode = "passthrough"
)

// Policy validates inputs before they reach the engine.
type Policy struct {
	Mode       Mode
	TargetMin  float64
	TargetMax  float64
	MaxHorizon int
}

// DefaultPolicy clamps targets to [10,100] and horizons to 50 years.
func DefaultPolicy() Policy {
	return Policy{Mode: ModeClamp, TargetMin: 10, TargetMax: 100, MaxHorizon: 50}
}

// Validate checks the policy itself.
func (p Policy) Validate() error {
	switch p.Mode {
	case ModeClamp, ModeReject, ModePassthrough:
	default:
		return fmt.Errorf("unknown target policy %q", p.Mode)
	}
	if p.TargetMin < 0 || p.TargetMax > 100 || p.TargetMin > p.TargetMax {
		return fmt.Errorf("invalid target range [%g,%g]", p.TargetMin, p.TargetMax)
	}
	if p.MaxHorizon <= 0 {
		return fmt.Errorf("max horizon must be positive")
	}
	return nil
}

// Apply returns the input the engine should see. The horizon bound holds
// in every mode; passthrough clamps it like clamp does.
func (p Policy) Apply(in Input) (Input, error) {
	if !finite(in.CurrentPercentage) || !finite(in.TargetCO2Reduction) {
		return in, ErrNotFinite
	}
	if p.MaxHorizon > 0 && in.Horizon > p.MaxHorizon {
		if p.Mode == ModeReject {
			return in, fmt.Errorf("%w: %d > %d", ErrHorizonTooLarge, in.Horizon, p.MaxHorizon)
		}
		in.Horizon = p.MaxHorizon
	}
	if p.Mode == ModePassthrough {
		return in, nil
	}
	if in.CurrentPercentage < 0 || in.CurrentPercentage > 100 {
		if p.Mode == ModeReject {
			return in, fmt.Errorf("%w: %g", ErrPercentageOutOfRange, in.CurrentPercentage)
		}
		in.CurrentPercentage = clamp(in.CurrentPercentage, 0, 100)
	}
	if in.TargetCO2Reduction < p.TargetMin || in.TargetCO2Reduction > p.TargetMax {
		if p.Mode == ModeReject {
			return in, fmt.Errorf("%w: %g not in [%g,%g]", ErrTargetOutOfRange, in.TargetCO2Reduction, p.TargetMin, p.TargetMax)
		}
		in.TargetCO2Reduction = clamp(in.TargetCO2Reduction, p.TargetMin, p.TargetMax)
	}
	return in, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
