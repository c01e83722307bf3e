package model

import "fmt"

// Scenario identifies a growth-policy preset used by the projection engine.
type Scenario int

const (
	ScenarioConservative Scenario = iota
	ScenarioModerate
	ScenarioAggressive
)

// Scenarios lists every known scenario ordered from the slowest to the
// fastest growth policy.
var Scenarios = []Scenario{ScenarioConservative, ScenarioModerate, ScenarioAggressive}

// String returns the lowercase identifier of the scenario.
func (s Scenario) String() string {
	switch s {
	case ScenarioConservative:
		return "conservative"
	case ScenarioModerate:
		return "moderate"
	case ScenarioAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared scenarios.
func (s Scenario) Valid() bool {
	return s >= ScenarioConservative && s <= ScenarioAggressive
}

// Label is the display name used by summaries and CLI output.
func (s Scenario) Label() string {
	switch s {
	case ScenarioConservative:
		return "Conservative"
	case ScenarioModerate:
		return "Moderate"
	case ScenarioAggressive:
		return "Aggressive"
	default:
		return "Unknown"
	}
}

// Description is a one-line summary of the policy assumption.
func (s Scenario) Description() string {
	switch s {
	case ScenarioConservative:
		return "Steady growth with current policies"
	case ScenarioModerate:
		return "Enhanced policies and investments"
	case ScenarioAggressive:
		return "Rapid transition with strong incentives"
	default:
		return ""
	}
}

// ParseScenario converts an identifier into a Scenario. Unknown identifiers
// are rejected rather than mapped to a default.
func ParseScenario(s string) (Scenario, error) {
	for _, sc := range Scenarios {
		if sc.String() == s {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario %q", s)
}

// MarshalText encodes the scenario as its identifier.
func (s Scenario) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown scenario %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes an identifier produced by MarshalText.
func (s *Scenario) UnmarshalText(b []byte) error {
	v, err := ParseScenario(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
