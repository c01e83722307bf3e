// Package session keeps the selection a viewer is looking at (year,
// scenario, CO2 target) and re-runs the projection engine whenever it
// changes. Every result is published on an event bus so publishers and
// metrics collectors can follow along. A session can also play the
// historical timeline forward one year per tick.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/renewables/core/dataset"
	"github.com/kilianp07/renewables/core/logger"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/projection"
	"github.com/kilianp07/renewables/internal/eventbus"
)

// DefaultInterval is the playback step.
const DefaultInterval = 800 * time.Millisecond

// Update is the result of one recomputation.
type Update struct {
	ID                string                `json:"id"`
	Year              int                   `json:"year"`
	Scenario          model.Scenario        `json:"scenario"`
	Target            float64               `json:"target"`
	CurrentPercentage float64               `json:"currentPercentage"`
	Points            []model.ForecastPoint `json:"points"`
	Outcomes          []projection.Outcome  `json:"outcomes"`
	Summary           dataset.Summary       `json:"summary"`
	Duration          time.Duration         `json:"-"`
	Time              time.Time             `json:"time"`
}

// Options are the initial selection and playback settings.
type Options struct {
	Year     int
	Scenario model.Scenario
	Target   float64
	Horizon  int
	Interval time.Duration
	Offsets  []int
}

// DefaultOptions starts on the last historical year with the moderate
// scenario and a 50% target.
func DefaultOptions() Options {
	return Options{
		Year:     dataset.LastYear,
		Scenario: model.ScenarioModerate,
		Target:   50,
		Horizon:  projection.DefaultHorizon,
		Interval: DefaultInterval,
		Offsets:  projection.DefaultOffsets,
	}
}

// State is a point-in-time copy of the selection.
type State struct {
	Year     int            `json:"year"`
	Scenario model.Scenario `json:"scenario"`
	Target   float64        `json:"target"`
	Playing  bool           `json:"playing"`
}

// Session is safe for concurrent use.
type Session struct {
	proj   projection.Projector
	policy projection.Policy
	data   *dataset.Dataset
	bus    *eventbus.Bus[Update]
	log    logger.Logger

	interval time.Duration
	horizon  int
	offsets  []int

	mu       sync.Mutex
	year     int
	scenario model.Scenario
	target   float64
	playing  bool
	last     Update
}

// New validates opts and computes the initial projection. bus and log may
// be nil.
func New(proj projection.Projector, data *dataset.Dataset, policy projection.Policy, bus *eventbus.Bus[Update], log logger.Logger, opts Options) (*Session, error) {
	if proj == nil || data == nil {
		return nil, fmt.Errorf("session requires a projector and a dataset")
	}
	if !opts.Scenario.Valid() {
		return nil, fmt.Errorf("session: unknown scenario %d", int(opts.Scenario))
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Horizon == 0 {
		opts.Horizon = projection.DefaultHorizon
	}
	s := &Session{
		proj:     proj,
		policy:   policy,
		data:     data,
		bus:      bus,
		log:      log,
		interval: opts.Interval,
		horizon:  opts.Horizon,
		offsets:  opts.Offsets,
		year:     data.ClampYear(opts.Year),
		scenario: opts.Scenario,
		target:   opts.Target,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the current selection.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Year: s.year, Scenario: s.scenario, Target: s.target, Playing: s.playing}
}

// Current returns the last published update.
func (s *Session) Current() Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// SetYear selects a historical year and stops playback.
func (s *Session) SetYear(year int) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.year = s.data.ClampYear(year)
	return s.recompute()
}

// SetScenario selects the growth scenario.
func (s *Session) SetScenario(sc model.Scenario) (Update, error) {
	if !sc.Valid() {
		return Update{}, fmt.Errorf("unknown scenario %d", int(sc))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.scenario
	s.scenario = sc
	u, err := s.recompute()
	if err != nil {
		s.scenario = prev
	}
	return u, err
}

// SetTarget selects the CO2 reduction target. Out of range targets are
// handled by the session policy.
func (s *Session) SetTarget(target float64) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.target
	s.target = target
	u, err := s.recompute()
	if err != nil {
		s.target = prev
	}
	return u, err
}

// Selection changes several fields at once. Nil fields are kept.
type Selection struct {
	Year     *int
	Scenario *model.Scenario
	Target   *float64
}

// Select applies sel with a single recompute. Either every field is
// applied or, on error, the previous selection is kept. A year change
// stops playback.
func (s *Session) Select(sel Selection) (Update, error) {
	if sel.Scenario != nil && !sel.Scenario.Valid() {
		return Update{}, fmt.Errorf("unknown scenario %d", int(*sel.Scenario))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	year, sc, target, playing := s.year, s.scenario, s.target, s.playing
	if sel.Scenario != nil {
		s.scenario = *sel.Scenario
	}
	if sel.Target != nil {
		s.target = *sel.Target
	}
	if sel.Year != nil {
		s.playing = false
		s.year = s.data.ClampYear(*sel.Year)
	}
	u, err := s.recompute()
	if err != nil {
		s.year, s.scenario, s.target, s.playing = year, sc, target, playing
	}
	return u, err
}

// TogglePlay starts or pauses playback. Starting from the last year
// rewinds to the first one. It returns the new playing state.
func (s *Session) TogglePlay() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	first, last := s.data.YearRange()
	if s.year >= last {
		s.year = first
		if _, err := s.recompute(); err != nil {
			return s.playing, err
		}
	}
	s.playing = !s.playing
	return s.playing, nil
}

// Step advances playback by one year. Reaching a tick while on the last
// year stops playback. It reports whether the year changed.
func (s *Session) Step() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing {
		return false, nil
	}
	_, last := s.data.YearRange()
	if s.year >= last {
		s.playing = false
		s.year = last
		return false, nil
	}
	s.year++
	if _, err := s.recompute(); err != nil {
		return true, err
	}
	return true, nil
}

// Run steps playback on every interval until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Step(); err != nil {
				s.log.Errorf("timeline step: %v", err)
			}
		}
	}
}

// recompute must be called with mu held.
func (s *Session) recompute() (Update, error) {
	start := time.Now()
	snap := s.data.Snapshot(s.year)
	summary := dataset.Summarize(snap)
	in, err := s.policy.Apply(projection.Input{
		CurrentYear:        s.year,
		CurrentPercentage:  summary.AvgRenewablePercentage,
		TargetCO2Reduction: s.target,
		Scenario:           s.scenario,
		Horizon:            s.horizon,
	})
	if err != nil {
		return Update{}, err
	}
	s.target = in.TargetCO2Reduction
	pts, err := s.proj.Project(in)
	if err != nil {
		return Update{}, fmt.Errorf("project: %w", err)
	}
	u := Update{
		ID:                uuid.NewString(),
		Year:              s.year,
		Scenario:          s.scenario,
		Target:            in.TargetCO2Reduction,
		CurrentPercentage: in.CurrentPercentage,
		Points:            pts,
		Outcomes:          projection.Outcomes(pts, s.year, s.offsets...),
		Summary:           summary,
		Time:              time.Now(),
	}
	u.Duration = u.Time.Sub(start)
	s.last = u
	s.log.Debugw("projection updated", map[string]any{
		"year":     u.Year,
		"scenario": u.Scenario.String(),
		"target":   u.Target,
		"points":   len(u.Points),
	})
	if s.bus != nil {
		s.bus.Publish(u)
	}
	return u, nil
}
