package metrics

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/renewables/core/factory"
)

type recordSink struct {
	projections int
	snapshots   int
	err         error
}

func (r *recordSink) RecordProjection(ProjectionEvent) error {
	r.projections++
	return r.err
}

func (r *recordSink) RecordSnapshot(SnapshotEvent) error {
	r.snapshots++
	return r.err
}

type projectionOnly struct{ n int }

func (p *projectionOnly) RecordProjection(ProjectionEvent) error { p.n++; return nil }

func TestMultiSinkForwards(t *testing.T) {
	s1 := &recordSink{}
	s2 := &projectionOnly{}
	m := NewMultiSink(s1, s2)
	require.NoError(t, m.RecordProjection(ProjectionEvent{}))
	require.NoError(t, m.RecordSnapshot(SnapshotEvent{}))
	assert.Equal(t, 1, s1.projections)
	assert.Equal(t, 1, s1.snapshots)
	assert.Equal(t, 1, s2.n)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) RecordProjection(ev ProjectionEvent) error {
	return m.Called(ev).Error(0)
}

func (m *mockSink) RecordSnapshot(ev SnapshotEvent) error {
	return m.Called(ev).Error(0)
}

func (m *mockSink) Close() { m.Called() }

func TestMultiSinkPassesEventsAndCloses(t *testing.T) {
	ev := ProjectionEvent{RunID: "r1", Year: 2024, Target: 50}
	snap := SnapshotEvent{Year: 2024}
	s := &mockSink{}
	s.On("RecordProjection", ev).Return(nil).Once()
	s.On("RecordSnapshot", snap).Return(errors.New("down")).Once()
	s.On("Close").Once()

	m := NewMultiSink(s, &projectionOnly{})
	require.NoError(t, m.RecordProjection(ev))
	assert.EqualError(t, m.RecordSnapshot(snap), "down")
	m.Close()
	s.AssertExpectations(t)
}

func TestMultiSinkContinuesOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := &recordSink{err: boom}
	ok := &recordSink{}
	m := NewMultiSink(failing, ok)
	err := m.RecordProjection(ProjectionEvent{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ok.projections)
}

func TestNewProjectionSink(t *testing.T) {
	s, err := NewProjectionSink(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewProjectionSink([]factory.ModuleConfig{{Type: "nop"}})
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewProjectionSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	require.NoError(t, err)
	m, ok := s.(*MultiSink)
	require.True(t, ok)
	assert.Len(t, m.Sinks, 2)

	_, err = NewProjectionSink([]factory.ModuleConfig{{Type: "missing"}})
	assert.Error(t, err)
	_, err = NewProjectionSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "missing"}})
	assert.Error(t, err)
}

func TestConfigDecode(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("sinks:\n  - type: nop\n  - type: nop\n"), &cfg))
	assert.Len(t, cfg.Sinks, 2)

	require.NoError(t, json.Unmarshal([]byte(`{"sinks":[{"type":"nop","conf":{"a":1}}]}`), &cfg))
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, float64(1), cfg.Sinks[0].Conf["a"])
}
