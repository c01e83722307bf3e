package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("engine", Options{Level: "debug", Out: &buf})
	l.Debugw("projected", map[string]any{"points": 11})
	l.Infof("year %d", 2024)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "engine", first["component"])
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, float64(11), first["points"])
	assert.Contains(t, lines[1], "year 2024")
}

func TestZerologLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("x", Options{Level: "warn", Out: &buf})
	l.Debugf("hidden")
	l.Infof("hidden")
	l.Warnf("shown")
	l.Errorf("shown too")
	assert.Equal(t, 2, strings.Count(buf.String(), "shown"))
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { _ = Setup(Options{}) })
	assert.Error(t, Setup(Options{Level: "loud"}))
	require.NoError(t, Setup(Options{Level: "error"}))
	assert.NotNil(t, New("svc"))
}
