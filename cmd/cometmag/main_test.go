package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/cometmag/internal/types"
	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
	"github.com/oxygene76/cometmag/pkg/utils"
)

// run executes the command tree against a private default config file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, utils.SaveConfig(utils.DefaultConfig(), cfgPath))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestThreeArgumentMode(t *testing.T) {
	out, err := run(t, "5.0", "inbound", "new")
	require.NoError(t, err)

	got, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)

	want, err := brightness.Evaluate(5.0, brightness.ArcInbound, brightness.GroupNew)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestThreeArgumentModeErrors(t *testing.T) {
	_, err := run(t, "5.0", "sideways", "new")
	assert.ErrorIs(t, err, brightness.ErrInvalidArc)

	_, err = run(t, "5.0", "inbound", "ancient")
	assert.ErrorIs(t, err, brightness.ErrInvalidGroup)

	_, err = run(t, "far", "inbound", "new")
	assert.Error(t, err)

	_, err = run(t, "0", "outbound", "old")
	assert.ErrorIs(t, err, brightness.ErrInvalidDistance)

	_, err = run(t, "5.0", "inbound")
	assert.Error(t, err)
}

func TestNoArgumentsPrintsHelp(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestEvalJSON(t *testing.T) {
	out, err := run(t, "eval", "1", "3", "10", "--format", "json")
	require.NoError(t, err)

	var results []types.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	want, err := brightness.EvaluateSeries([]float64{1, 3, 10}, brightness.ArcInbound, brightness.GroupNew)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, "inbound", r.Arc)
		assert.Equal(t, "new", r.Group)
		assert.InDelta(t, want[i], r.Magnitude, 1e-12)
		assert.Nil(t, r.ApparentMagnitude)
	}
}

func TestEvalYAMLWithObserver(t *testing.T) {
	out, err := run(t, "eval", "2.3", "3.7", "--arc", "outbound", "--group", "old",
		"--observer-distance", "2", "--format", "yaml")
	require.NoError(t, err)

	var results []types.Evaluation
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	for i, d := range []float64{2.3, 3.7} {
		total := 11.57 + 13.21*math.Log10(d)
		assert.InDelta(t, total, results[i].Magnitude, 1e-9)
		require.NotNil(t, results[i].ApparentMagnitude)
		assert.InDelta(t, total+5*math.Log10(2), *results[i].ApparentMagnitude, 1e-9)
	}
}

func TestEvalText(t *testing.T) {
	out, err := run(t, "eval", "2", "--group", "int")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "MAG")
	assert.Contains(t, lines[1], "int")
}

func TestEvalRejectsBadInput(t *testing.T) {
	_, err := run(t, "eval", "1", "--arc", "sideways")
	assert.ErrorIs(t, err, brightness.ErrInvalidArc)

	_, err = run(t, "eval", "1", "-2")
	assert.Error(t, err)

	_, err = run(t, "eval", "1", "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "eval", "1", "--observer-distance", "0")
	assert.ErrorIs(t, err, brightness.ErrInvalidDistance)
}

func TestParamsJSON(t *testing.T) {
	out, err := run(t, "params", "--format", "json")
	require.NoError(t, err)

	var table parameterTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, brightness.TransitionDistance, table.TransitionDistance)
	require.Len(t, table.Groups, 3)

	row := table.Groups[0]
	assert.Equal(t, "new", row.Group)
	assert.InDelta(t, 8.28+math.Log10(3.16)*(6.7285-12.847), row.MFar, 1e-12)
}

func TestTableCSV(t *testing.T) {
	out, err := run(t, "table", "--points", "5")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"distance_au",
		"new_inbound", "new_outbound",
		"int_inbound", "int_outbound",
		"old_inbound", "old_outbound"}, records[0])
	assert.Equal(t, "1.0000", records[1][0])
	assert.Equal(t, "10.0000", records[5][0])
	// outbound at 1 AU is m1
	assert.Equal(t, "8.7500", records[1][2])
}

func TestOrbit(t *testing.T) {
	out, err := run(t, "orbit", "--perihelion", "1", "--eccentricity", "0.5",
		"--mean-anomaly", "-90", "--group", "old", "--format", "json")
	require.NoError(t, err)

	var result types.OrbitEvaluation
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "inbound", result.Arc)
	assert.InDelta(t, 2.0, result.SemiMajorAxis, 1e-12)
	assert.Greater(t, result.Distance, 1.0)
	assert.Less(t, result.Distance, 3.0)

	want, err := brightness.Evaluate(result.Distance, brightness.ArcInbound, brightness.GroupOld)
	require.NoError(t, err)
	assert.InDelta(t, want, result.Magnitude, 1e-12)
}

func TestOrbitRequiresSize(t *testing.T) {
	_, err := run(t, "orbit", "--eccentricity", "0.5")
	assert.Error(t, err)

	_, err = run(t, "orbit", "--semi-major-axis", "3", "--eccentricity", "1.2")
	assert.Error(t, err)
}

func TestPlotToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.svg")
	out, err := run(t, "plot", "--output", "svg", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
	assert.FileExists(t, path)
}

func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cometmag", "config.yaml")

	out, err := run(t, "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := utils.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig(), loaded)

	_, err = run(t, "init", "--path", path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0644))
	_, err = run(t, "init", "--path", path, "--force")
	require.NoError(t, err)
}
