package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/dumptruck-sim/dumptruck-sim/sim"
	"github.com/dumptruck-sim/dumptruck-sim/sim/scenario"
)

// setRunFlag sets a run flag as if passed on the command line and restores it afterwards.
func setRunFlag(t *testing.T, name, value string) {
	t.Helper()
	f := runCmd.Flags().Lookup(name)
	require.NotNil(t, f, "unknown flag %s", name)
	old := f.Value.String()
	require.NoError(t, runCmd.Flags().Set(name, value))
	t.Cleanup(func() {
		_ = f.Value.Set(old)
		f.Changed = false
	})
}

func TestRunScenario_PrintsLogAndStatistics(t *testing.T) {
	// GIVEN the built-in textbook scenario
	var buf bytes.Buffer

	// WHEN it runs
	res, err := runScenario(scenario.Default(), &buf, false, true)
	require.NoError(t, err)

	// THEN the event log and the statistics are written
	out := buf.String()
	assert.Contains(t, out, "=== Event Log ===")
	assert.Contains(t, out, "[T=    0.00] Truck 1 starts loading")
	assert.Contains(t, out, "=== Simulation Statistics ===")
	assert.Contains(t, out, "Total Time           : 76.00")
	assert.Equal(t, 76.0, res.TotalTime)
}

func TestRunScenario_Quiet_OmitsLog(t *testing.T) {
	var buf bytes.Buffer
	_, err := runScenario(scenario.Default(), &buf, true, false)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Event Log")
	assert.Contains(t, buf.String(), "Loader Utilization")
}

func TestRunScenario_InvalidDistribution_NoOutput(t *testing.T) {
	sc := scenario.Default()
	sc.Distributions.Loading = "5, 0.3\n10, 0.45\n15, 0.2\n"
	var buf bytes.Buffer
	_, err := runScenario(sc, &buf, false, false)
	assert.ErrorIs(t, err, sim.ErrInvalidDistribution)
	assert.Empty(t, buf.String())
}

func TestBuildScenario_OnlyChangedFlagsOverride(t *testing.T) {
	// GIVEN a scenario file with 8 trucks and horizon 300
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trucks: 8\nhorizon: 300\n"), 0o644))
	setRunFlag(t, "config", path)

	// WHEN only --horizon is given on the command line
	setRunFlag(t, "horizon", "50")
	sc, err := buildScenario(runCmd)
	require.NoError(t, err)

	// THEN the file's trucks survive and the flag's horizon wins
	assert.Equal(t, 8, sc.Trucks)
	assert.Equal(t, 50.0, sc.Horizon)
}

func TestBuildScenario_DistributionFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loading.txt")
	require.NoError(t, os.WriteFile(path, []byte("3, 1.0\n"), 0o644))
	setRunFlag(t, "loading-dist", path)

	sc, err := buildScenario(runCmd)
	require.NoError(t, err)
	assert.Equal(t, "3, 1.0\n", sc.Distributions.Loading)

	setRunFlag(t, "travel-dist", filepath.Join(dir, "missing.txt"))
	_, err = buildScenario(runCmd)
	assert.ErrorContains(t, err, "reading travel distribution")
}

func TestValidateDistributionFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("12, 0.7\n\n16, 0.3\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, validateDistributionFile(good, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2 entries")
	assert.Contains(t, lines[3], "1.0000")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("12, 0.7\n16, 0.2\n"), 0o644))
	err := validateDistributionFile(bad, &buf)
	assert.ErrorIs(t, err, sim.ErrInvalidDistribution)
	assert.Contains(t, err.Error(), "0.900000")
}
