package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/internal/bench"
	"github.com/katalvlaran/strassen/matrix"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MATBENCH_TEST_INT", "")
	require.Equal(t, 7, getEnvInt("MATBENCH_TEST_INT", 7))

	t.Setenv("MATBENCH_TEST_INT", "not-a-number")
	require.Equal(t, 7, getEnvInt("MATBENCH_TEST_INT", 7))

	t.Setenv("MATBENCH_TEST_INT", "128")
	require.Equal(t, 128, getEnvInt("MATBENCH_TEST_INT", 7))
}

func TestRunFlagsFromEnv(t *testing.T) {
	t.Setenv("MATBENCH_SIZE", "32")
	t.Setenv("MATBENCH_THRESHOLD", "4")
	t.Setenv("MATBENCH_SEED", "99")

	run, _, err := newRootCmd().Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, run.Flags().Parse([]string{"--repeat", "3", "--max", "50", "--verify", "--pad", "--print"}))

	cfg := configFromFlags(run)
	require.Equal(t, bench.Config{
		Size:      32,
		Threshold: 4,
		Seed:      99,
		Repeat:    3,
		Max:       50,
		Verify:    true,
		Print:     true,
		Pad:       true,
	}, cfg)
}

func TestRunFlagsDefaults(t *testing.T) {
	t.Setenv("MATBENCH_SIZE", "")
	t.Setenv("MATBENCH_THRESHOLD", "")
	t.Setenv("MATBENCH_SEED", "")

	run, _, err := newRootCmd().Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, run.Flags().Parse(nil))

	cfg := configFromFlags(run)
	d := bench.DefaultConfig()
	require.Equal(t, d.Size, cfg.Size)
	require.Equal(t, matrix.DefaultThreshold, cfg.Threshold)
	require.Equal(t, d.Seed, cfg.Seed)
	require.False(t, cfg.Verify)
}

func TestRunCommand(t *testing.T) {
	out, logs, err := execute(t, "run", "--size", "8", "--threshold", "2", "--max", "10", "--verify", "--print")
	require.NoError(t, err)
	require.Contains(t, logs, "matbench: n=8 threshold=2")
	require.Contains(t, logs, "verified")
	require.Contains(t, out, "A·B (strassen):")
	require.Contains(t, out, "A·x: [")
}

func TestRunCommandOddSize(t *testing.T) {
	_, _, err := execute(t, "run", "--size", "6", "--threshold", "1", "--max", "10")
	require.ErrorIs(t, err, matrix.ErrOddSize)

	_, logs, err := execute(t, "run", "--size", "6", "--threshold", "1", "--max", "10", "--pad", "--verify")
	require.NoError(t, err)
	require.Contains(t, logs, "pad=true")
}

func TestRunCommandPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs:\n  - size: 8\n    threshold: 2\n    max: 10\n    verify: true\n  - size: 16\n    threshold: 4\n    max: 10\n"), 0o600))

	_, logs, err := execute(t, "run", "--plan", path)
	require.NoError(t, err)
	require.Contains(t, logs, "2 runs")
	require.Contains(t, logs, "n=8 threshold=2")
	require.Contains(t, logs, "n=16 threshold=4")

	_, _, err = execute(t, "run", "--plan", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLanesCommand(t *testing.T) {
	out, _, err := execute(t, "lanes")
	require.NoError(t, err)
	require.Contains(t, out, "lane width:   "+strconv.Itoa(matrix.NativeLaneWidth())+" float32")
	require.Contains(t, out, "arch:")
	require.Contains(t, out, "acceleration:")

	// features are printed in sorted order
	again, _, err := execute(t, "lanes")
	require.NoError(t, err)
	require.Equal(t, out, again)
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "features:"); ok {
			fields := strings.Fields(rest)
			require.IsNonDecreasing(t, fields)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "matbench v"+version+" ("+commit+")"), out)
}
