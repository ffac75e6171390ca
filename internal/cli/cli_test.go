// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmio/builder"
	"github.com/katalvlaran/latmio/matio"
	"github.com/katalvlaran/latmio/rewire"
	"github.com/katalvlaran/latmio/topology"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := Execute(context.Background(), &out, &logs, args)

	return out.String(), logs.String(), err
}

// randomInput writes a connected random graph and returns its path.
func randomInput(t *testing.T, dir string, n int) string {
	t.Helper()
	m, err := builder.Build(n, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomConnected(0.15)...)
	require.NoError(t, err)
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, matio.WriteFile(path, m))

	return path
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			require.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	require.Equal(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	require.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("finished", "items", 3)
	require.Contains(t, buf.String(), "finished")
	require.Contains(t, buf.String(), "elapsed")
}

func TestMemberPath(t *testing.T) {
	require.Equal(t, "out.txt", memberPath("out.txt", 0, 1))
	require.Equal(t, "dir/out_002.csv", memberPath("dir/out.csv", 2, 5))
	require.Equal(t, "out_010", memberPath("out", 10, 11))
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("dev", "", "")
	require.Equal(t, "1.0.0", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2024-01-01", date)
}

func TestDistanceCommand(t *testing.T) {
	out, _, err := run(t, "distance", "4")
	require.NoError(t, err)
	require.Equal(t, "0 1 2 1\n1 0 1 2\n2 1 0 1\n1 2 1 0\n", out)

	_, _, err = run(t, "distance", "zero")
	require.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := run(t, "generate", "ring", "5", "--format", "json")
	require.NoError(t, err)
	m, err := matio.Read(strings.NewReader(out), matio.FormatJSON)
	require.NoError(t, err)
	deg, err := topology.Degrees(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2, 2}, deg)

	_, _, err = run(t, "generate", "torus", "5")
	require.ErrorContains(t, err, "unknown kind")
	_, _, err = run(t, "generate", "lattice", "5", "--k", "3")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestLatticizeCommand_Report(t *testing.T) {
	dir := t.TempDir()
	in := randomInput(t, dir, 24)
	outPath := filepath.Join(dir, "out.csv")
	reportPath := filepath.Join(dir, "report.json")

	_, logs, err := run(t, "latticize", in, "-o", outPath, "--iter", "2", "--verify", "--report", reportPath)
	require.NoError(t, err)
	require.Contains(t, logs, "Latticized")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep runReport
	require.NoError(t, json.Unmarshal(data, &rep))
	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	require.Len(t, rep.Members, 1)
	require.Equal(t, outPath, rep.Members[0].Output)
	require.NotNil(t, rep.Members[0].Check)
	require.True(t, rep.Members[0].Check.OK())
	require.LessOrEqual(t, rep.Members[0].Stats.CostAfter, rep.Members[0].Stats.CostBefore)

	out, _, err := run(t, "check", in, outPath)
	require.NoError(t, err)
	require.Contains(t, out, `"ok": true`)
}

func TestLatticizeCommand_Ensemble(t *testing.T) {
	dir := t.TempDir()
	in := randomInput(t, dir, 20)
	outPath := filepath.Join(dir, "null.txt")

	_, _, err := run(t, "latticize", in, "-o", outPath, "--iter", "1", "--count", "3", "--workers", "2")
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		_, err := os.Stat(memberPath(outPath, k, 3))
		require.NoError(t, err, "member %d", k)
	}

	_, _, err = run(t, "latticize", in, "--count", "2")
	require.ErrorIs(t, err, errEnsembleNeedsOutput)
}

func TestLatticizeCommand_Saturated(t *testing.T) {
	dir := t.TempDir()
	ring, err := builder.Build(6, nil, builder.Cycle())
	require.NoError(t, err)
	in := filepath.Join(dir, "ring.txt")
	require.NoError(t, matio.WriteFile(in, ring))

	_, _, err = run(t, "latticize", in, "--max-retries", "200")
	require.ErrorIs(t, err, rewire.ErrNoEligibleRewiring)
}

func TestLatticizeCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := randomInput(t, dir, 16)
	cfgPath := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("iterations = -3\n"), 0o644))

	_, _, err := run(t, "--config", cfgPath, "latticize", in)
	require.Error(t, err)

	// File values apply, explicit flags still win.
	require.NoError(t, os.WriteFile(cfgPath, []byte("iterations = 1\n[output]\nformat = \"json\"\n"), 0o644))
	out, _, err := run(t, "--config", cfgPath, "latticize", in, "--seed", "9")
	require.NoError(t, err)
	_, err = matio.Read(strings.NewReader(out), matio.FormatJSON)
	require.NoError(t, err)
}

func TestCheckCommand_Fails(t *testing.T) {
	dir := t.TempDir()
	a, err := builder.Build(5, nil, builder.Cycle())
	require.NoError(t, err)
	b, err := builder.Build(5, nil, builder.Path())
	require.NoError(t, err)
	pa, pb := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	require.NoError(t, matio.WriteFile(pa, a))
	require.NoError(t, matio.WriteFile(pb, b))

	out, _, err := run(t, "check", pa, pb)
	require.ErrorIs(t, err, errCheckFailed)
	require.Contains(t, out, `"degrees_preserved": false`)
}
