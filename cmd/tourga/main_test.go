package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tourga/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Text(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"-nodes", "10", "-generations", "30", "-seed", "3", "-log-level", "warn"}, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "10 nodes")
	assert.Contains(t, out.String(), "generation 30")
	assert.Empty(t, errOut.String())
}

func TestRun_JSONWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: circles\nstrategy: pmx\ngenerations: 500\ntick: 0s\n"), 0o600))

	var out, errOut bytes.Buffer
	// -generations overrides the file.
	require.NoError(t, run([]string{"-config", path, "-generations", "40", "-json"}, &out, &errOut))

	var snap runner.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, 40, snap.Generation)
	assert.Equal(t, runner.LayoutCircles, snap.Layout)
	assert.Equal(t, "pmx", snap.Strategy)
	assert.Len(t, snap.Points, runner.CircleNodes)
	assert.Len(t, snap.Best.Tour, runner.CircleNodes+1)
	assert.Contains(t, errOut.String(), `"msg":"run finished"`)
}

func TestRun_ConfigWithoutBudgetUsesCLIDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: 8\npopulation_size: 10\n"), 0o600))

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-json", "-log-level", "warn"}, &out, &errOut))

	var snap runner.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, 2000, snap.Generation, "the -generations default bounds the run")
	assert.Len(t, snap.Points, 8)
}

func TestRun_BadInput(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run([]string{"-log-level", "loud"}, &out, &errOut))
	require.Error(t, run([]string{"-layout", "spiral"}, &out, &errOut))
	require.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out, &errOut))
	require.Error(t, run([]string{"-no-such-flag"}, &out, &errOut))
}
