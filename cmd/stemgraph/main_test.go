package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes n identical 3 Å square Mo records and a config with
// a 96 px view, returning the two paths.
func writeFixture(t *testing.T, n int) (records, cfg string) {
	t.Helper()
	dir := t.TempDir()

	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `- jid: JVASP-%d
  crys: tetragonal
  atoms:
    lattice_mat: [[3, 0, 0], [0, 3, 0], [0, 0, 20]]
    coords: [[1.5, 1.5, 0]]
    elements: [Mo]
    cartesian: true
`, 1000+i)
	}
	records = filepath.Join(dir, "structures.yaml")
	require.NoError(t, os.WriteFile(records, []byte(b.String()), 0o644))

	cfg = filepath.Join(dir, "stemgraph.yaml")
	body := "simulator:\n  width: 96\n  height: 96\nworkers: 2\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))
	return records, cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplitCommand(t *testing.T) {
	records, cfg := writeFixture(t, 10)
	out, err := run(t, "split", "--config", cfg, "--source", records)
	require.NoError(t, err)
	assert.Contains(t, out, "train 8")
	assert.Contains(t, out, "val   1")
	assert.Contains(t, out, "test  1")
}

func TestSampleCommand(t *testing.T) {
	records, cfg := writeFixture(t, 3)
	out, err := run(t, "sample", "--config", cfg, "--source", records, "--index", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "JVASP-1002")
	assert.Contains(t, out, "96x96")
	assert.Contains(t, out, "atoms     9")

	_, err = run(t, "sample", "--config", cfg, "--source", records, "--index", "3")
	assert.Error(t, err)
}

func TestGraphCommand_Debug(t *testing.T) {
	records, cfg := writeFixture(t, 1)
	out, err := run(t, "graph", "--config", cfg, "--source", records, "--debug")
	require.NoError(t, err)
	assert.Contains(t, out, "JVASP-1000: 9 nodes, 12 edges, 1 clusters")
}

func TestBatchCommand(t *testing.T) {
	records, cfg := writeFixture(t, 10)
	out, err := run(t, "batch", "--config", cfg, "--source", records, "--subset", "train")
	require.NoError(t, err)
	assert.Contains(t, out, "train: 8 ok, 0 failed")

	_, err = run(t, "batch", "--config", cfg, "--source", records, "--subset", "holdout")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	records, cfg := writeFixture(t, 4)
	db := filepath.Join(t.TempDir(), "structures.db")

	out, err := run(t, "import", records, db, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 4 records, 4 stored")

	out, err = run(t, "split", "--config", cfg, "--source", db)
	require.NoError(t, err)
	assert.Contains(t, out, "train 4")
}

func TestRenderCommand(t *testing.T) {
	records, cfg := writeFixture(t, 1)
	png := filepath.Join(t.TempDir(), "overlay.png")
	_, err := run(t, "render", "--config", cfg, "--source", records, "--debug", "--out", png)
	require.NoError(t, err)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("workers: 0\n"), 0o644))
	_, err := run(t, "split", "--config", cfg)
	assert.Error(t, err)
}
