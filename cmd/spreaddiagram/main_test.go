package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/text"
)

const no2 = `datetime,station_paris,model_paris
2019-05-07 01:00:00,25.0,22.0
2019-05-07 02:00:00,27.7,30.1
2019-05-07 03:00:00,50.4,
2019-05-07 04:00:00,61.9,55.0
2019-05-07 05:00:00,72.4,70.2
2019-05-07 06:00:00,77.7,80.0
`

func writeData(t *testing.T, data string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "no2.csv")
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))
	return file
}

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"data.csv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.input)
	assert.Equal(t, "png", cfg.format)
	assert.Equal(t, ".", cfg.outdir)
	assert.True(t, cfg.opts.Annotate)
	assert.True(t, cfg.loader.IndexColumn)
	assert.Nil(t, cfg.opts.Scatter.Extra)
	assert.Nil(t, cfg.opts.TextHandler)

	cfg, err = parseArgs([]string{
		"-outdir", "out", "-no-annotation", "-latex", "-color", "red",
		"-obs", "a", "-mod", "b", "-alpha", "0.5", "data.csv", "SVG",
	}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.format)
	assert.Equal(t, "out", cfg.outdir)
	assert.False(t, cfg.opts.Annotate)
	assert.IsType(t, text.Latex{}, cfg.opts.TextHandler)
	assert.Equal(t, "a", cfg.loader.Observed)
	assert.Equal(t, "b", cfg.loader.Modelled)
	assert.Equal(t, 0.5, cfg.opts.Scatter.Alpha)
	assert.Equal(t, "red", cfg.opts.Scatter.Extra["color"])
	assert.NotContains(t, cfg.opts.Scatter.Extra, "shape")
}

func TestParseArgsUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"a.csv", "png", "extra"},
		{"a.csv", "bmp"},
		{"-size", "0", "a.csv"},
		{"-alpha", "2", "a.csv"},
		{"-unknown", "a.csv"},
	}
	for _, args := range tests {
		if _, err := parseArgs(args, io.Discard); err == nil {
			t.Errorf("parseArgs(%q): expected error", args)
		} else {
			assert.ErrorIs(t, err, errUsage)
		}
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2019, 5, 7, 13, 0, 0, 0, time.UTC)
	got := outputName("plots", now, "pdf")
	assert.Equal(t, filepath.Join("plots", "20190507_evaluation.pdf"), got)
}

func TestRun(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "out")
	cfg, err := parseArgs([]string{"-outdir", outdir, writeData(t, no2), "svg"}, io.Discard)
	require.NoError(t, err)

	now := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	file, err := run(cfg, zap.NewNop(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outdir, "20240229_evaluation.svg"), file)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "<svg"))
}

func TestRealMain(t *testing.T) {
	outdir := t.TempDir()
	data := writeData(t, no2)

	assert.Equal(t, ExitOK, realMain([]string{"-outdir", outdir, data}, io.Discard))
	matches, err := filepath.Glob(filepath.Join(outdir, "*_evaluation.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	assert.Equal(t, ExitUsage, realMain(nil, io.Discard))
	assert.Equal(t, ExitUsage, realMain([]string{"-h"}, io.Discard))
	assert.Equal(t, ExitFailure, realMain([]string{"-outdir", outdir, filepath.Join(outdir, "missing.csv")}, io.Discard))

	// Tightly clustered values give an empty display window.
	cluster := writeData(t, "d,o,m\n1,0.1,0.1\n2,0.11,0.12\n3,0.12,0.115\n")
	assert.Equal(t, ExitFailure, realMain([]string{"-outdir", outdir, cluster}, io.Discard))
}
