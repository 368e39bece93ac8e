package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/tickchart"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(context.Background(), "", envconfig.MapLookuper(nil))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{
		"TICKCHART_WIDTH":  "1024",
		"TICKCHART_SMOOTH": "false",
		"TICKCHART_VALUES": "true",
		"WIDTH":            "1",
	})
	cfg, err := loadConfig(context.Background(), "testdata/config.yaml", env)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Width)
	assert.Equal(t, 480.0, cfg.Height)
	assert.Equal(t, FormatPNG, cfg.Format)
	assert.False(t, cfg.Smooth)
	assert.True(t, cfg.Dashed)
	assert.True(t, cfg.Values)
	assert.Equal(t, "#4e79a7", cfg.Palette().Curve)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(context.Background(), "testdata/missing.yaml", envconfig.MapLookuper(nil))
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, cfg.Format)
}

func TestLoadConfigInvalid(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{
		"TICKCHART_FORMAT": "gif",
	})
	cfg, err := loadConfig(context.Background(), "", env)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	env = envconfig.MapLookuper(map[string]string{
		"TICKCHART_WIDTH": "wide",
	})
	_, err = loadConfig(context.Background(), "", env)
	assert.Error(t, err)
}

func TestOverrideConfig(t *testing.T) {
	env := envconfig.MapLookuper(map[string]string{
		"TICKCHART_FORMAT": "gif",
		"TICKCHART_HEIGHT": "200",
		"TICKCHART_DASHED": "true",
	})
	cfg, err := loadConfig(context.Background(), "testdata/config.yaml", env)
	require.NoError(t, err)

	set := flag.NewFlagSet("draw", flag.ContinueOnError)
	defineFlags(set)
	require.NoError(t, set.Parse([]string{"-format", "svg", "-dashed=false", "-width", "100", "input.csv"}))
	overrideConfig(&cfg, set)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatSVG, cfg.Format)
	assert.Equal(t, 100.0, cfg.Width)
	assert.Equal(t, 200.0, cfg.Height)
	assert.False(t, cfg.Dashed)
	assert.True(t, cfg.Smooth)
	assert.Equal(t, "", flagString(set, "config"))
	assert.Equal(t, []string{"input.csv"}, set.Args())
}

func TestRenderChart(t *testing.T) {
	series := tickchart.Series{
		tickchart.NewSample("2024-03-02", 47),
		tickchart.NewSample("2024-03-01", 12),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, f := range []string{FormatSVG, FormatPNG, FormatOps} {
		t.Run(f, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Format = f

			var buf bytes.Buffer
			require.NoError(t, renderChart(&buf, series, cfg, logger))
			assert.NotZero(t, buf.Len())
		})
	}

	cfg := defaultConfig()
	cfg.Format = FormatOps
	var buf bytes.Buffer
	require.NoError(t, renderChart(&buf, series, cfg, logger))
	assert.True(t, strings.HasPrefix(buf.String(), "clearRect 0 0 300 300\n"))
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Format = FormatOps
	cfg.Smooth = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	files := []string{"testdata/series.csv", "testdata/other.json"}
	require.NoError(t, renderAll(context.Background(), files, dir, cfg, logger))

	buf, err := os.ReadFile(filepath.Join(dir, "series.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(buf), "bezierCurveTo"))

	buf, err = os.ReadFile(filepath.Join(dir, "other.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(buf), "bezierCurveTo"))
}

func TestRenderAllSameName(t *testing.T) {
	var (
		dir   = t.TempDir()
		files = []string{
			filepath.Join(dir, "a", "series.csv"),
			filepath.Join(dir, "b", "series.csv"),
		}
		input = []string{
			"date,value\n2024-03-01,5\n",
			"date,value\n2024-03-01,5\n2024-03-02,8\n",
		}
	)
	for i, f := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, os.WriteFile(f, []byte(input[i]), 0o644))
	}
	cfg := defaultConfig()
	cfg.Format = FormatOps
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	out := filepath.Join(dir, "out")
	require.NoError(t, renderAll(context.Background(), files, out, cfg, logger))

	fst, err := os.ReadFile(filepath.Join(out, "series.txt"))
	require.NoError(t, err)
	lst, err := os.ReadFile(filepath.Join(out, "series-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(fst), "fillRect"))
	assert.Equal(t, 2, strings.Count(string(lst), "fillRect"))
}

func TestOutputNames(t *testing.T) {
	files := []string{
		"a/sales.2023.csv",
		"b/sales.2024.csv",
		"a/s.csv",
		"b/s.json",
		"c/s.yaml",
		"s-1.csv",
	}
	want := []string{
		filepath.Join("out", "sales.2023.png"),
		filepath.Join("out", "sales.2024.png"),
		filepath.Join("out", "s.png"),
		filepath.Join("out", "s-1.png"),
		filepath.Join("out", "s-2.png"),
		filepath.Join("out", "s-1-1.png"),
	}
	assert.Equal(t, want, outputNames(files, "out", "png"))
}

func TestRenderFile(t *testing.T) {
	var (
		out    = filepath.Join(t.TempDir(), "series.txt")
		cfg    = defaultConfig()
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	)
	cfg.Format = FormatOps
	require.NoError(t, renderFile("testdata/series.csv", out, cfg, logger))

	buf, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(buf), "stroke\n"))

	err = renderFile("testdata/series.csv", filepath.Join(t.TempDir(), "missing", "series.txt"), cfg, logger)
	assert.Error(t, err)
}

func TestGetIdent(t *testing.T) {
	assert.Equal(t, "series", getIdent("data/series.csv"))
	assert.Equal(t, "series.tar", getIdent("series.tar.gz"))
	assert.Equal(t, "sales.2023", getIdent("sales.2023.csv"))
}
