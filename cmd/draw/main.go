package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/tickchart"
	"github.com/midbel/tickchart/decode"
	"github.com/midbel/tickchart/imgdraw"
	"github.com/midbel/tickchart/svgdraw"
	"golang.org/x/sync/errgroup"
)

func main() {
	defineFlags(flag.CommandLine)
	flag.Parse()

	ctx := context.Background()
	cfg, err := loadConfig(ctx, flagString(flag.CommandLine, "config"), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	overrideConfig(&cfg, flag.CommandLine)

	logger := getLogger(cfg.Verbose)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	switch flag.NArg() {
	case 0:
		logger.Error("no input file given")
		os.Exit(1)
	case 1:
		err = renderFile(flag.Arg(0), flagString(flag.CommandLine, "file"), cfg, logger)
	default:
		err = renderAll(ctx, flag.Args(), flagString(flag.CommandLine, "dir"), cfg, logger)
	}
	if err != nil {
		logger.Error("rendering failed", "err", err)
		os.Exit(2)
	}
}

func getLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// renderAll renders each file concurrently in dir, naming the output after
// the input file.
func renderAll(ctx context.Context, files []string, dir string, cfg Config, logger *slog.Logger) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var (
		outputs = outputNames(files, dir, cfg.Ext())
		grp, _  = errgroup.WithContext(ctx)
	)
	grp.SetLimit(4)
	for i := range files {
		file, out := files[i], outputs[i]
		grp.Go(func() error {
			return renderFile(file, out, cfg, logger.With("file", file))
		})
	}
	return grp.Wait()
}

// outputNames gives a distinct output path to every input file. Inputs
// sharing the same name get a numeric suffix in their order of appearance.
func outputNames(files []string, dir, ext string) []string {
	var (
		seen = make(map[string]struct{})
		list = make([]string, 0, len(files))
	)
	for _, f := range files {
		var (
			ident = getIdent(f)
			out   = filepath.Join(dir, ident+"."+ext)
		)
		for i := 1; ; i++ {
			if _, ok := seen[out]; !ok {
				break
			}
			out = filepath.Join(dir, fmt.Sprintf("%s-%d.%s", ident, i, ext))
		}
		seen[out] = struct{}{}
		list = append(list, out)
	}
	return list
}

func renderFile(file, result string, cfg Config, logger *slog.Logger) (err error) {
	series, err := decode.File(file, decode.WithColumns(cfg.DateColumn, cfg.ValueColumn))
	if err != nil {
		return err
	}
	logger.Debug("series decoded", "samples", len(series))

	var w io.Writer = os.Stdout
	if result != "" {
		f, ferr := os.Create(result)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := renderChart(bw, series, cfg, logger); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return bw.Flush()
}

func renderChart(w io.Writer, series tickchart.Series, cfg Config, logger *slog.Logger) error {
	var (
		lay = tickchart.ComputeLayout(series, cfg.Frame(), cfg.Options())
		rdr = tickchart.Renderer{
			Palette: cfg.Palette(),
			Logger:  logger,
		}
	)
	switch cfg.Format {
	case FormatSVG:
		c := svgdraw.New(cfg.Width, cfg.Height)
		rdr.Render(c, lay)
		return c.Render(w)
	case FormatPNG:
		c, err := imgdraw.New(int(cfg.Width), int(cfg.Height))
		if err != nil {
			return err
		}
		rdr.Render(c, lay)
		return c.EncodePNG(w)
	case FormatOps:
		var rec tickchart.Recorder
		rdr.Render(&rec, lay)
		_, err := io.WriteString(w, rec.String())
		return err
	default:
		return fmt.Errorf("%s: unsupported output format", cfg.Format)
	}
}

func getIdent(file string) string {
	file = filepath.Base(file)
	return strings.TrimSuffix(file, filepath.Ext(file))
}
