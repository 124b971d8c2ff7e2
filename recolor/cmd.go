// Package recolor implements the command that runs BMP files through a
// color transform and saves the results.
package recolor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"github.com/m3z0id/chroma/parallel"
	"github.com/m3z0id/chroma/pipeline"
	"github.com/m3z0id/chroma/transform"
)

type CLICmd struct {
	Paths     []string       `arg:"" help:"BMP files, or folders whose .bmp files are recolored" type:"path"`
	Transform transform.Kind `help:"Color transform to apply: ${transforms}" short:"t" default:"invert-rgb"`
	Output    string         `help:"Output file name. Only valid with a single input file" short:"o" type:"path"`
	Dest      string         `help:"Destination folder. Defaults to the folder of each source file" type:"path"`
	Format    string         `help:"Output format" enum:"bmp,png,tiff" default:"bmp"`
	Force     bool           `help:"Overwrite existing output files" default:"false"`

	files []string `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	c.files = c.files[:0]
	for _, p := range c.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("invalid input path %q: %w", p, err)
		}
		if !info.IsDir() {
			c.files = append(c.files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return fmt.Errorf("unable to read folder %q: %w", p, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && strings.EqualFold(filepath.Ext(entry.Name()), ".bmp") {
				c.files = append(c.files, filepath.Join(p, entry.Name()))
			}
		}
	}

	if len(c.files) == 0 {
		return fmt.Errorf("no BMP files found")
	}
	if c.Output != "" && len(c.files) > 1 {
		return fmt.Errorf("--output needs exactly one input file, got %d", len(c.files))
	}
	if c.Transform.Func() == nil {
		return fmt.Errorf("invalid transform %v", c.Transform)
	}
	return nil
}

// Files returns the input files selected by Validate.
func (c *CLICmd) Files() []string {
	return c.files
}

// destination returns the output path of src: the source stem followed by
// the transform suffix and the format extension.
func (c *CLICmd) destination(src string) string {
	if c.Output != "" {
		return c.Output
	}
	dir := c.Dest
	if dir == "" {
		dir = filepath.Dir(src)
	}
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+c.Transform.Suffix()+"."+c.Format)
}

// Run recolors the input files on pool and waits for them. A single file
// has its rows split across the pool size instead.
func (c *CLICmd) Run(pool *parallel.Pool) error {
	if c.Dest != "" {
		if err := os.MkdirAll(c.Dest, 0o755); err != nil {
			return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
		}
	}

	rowWorkers := 1
	if len(c.files) == 1 {
		rowWorkers = pool.Size()
	}

	var processedCount, errCount atomic.Uint64
	for _, src := range c.files {
		pool.Do(func() {
			dest := c.destination(src)
			logger := slog.Default().With("file", src, "transform", c.Transform)

			if err := c.recolor(logger, src, dest, rowWorkers); err != nil {
				errCount.Add(1)
				logger.Error("could not recolor image", "dest", dest, "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) recolor(logger *slog.Logger, src, dest string, workers int) error {
	if err := checkFile(src, dest, c.Force); err != nil {
		return err
	}

	buf, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("could not read source file %q: %w", src, err)
	}

	res, err := pipeline.ApplyKind(buf, c.Transform, pipeline.Options{
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("recolored", "shape", res.Info.Shape, "width", res.Width, "height", res.Height)

	if c.Output != "" {
		if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("unable to create destination folder for %q: %w", dest, err)
		}
	}
	return save(buf, c.Format, dest)
}
