// Package inspect implements the command that prints the headers of BMP
// files and whether they can be recolored.
package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m3z0id/chroma/bitmap"
	"github.com/m3z0id/chroma/report"
)

type CLICmd struct {
	Files []string `arg:"" help:"BMP files to inspect" type:"existingfile"`
	YAML  bool     `help:"Print a YAML document instead of text" name:"yaml" default:"false"`
}

// FileReport is the report of one inspected file.
type FileReport struct {
	File    string        `yaml:"file"`
	Valid   bool          `yaml:"valid"`
	Problem string        `yaml:"problem,omitempty"`
	Header  report.Header `yaml:"header"`
}

// Inspect decodes and checks the headers of the bitmap in buf. Header
// problems are reported, not returned; the error is set only when the
// headers cannot be decoded at all.
func Inspect(name string, buf []byte) (FileReport, error) {
	fh, ih, err := bitmap.Decode(buf)
	if err != nil {
		return FileReport{}, fmt.Errorf("could not decode headers of %q: %w", name, err)
	}

	fr := FileReport{
		File:   name,
		Valid:  true,
		Header: report.Build(fh, ih),
	}
	if err = bitmap.Check(fh, ih, len(buf)); err == nil {
		_, err = bitmap.NewRaster(buf, fh, ih)
	}
	if err != nil {
		fr.Valid = false
		fr.Problem = err.Error()
	}
	return fr, nil
}

func (c *CLICmd) Run(out io.Writer) error {
	var reports []FileReport
	var errCount int
	for _, name := range c.Files {
		logger := slog.Default().With("file", name)

		buf, err := os.ReadFile(name)
		if err != nil {
			errCount++
			logger.Error("could not read image", "error", err)
			continue
		}
		fr, err := Inspect(name, buf)
		if err != nil {
			errCount++
			logger.Error("could not inspect image", "error", err)
			continue
		}
		if !fr.Valid {
			logger.Warn("image cannot be recolored", "problem", fr.Problem)
		}
		reports = append(reports, fr)
	}

	var err error
	if c.YAML {
		err = report.WriteYAML(out, reports)
	} else {
		err = writeText(out, reports)
	}
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	if errCount > 0 {
		return fmt.Errorf("error inspecting %d files", errCount)
	}
	return nil
}

func writeText(out io.Writer, reports []FileReport) error {
	for i, fr := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "%s\n", fr.File); err != nil {
			return err
		}
		if err := report.WriteText(out, fr.Header); err != nil {
			return err
		}

		status := "yes"
		if !fr.Valid {
			status = "no, " + fr.Problem
		}
		if _, err := fmt.Fprintf(out, "%-18s : %s\n", "Recolorable", status); err != nil {
			return err
		}
	}
	return nil
}
