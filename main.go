package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/m3z0id/chroma/inspect"
	"github.com/m3z0id/chroma/parallel"
	"github.com/m3z0id/chroma/recolor"
	"github.com/m3z0id/chroma/transform"
)

type cli struct {
	Workers  int        `help:"Number of parallel workers. Defaults to GOMAXPROCS" short:"w" env:"CHROMA_WORKERS" default:"0"`
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info" env:"CHROMA_LOG_LEVEL"`
	LogJSON  bool       `help:"Log as JSON" name:"log-json" default:"false"`

	Recolor recolor.CLICmd `cmd:"" help:"Rewrite the pixels of BMP files through a color transform"`
	Info    inspect.CLICmd `cmd:"" help:"Print the headers of BMP files"`
}

func setupLogging(w io.Writer, level slog.Level, asJSON bool) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("chroma"),
		kong.Description("Apply color transforms to 24-bit BMP images."),
		kong.UsageOnError(),
		kong.Vars{"transforms": strings.Join(transform.Names(), ", ")},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	setupLogging(os.Stderr, c.LogLevel, c.LogJSON)

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Size())

	err := kctx.Run(pool)
	pool.Wait()
	kctx.FatalIfErrorf(err)
}
