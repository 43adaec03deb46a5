package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/brave-chain/api"
	"github.com/luca-patrignani/brave-chain/config"
	"github.com/luca-patrignani/brave-chain/domain/evaluation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brave-chain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file")
	format := fs.String("format", "", "output format: table, plain or json")
	stars := fs.Bool("stars", false, "also rank by stars")
	serve := fs.Bool("serve", false, "serve the evaluator over HTTP")
	addr := fs.String("addr", "", "listen address used with -serve")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage:\n\t%s [flags] <a/b/q><a/b/q><a/b/q>\n\t%s -serve [-addr host:port]\n", fs.Name(), fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, renderError(err))
		return 1
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *stars {
		cfg.Output.ShowStars = true
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, renderError(err))
		return 2
	}
	if !cfg.Output.Color || cfg.Output.Format != config.FormatTable {
		pterm.DisableStyling()
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(level, stderr)

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		server := api.NewServerWithOptions(cfg.Server.Addr,
			api.WithLogger(logger),
			api.WithMode(cfg.Server.Mode),
		)
		if err := server.ListenAndServe(ctx); err != nil {
			logger.Error("server stopped", "error", err)
			return 1
		}
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	result, err := evaluation.Evaluate(fs.Arg(0))
	if err != nil {
		logger.Debug("rejected hand", "input", fs.Arg(0), "error", err)
		fmt.Fprintln(stderr, renderError(err))
		return 1
	}
	logger.Debug("evaluated hand", "hand", result.Hand.String(), "orders", len(result.ByDamage))

	if err := render(stdout, cfg.Output, result); err != nil {
		logger.Error("failed to render result", "error", err)
		return 1
	}
	return 0
}

func newLogger(level pterm.LogLevel, w io.Writer) *slog.Logger {
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(w))
	return slog.New(handler)
}
