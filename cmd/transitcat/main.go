// SPDX-License-Identifier: MIT

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

	"github.com/google/uuid"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/handler"
	"github.com/katalvlaran/transitcat/jsonio"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration")
	inPath := flag.String("in", "", "JSON document to read (default stdin)")
	outPath := flag.String("out", "", "file to write responses to (default stdout)")
	serve := flag.Bool("serve", false, "serve HTTP queries instead of answering stat_requests")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Responses may go to stdout, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Logging.SlogLevel(),
	})).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	if err := run(cfg, *inPath, *outPath, *serve, logger); err != nil {
		logger.Error("transitcat failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.AppConfig, inPath, outPath string, serve bool, logger *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := jsonio.Read(in)
	if err != nil {
		return err
	}

	cat, err := catalogue.Build(doc.Batch())
	if err != nil {
		return err
	}
	logger.Info("catalogue built", "stops", cat.StopCount(), "buses", cat.BusCount())

	settings := doc.Routing(cfg.Routing)
	tr, err := router.NewTransportRouter(cat, settings)
	if err != nil {
		return err
	}
	logger.Info("routing graph built",
		"edges", tr.Graph().EdgeCount(),
		"bus_wait_time", settings.BusWaitTime,
		"bus_velocity", settings.BusVelocity,
	)

	rs, err := doc.Render(cfg.Render)
	if err != nil {
		return err
	}
	var opts []handler.Option
	if cfg.Cache.RouteTTL > 0 {
		opts = append(opts, handler.WithRouteCache(cfg.Cache.RouteTTL))
	}
	h, err := handler.New(cat, tr, rs, opts...)
	if err != nil {
		return err
	}

	if serve {
		srv, err := server.New(h, cfg.Server, logger)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	}

	resps := h.Process(doc.StatRequests)
	logger.Debug("stat requests answered", "count", len(resps))

	return writeResponses(outPath, resps)
}

// writeResponses writes resps to path, or to stdout when path is empty.
// A failed close is reported so a truncated file never passes as success.
func writeResponses(path string, resps []jsonio.Response) (err error) {
	if path == "" {
		return jsonio.WriteResponses(os.Stdout, resps)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return jsonio.WriteResponses(f, resps)
}
