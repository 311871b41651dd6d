// SPDX-License-Identifier: MIT

// Command dsaviz runs catalog algorithms from the command line and serves
// the WebSocket bridge renderers attach to.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/dsaviz/catalog"
	"github.com/katalvlaran/dsaviz/config"
	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/internal/ctxlog"
	"github.com/katalvlaran/dsaviz/sorting"
	"github.com/katalvlaran/dsaviz/stream"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without process globals.
func run(ctx context.Context, in io.Reader, outW, errW io.Writer, args []string) error {
	f, shouldExit, err := parse(args, errW)
	if err != nil || shouldExit {
		return err
	}

	cfg := config.Default()
	if f.config != "" {
		if cfg, err = config.Load(f.config); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	logger, err := cfg.Log.Logger(errW)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	presets, err := cfg.Presets.Catalog()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	cat := catalog.New(presets)

	if f.list {
		return list(outW, cat)
	}

	opts := []engine.Option{engine.WithPacingMs(cfg.Engine.PacingMs)}
	if f.serve != "" {
		// Only the bridge can advance a manual run.
		opts = cfg.Engine.Options()
	}
	if f.pacingMs >= 0 {
		opts = append(opts, engine.WithPacingMs(f.pacingMs))
	}
	if f.animateOnly {
		opts = append(opts, engine.WithAnimateOnly())
	}
	rn := engine.NewRunner(engine.WithLogger(logger))

	if f.serve != "" {
		addr := f.serve
		if addr == "config" {
			addr = cfg.Server.Addr
		}
		if f.algo != "" {
			doc, err := readInput(in, f.input)
			if err != nil {
				return err
			}
			if _, err := start(ctx, cat, rn, f.algo, doc, opts); err != nil {
				return err
			}
		}

		return serve(ctx, addr, cfg.Server.Retain, rn, cat, logger)
	}

	doc, err := readInput(in, f.input)
	if err != nil {
		return err
	}
	if f.race {
		return race(ctx, outW, cat, rn, doc, opts)
	}
	r, err := start(ctx, cat, rn, f.algo, doc, opts)
	if err != nil {
		return err
	}

	return printRun(ctx, outW, r)
}

func list(outW io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(outW, 0, 4, 2, ' ', 0)
	for _, id := range cat.IDs() {
		e, err := cat.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, e.Description)
	}

	return tw.Flush()
}

func readInput(in io.Reader, path string) ([]byte, error) {
	switch path {
	case "":
		return nil, nil
	case "-":
		return io.ReadAll(in)
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		return b, nil
	}
}

func start(ctx context.Context, cat *catalog.Catalog, rn *engine.Runner, id string, doc []byte, opts []engine.Option) (*engine.Run, error) {
	input, err := cat.Decode(id, doc)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	r, err := cat.Run(ctx, rn, id, input, opts...)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return r, nil
}

// outcome is the last JSON line printed for a run.
type outcome struct {
	Status  engine.Status `json:"status"`
	Steps   int           `json:"steps"`
	Elapsed string        `json:"elapsed"`
	Result  any           `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// printRun writes every step of r as one JSON line, then the outcome.
// Cancelling ctx cancels r.
func printRun(ctx context.Context, outW io.Writer, r *engine.Run) error {
	enc := json.NewEncoder(outW)
	for s := range r.Subscribe(context.Background()) {
		if err := enc.Encode(s); err != nil {
			r.Cancel()
			return err
		}
	}
	if _, err := r.Wait(ctx); err != nil {
		r.Cancel()
		return err
	}

	o := outcome{Status: r.Status(), Steps: r.Len(), Elapsed: r.Elapsed().String()}
	o.Result, _ = r.Result()
	if err := r.Err(); err != nil {
		o.Error = err.Error()
	}
	if err := enc.Encode(o); err != nil {
		return err
	}
	if r.Status() == engine.StatusFailed {
		return fmt.Errorf("run %s failed: %w", r.ID(), r.Err())
	}

	return nil
}

func race(ctx context.Context, outW io.Writer, cat *catalog.Catalog, rn *engine.Runner, doc []byte, opts []engine.Option) error {
	input, err := cat.Decode("sort.bubble", doc)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	values, err := cat.Array(input.(*catalog.ArrayInput))
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	out, err := sorting.RunRace(ctx, rn, values, opts...)
	if err != nil {
		return err
	}

	return json.NewEncoder(outW).Encode(out)
}

// serve runs the bridge until ctx ends, then shuts down gracefully and
// cancels every run still in flight.
func serve(ctx context.Context, addr string, retain time.Duration, rn *engine.Runner, cat *catalog.Catalog, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           stream.NewHandler(rn, stream.WithCatalog(cat), stream.WithLogger(logger), stream.WithRetention(retain)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dsaviz: serving", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("dsaviz: shutting down")
	for _, r := range rn.Runs() {
		r.Cancel()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
