// Command server exposes the padezh inflector as a JSON REST API.
//
// Endpoints:
//
//	GET /api/inflect?word=<word>&case=<case>[&type=&gender=&animate=&plural=]
//	GET /api/phrase?text=<phrase>&case=<case>[&kind=profession|organization|term|any&animate=]
//	GET /api/name?name=<name>&case=<case>[&part=full|first|patronymic|surname&gender=]
//	GET /api/numeral?n=<integer>&case=<case>[&unit=<noun>]
//	GET /api/spell?number=<decimal>
//	GET /api/ordinal?number=<integer>[&gender=]
//	GET /api/paradigm?text=<phrase>
//	GET /healthz
//	GET /metrics
//
// Configuration comes from flags, PADEZH_* environment variables and an
// optional YAML file (--config).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/padezh/padezh"
	"github.com/padezh/padezh/internal/config"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// termination signal.
const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfgFile, _ := fs.GetString("config")
	cfg, err := config.Load(cfgFile, fs)
	if err != nil {
		return err
	}
	log, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	opts := []padezh.Option{padezh.WithLogger(log), padezh.WithCacheSize(cfg.Cache.Size)}
	if cfg.Data.Dir != "" {
		log.Info("loading data", "dir", cfg.Data.Dir)
		opts = append(opts, padezh.WithFS(os.DirFS(cfg.Data.Dir)))
	}
	start := time.Now()
	in, err := padezh.New(opts...)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	log.Info("data loaded", "took", time.Since(start))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newRouter(in, cfg.CORS.AllowedOrigins, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
