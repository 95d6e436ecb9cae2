package main

import (
	bplus "BPlusIndex/bplustree"
	"BPlusIndex/config"
	"BPlusIndex/logging"
	executor "BPlusIndex/query_executor"
	"BPlusIndex/session"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Default()
	if err := cfg.FromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "bptree",
		Short:         "in-memory B+ tree index answering insert/remove/lookup/lowerbound on stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cfg.BindFlags(root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	// Initialize B+ Tree
	tree, err := bplus.NewOrdered[int64, int64](
		bplus.WithOrder(cfg.Order),
		bplus.WithLogger(log.WithField("component", "bplustree")),
	)
	if err != nil {
		return err
	}

	cache, err := executor.NewLookupCache(cfg.CacheSize)
	if err != nil {
		return err
	}
	defer cache.Close()

	opts := []executor.Option{
		executor.WithCache(cache),
		executor.WithLogger(log.WithField("component", "executor")),
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, executor.WithMetrics(executor.NewMetrics(reg, tree)))
		shutdown := serveMetrics(cfg.MetricsAddr, reg, log)
		defer shutdown()
	}

	vm := executor.NewVM(tree, opts...)
	d := session.NewDispatcher(vm, log.WithField("component", "session"))
	defer d.LogSummary()

	log.WithFields(logrus.Fields{
		"order":      cfg.Order,
		"cache_size": cfg.CacheSize,
	}).Info("index ready")

	if cfg.Interactive {
		return session.RunInteractive(d, log, historyFile())
	}
	return session.Run(ctx, os.Stdin, os.Stdout, d)
}

func serveMetrics(addr string, reg *prometheus.Registry, log *logrus.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	log.WithField("addr", addr).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bptree_history")
}
