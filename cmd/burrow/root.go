package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/burrow/cache"
	"github.com/katalvlaran/burrow/config"
	"github.com/katalvlaran/burrow/internal/logging"
	"github.com/katalvlaran/burrow/metrics"
	"github.com/katalvlaran/burrow/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "burrow",
	Short:         "burrow finds the cheapest way to sort amphipods into their rooms",
	Long:          `burrow reads a burrow drawing and computes the minimum total energy needed to move every amphipod into its own room.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a burrow.yaml configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the result cache (overrides the config file)")
}

// runtimeDeps is what every command builds from flags and the config file.
type runtimeDeps struct {
	cfg      config.Config
	log      *slog.Logger
	svc      *service.Service
	registry *prometheus.Registry
	close    func()
}

// setup loads the configuration, applies flag overrides and wires the service.
func setup(cmd *cobra.Command) (*runtimeDeps, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logging.New(level)

	layout, err := cfg.BoardLayout()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	deps := &runtimeDeps{cfg: cfg, log: log, registry: reg, close: func() {}}
	opts := []service.Option{
		service.WithLayout(layout),
		service.WithLogger(log),
		service.WithMaxEnergy(cfg.Solver.MaxEnergy),
		service.WithMetrics(metrics.New(reg)),
	}

	switch {
	case cfg.Cache.Disabled:
	case cfg.Cache.RedisAddr != "":
		rc := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB,
			cache.WithPrefix(cfg.Cache.Prefix), cache.WithTTL(cfg.Cache.TTL))
		if err := rc.Ping(cmd.Context()); err != nil {
			log.Warn("redis cache unavailable, continuing without it", "addr", cfg.Cache.RedisAddr, "error", err)
			_ = rc.Close()
		} else {
			opts = append(opts, service.WithCache(rc))
			deps.close = func() { _ = rc.Close() }
		}
	default:
		opts = append(opts, service.WithCache(cache.NewMemory(cfg.Cache.TTL)))
	}

	deps.svc = service.New(opts...)

	return deps, nil
}
