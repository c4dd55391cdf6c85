package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/constvec"
	"github.com/momentics/constvec/control"
)

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "constvec-stress: %v\n", err)
		os.Exit(1)
	}
}

func runMain(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	constvec.SetLogger(log.Named("constvec"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := control.NewMetricsRegistry()
	probes := control.NewDebugProbes()
	control.RegisterPlatformProbes(probes)

	log.Info("stress starting",
		zap.Int("capacity", cfg.Capacity),
		zap.Int("pushers", cfg.Pushers),
		zap.Int("per_pusher", cfg.PerPusher),
		zap.Int("readers", cfg.Readers),
		zap.Int("rounds", cfg.Rounds),
		zap.Bool("pin", cfg.Pin),
		zap.Any("platform", probes.DumpState()),
	)
	err = run(ctx, cfg, log, reg)
	log.Info("stress metrics", zap.Any("metrics", reg.GetSnapshot()))
	return err
}

// parseFlags loads an optional config file and applies explicitly set flags on top.
func parseFlags(args []string) (stressConfig, error) {
	fs := flag.NewFlagSet("constvec-stress", flag.ContinueOnError)
	def := defaultStressConfig()
	path := fs.String("config", "", "path to a .toml or .yaml stress config")
	capacity := fs.Int("capacity", def.Capacity, "container capacity")
	pushers := fs.Int("pushers", def.Pushers, "concurrent pushers")
	perPusher := fs.Int("per-pusher", def.PerPusher, "push attempts per pusher")
	readers := fs.Int("readers", def.Readers, "concurrent readers")
	rounds := fs.Int("rounds", def.Rounds, "number of rounds")
	pin := fs.Bool("pin", def.Pin, "pin pushers to CPUs")
	level := fs.String("log-level", def.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return stressConfig{}, err
	}

	cfg := def
	if *path != "" {
		loaded, err := loadStressConfig(*path)
		if err != nil {
			return stressConfig{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = *capacity
		case "pushers":
			cfg.Pushers = *pushers
		case "per-pusher":
			cfg.PerPusher = *perPusher
		case "readers":
			cfg.Readers = *readers
		case "rounds":
			cfg.Rounds = *rounds
		case "pin":
			cfg.Pin = *pin
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.validate(); err != nil {
		return stressConfig{}, err
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
