package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/seed"
	"github.com/sheikhrachel/go-conway/utils"
)

const configFile = "config.json"

// seedOptions maps the configuration onto engine seeding options. A zero
// -seed leaves Options.Rand nil so initialization falls back to a
// time-derived stream; any other value pins the PCG for reproducible runs.
func seedOptions(cfg utils.Config) seed.Options {
	opts := seed.Options{Rows: cfg.Rows, Cols: cfg.Cols}
	if cfg.Wrap {
		opts.Edge = model.EdgeWrap
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(uint64(cfg.Seed), 0))
	}
	return opts
}

func main() {
	cfg, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		cfg = utils.DefaultConfig()
	}

	cfg.Bind(flag.CommandLine)
	flag.Parse()

	densitySet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "density" {
			densitySet = true
		}
	})

	src, err := resolveSeedSource(cfg, densitySet)
	if err != nil {
		log.Fatalf("invalid arguments: %+v", err)
	}

	grid, err := seed.Initialize(seedOptions(cfg), src)
	if err != nil {
		log.Fatalf("failed to seed grid: %+v", err)
	}

	printRunInfo(grid)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if err := runSimulation(ctx, grid, cfg, os.Stdout, stats); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("simulation failed: %+v", err)
	}

	fmt.Printf("\nSimulation ended after %d generations (%.1f gen/sec, %.1fs)\n",
		stats.TotalGenerations, stats.GenerationsPerSecond, time.Since(stats.StartTime).Seconds())
}
