package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-conway/model"
	"github.com/sheikhrachel/go-conway/rules"
	"github.com/sheikhrachel/go-conway/seed"
	"github.com/sheikhrachel/go-conway/utils"
)

// resolveSeedSource translates the CLI configuration into exactly one
// seeding mode. A pattern file dispatches on its extension; combining one
// with an explicitly set -density flag is a usage error.
func resolveSeedSource(cfg utils.Config, densitySet bool) (seed.Source, error) {
	if cfg.PatternFile == "" {
		return seed.Random(cfg.RandomDensity), nil
	}
	if densitySet {
		return seed.Source{}, errors.New("-pattern and -density are mutually exclusive")
	}
	if strings.EqualFold(filepath.Ext(cfg.PatternFile), ".json") {
		return seed.FromJSON(cfg.PatternFile), nil
	}
	return seed.FromRLE(cfg.PatternFile), nil
}

// cycleWindow bounds how far back the detector looks, so it spots still
// lifes and oscillators with period < cycleWindow.
const cycleWindow = 5

// cycleDetector spots boards stuck in a static state or a short cycle by
// remembering recent grid fingerprints.
type cycleDetector struct {
	recent []string
}

// observe records the fingerprint and reports whether it repeats a state
// seen within the window.
func (d *cycleDetector) observe(fingerprint string) bool {
	seen := false
	for _, h := range d.recent {
		if h == fingerprint {
			seen = true
			break
		}
	}

	d.recent = append(d.recent, fingerprint)
	if len(d.recent) > cycleWindow {
		d.recent = d.recent[1:]
	}

	return seen
}

// printRunInfo shows the initial game information
func printRunInfo(grid *model.Grid) {
	edge := "clipped"
	if grid.Edge() == model.EdgeWrap {
		edge = "torus"
	}
	fmt.Printf("Rule: %s | Edges: %s\n", rules.RuleString, edge)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// writeStatus writes the per-frame status lines shown above the board.
func writeStatus(buf *bytes.Buffer, generation, living int, isStagnant bool, grid *model.Grid, stats *utils.Stats) {
	var (
		density = float64(living) / float64(grid.Rows()*grid.Cols()) * 100
		status  = "Active"
	)
	if isStagnant {
		status = "Stagnant"
	}
	if living == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(buf, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, living, density, status)
	fmt.Fprintf(buf, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}

// runSimulation drives the timed refresh loop until the board dies out, a
// generation limit or stagnation threshold is reached, or ctx is canceled.
// The refresh rate must be positive; anything else is rejected up front.
//
// One goroutine owns the grid, stepping it and rendering each generation
// into a pooled buffer; a second flushes finished frames to out. Frames
// are immutable once handed off, so the grid itself is never shared.
func runSimulation(ctx context.Context, grid *model.Grid, cfg utils.Config, out io.Writer, stats *utils.Stats) error {
	if cfg.FrameRate <= 0 {
		return errors.Errorf("[runSimulation] refresh rate must be positive, got %v", cfg.FrameRate)
	}

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan *bytes.Buffer, 1)
		pool      = model.NewFramePool()
		renderer  = &model.TerminalRenderer{}
		detector  = &cycleDetector{}
	)

	eg.Go(func() error {
		defer close(frames)

		ticker := time.NewTicker(cfg.FrameRate)
		defer ticker.Stop()

		var (
			generation    = 0
			stagnantCount = 0
			lastFrameTime = time.Now()
		)

		for {
			var (
				living     = grid.CountLivingCells()
				isStagnant = detector.observe(grid.Fingerprint())
			)
			if isStagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			frameStart := time.Now()
			stats.Update(generation, living, frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart

			buf := pool.Get()
			renderer.Reset(buf)
			writeStatus(buf, generation, living, isStagnant, grid, stats)
			renderer.Frame(grid, buf)

			select {
			case frames <- buf:
			case <-egCtx.Done():
				pool.Put(buf)
				return egCtx.Err()
			}

			switch {
			case living == 0:
				return nil // extinct; the final frame already shows it
			case cfg.MaxGenerations > 0 && generation >= cfg.MaxGenerations:
				return nil
			case cfg.StagnationThreshold > 0 && stagnantCount >= cfg.StagnationThreshold:
				return nil
			}

			select {
			case <-ticker.C:
			case <-egCtx.Done():
				return egCtx.Err()
			}

			grid.Step()
			generation++
		}
	})

	eg.Go(func() error {
		for buf := range frames {
			if _, err := out.Write(buf.Bytes()); err != nil {
				return errors.Wrap(err, "[runSimulation] failed to write frame")
			}
			pool.Put(buf)
		}
		return nil
	})

	return eg.Wait()
}
