// Command pi estimates π three ways over the same workload and
// compares their wall times.
//
// Monitor mode pipes random points from producers to consumers through
// a blocking queue. Sequential mode iterates on a single goroutine.
// Parallel mode fans out to independent workers that share nothing.
//
// Usage:
//
//	go run ./cmd/pi -workers 8 -points 65536 -work 50ns
//	go run ./cmd/pi -progress 1s -fgprof pi.pprof
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/felixge/fgprof"

	"github.com/andrewwang247/blocking-queue/internal/pi"
	"github.com/andrewwang247/blocking-queue/internal/progress"
)

func main() {
	def := pi.DefaultConfig()
	workers := flag.Int("workers", def.Workers, "producers and consumers each")
	points := flag.Int("points", def.PointsPerWorker, "points per producer")
	work := flag.Duration("work", def.WorkPerPoint, "simulated work per point")
	interval := flag.Duration("progress", 0, "progress report interval (0 disables)")
	profile := flag.String("fgprof", "", "write an fgprof wall-clock profile to this file")
	flag.Parse()

	cfg := pi.Config{
		Workers:         *workers,
		PointsPerWorker: *points,
		WorkPerPoint:    *work,
	}
	total := cfg.TotalPoints()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pi: %v\n", err)
			os.Exit(1)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				fmt.Fprintf(os.Stderr, "pi: fgprof: %v\n", err)
			}
			f.Close()
		}()
	}

	fmt.Println("MONTE CARLO PI ESTIMATOR")
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("  Additional %v of work added per point.\n", cfg.WorkPerPoint)
	fmt.Printf("  Each mode processes %d points.\n", total)

	// Monitor: producers → blocking queue → consumers
	fmt.Println()
	fmt.Println("Monitor execution using blocking queue.")
	fmt.Printf("  Running %d producers and %d consumers, each processing %d points...\n",
		cfg.Workers, cfg.Workers, cfg.PointsPerWorker)
	mon := run(cfg, *interval, pi.Monitor)
	report(mon)

	// Sequential: one goroutine, no handoff
	fmt.Println()
	fmt.Println("Sequential execution using iteration.")
	fmt.Printf("  Processing %d points iteratively...\n", total)
	seq := run(cfg, *interval, pi.Sequential)
	report(seq)

	// Parallel: independent workers, nothing shared
	fmt.Println()
	fmt.Println("Parallel execution using non-blocking workers.")
	fmt.Printf("  Running %d workers sharing %d points...\n", 2*cfg.Workers, total)
	par := run(cfg, *interval, pi.Parallel)
	report(par)

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("  Sequential:  %v\n", seq.Elapsed)
	fmt.Printf("  Monitor:     %v (%.2fx vs sequential)\n", mon.Elapsed, speedup(seq, mon))
	fmt.Printf("  Parallel:    %v (%.2fx vs sequential)\n", par.Elapsed, speedup(seq, par))
}

// run executes one mode, wiring a fresh progress reporter around it
// when an interval is set. The reporter is stopped before the result
// returns so modes never interleave output.
func run(cfg pi.Config, every time.Duration, mode func(pi.Config) pi.Result) pi.Result {
	if every <= 0 {
		return mode(cfg)
	}
	var track progress.Tracker
	cfg.Track = &track
	rep := progress.StartReporter(os.Stdout, every, &track)
	defer rep.Stop()
	return mode(cfg)
}

func report(r pi.Result) {
	fmt.Printf("  Elapsed time: %d ms\n", r.Elapsed.Milliseconds())
	fmt.Printf("  Estimate: %.6f\n", r.Estimate())
	fmt.Printf("  Percent error: %.4f%%\n", r.ErrorPercent())
}

func speedup(base, other pi.Result) float64 {
	return float64(base.Elapsed.Nanoseconds()) / float64(other.Elapsed.Nanoseconds())
}
