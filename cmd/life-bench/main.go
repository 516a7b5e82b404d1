package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifegame/pkg/core"
	"lifegame/pkg/life"
)

type paramSet struct {
	chunkLength int
	workers     int
	parallel    bool
}

func (p paramSet) String() string {
	if !p.parallel {
		return "serial"
	}
	return fmt.Sprintf("chunk=%d workers=%d", p.chunkLength, p.workers)
}

type sweepResult struct {
	params      paramSet
	elapsed     time.Duration
	cellsPerSec float64
}

func main() {
	width := flag.Int("w", 4096, "grid width in cells")
	height := flag.Int("h", 4096, "grid height in cells")
	steps := flag.Int("steps", 64, "generations to run per configuration")
	ruleStr := flag.String("rule", "B3/S23", "rule in B/S notation")
	density := flag.Float64("density", 0.3, "fraction of live cells in the seeded grid")
	seed := flag.Int64("seed", 1337, "seed for the random fill")
	chunks := flag.String("chunks", "32,64,128,256", "comma-separated chunk lengths to sweep")
	workers := flag.String("workers", "", "comma-separated worker counts to sweep, default 1..NumCPU doubling")
	flag.Parse()

	rule, err := life.ParseRule(*ruleStr)
	if err != nil {
		log.Fatal(err)
	}

	chunkOptions, err := parseInts(*chunks)
	if err != nil {
		log.Fatalf("bad -chunks: %v", err)
	}
	workerOptions, err := parseInts(*workers)
	if err != nil {
		log.Fatalf("bad -workers: %v", err)
	}
	if len(workerOptions) == 0 {
		for n := 1; n <= runtime.NumCPU(); n *= 2 {
			workerOptions = append(workerOptions, n)
		}
	}

	sets := []paramSet{{parallel: false}}
	for _, chunk := range chunkOptions {
		for _, n := range workerOptions {
			sets = append(sets, paramSet{chunkLength: chunk, workers: n, parallel: true})
		}
	}

	cells := float64(*width) * float64(*height) * float64(*steps)
	fmt.Printf("Sweeping %d configurations (%dx%d grid, %s, %d steps)\n",
		len(sets), *width, *height, rule, *steps)

	var all []sweepResult
	for _, params := range sets {
		res := runScenario(*height, *width, rule, *density, *seed, *steps, params)
		res.cellsPerSec = cells / res.elapsed.Seconds()
		all = append(all, res)
		fmt.Printf("  %-24s %10s  %8.1f Mcells/s\n",
			res.params, res.elapsed.Round(time.Millisecond), res.cellsPerSec/1e6)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].cellsPerSec > all[j].cellsPerSec })

	fmt.Printf("\nTop 5 configurations:\n")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) %-24s %8.1f Mcells/s\n", i+1, res.params, res.cellsPerSec/1e6)
	}
	best := all[0]
	fmt.Printf("\nBest overall: %s at %.1f Mcells/s\n", best.params, best.cellsPerSec/1e6)
}

func runScenario(rows, cols int, rule life.Rule, density float64, seed int64, steps int, params paramSet) sweepResult {
	opts := []life.Option{life.WithParallel(params.parallel)}
	if params.parallel {
		opts = append(opts,
			life.WithChunkLength(params.chunkLength),
			life.WithWorkers(params.workers))
	}
	grid, err := life.NewGrid(rows, cols, rule, opts...)
	if err != nil {
		log.Fatal(err)
	}
	grid.Randomize(core.NewRNG(seed).Source(), density)

	start := time.Now()
	grid.Advance(steps)
	return sweepResult{params: params, elapsed: time.Since(start)}
}

func parseInts(csv string) ([]int, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n > 0 {
			out = append(out, n)
		}
	}
	return out, nil
}
