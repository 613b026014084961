// Package montecarlo draws repeated samples from a normal distribution
// around a central estimate and summarizes them as mean and P10/P90
// percentiles. Sampling is split across workers; each worker owns a disjoint
// slice of the sample buffer and a seed-derived generator, so results for a
// given seed and worker count are reproducible.
package montecarlo

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

const (
	defaultIterations = 1000
	defaultWorkers    = 4

	// seedStride separates per-worker generator seeds.
	seedStride = 0x9E3779B9
)

// Options tunes a simulation run. Zero values select the defaults; a zero
// Seed draws a fresh seed from the clock.
type Options struct {
	Iterations int
	Workers    int
	Seed       int64
}

// Result summarizes one simulation run.
type Result struct {
	Mean       float64 `json:"mean"`
	P10        float64 `json:"p10"`
	P90        float64 `json:"p90"`
	Iterations int     `json:"iterations"`
}

// Run simulates iterations samples of base + N(0, stddev). A non-positive
// stddev degenerates to the base estimate for all three outputs.
func Run(base, stddev float64, opts Options) Result {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}

	if stddev <= 0 {
		return Result{Mean: base, P10: base, P90: base, Iterations: iterations}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > iterations {
		workers = 1
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	samples := make([]float64, iterations)
	chunk := iterations / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = iterations
		}

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(worker)*seedStride))
			for i := start; i < end; i++ {
				samples[i] = base + rng.NormFloat64()*stddev
			}
		}(w, start, end)
	}
	wg.Wait()

	sort.Float64s(samples)

	var sum float64
	for _, s := range samples {
		sum += s
	}

	return Result{
		Mean:       sum / float64(iterations),
		P10:        samples[percentileIndex(0.10, iterations)],
		P90:        samples[percentileIndex(0.90, iterations)],
		Iterations: iterations,
	}
}

func percentileIndex(p float64, n int) int {
	idx := int(p * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
