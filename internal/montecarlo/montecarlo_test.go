package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ZeroSpreadDegeneratesToBase(t *testing.T) {
	result := Run(42.5, 0, Options{Iterations: 10_000, Seed: 1})

	assert.Equal(t, 42.5, result.Mean)
	assert.Equal(t, 42.5, result.P10)
	assert.Equal(t, 42.5, result.P90)
	assert.Equal(t, 10_000, result.Iterations)
}

func TestRun_PercentilesBracketMean(t *testing.T) {
	result := Run(100, 15, Options{Iterations: 10_000, Seed: 7})

	assert.LessOrEqual(t, result.P10, result.Mean)
	assert.LessOrEqual(t, result.Mean, result.P90)
	assert.Less(t, result.P10, result.P90)
}

func TestRun_MeanNearBaseForLargeSamples(t *testing.T) {
	result := Run(100, 15, Options{Iterations: 50_000, Seed: 11})

	// Sample mean converges on the base estimate; generous bounds keep the
	// assertion stable across rand implementations.
	assert.InDelta(t, 100, result.Mean, 0.5)
	assert.InDelta(t, 100-15*1.2816, result.P10, 1.5)
	assert.InDelta(t, 100+15*1.2816, result.P90, 1.5)
}

func TestRun_SeededRunsAreReproducible(t *testing.T) {
	opts := Options{Iterations: 5_000, Seed: 99, Workers: 4}

	first := Run(10, 3, opts)
	second := Run(10, 3, opts)

	assert.Equal(t, first, second)
}

func TestRun_DefaultsApplied(t *testing.T) {
	result := Run(5, 1, Options{Seed: 3})

	assert.Equal(t, 1000, result.Iterations)
}

func TestRun_FewIterationsCollapseToSingleWorker(t *testing.T) {
	result := Run(5, 1, Options{Iterations: 3, Seed: 3, Workers: 16})

	assert.Equal(t, 3, result.Iterations)
	assert.LessOrEqual(t, result.P10, result.P90)
}
