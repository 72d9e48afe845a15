package runner

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spinSink float64

// spin returns an op with a fixed, deterministic amount of arithmetic per
// call, so repeated runs should agree on its cost.
func spin(n int) Op {
	var acc float64
	return func() {
		for i := 0; i < n; i++ {
			acc += math.Sqrt(float64(i))
		}
		spinSink = acc
	}
}

func TestMeasure_InvokesOpSamplesTimesIterations(t *testing.T) {
	var calls uint64
	got := Measure(4, 5, func() { calls++ })

	assert.Equal(t, uint64(20), calls)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestMeasure_SingleWindow(t *testing.T) {
	var calls uint64
	Measure(1, 1, func() { calls++ })
	assert.Equal(t, uint64(1), calls)
}

func TestRun_MinimumSampleCount(t *testing.T) {
	res := Run(spin(100), Config{MinTime: 0.001, MaxTime: 0.01, Accuracy: 0.05})

	assert.GreaterOrEqual(t, res.Samples, uint64(3))
	assert.GreaterOrEqual(t, res.Iterations, res.Samples)
	assert.GreaterOrEqual(t, res.Accuracy, 0.0)
}

func TestRun_ZeroConfigUsesClampedBudget(t *testing.T) {
	start := time.Now()
	res := Run(spin(100), Config{})
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, res.Samples, uint64(3))
	assert.Greater(t, res.WallTime, 0.0)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestRun_SlowOpKeepsSingleIteration(t *testing.T) {
	op := func() { time.Sleep(5 * time.Millisecond) }
	res := Run(op, Config{MinTime: 0.01, MaxTime: 0.05, Accuracy: 0.03})

	// A single invocation already exceeds MinTime/3, so calibration must
	// exit at one iteration per sample.
	assert.Equal(t, res.Samples, res.Iterations)
	assert.GreaterOrEqual(t, res.Samples, uint64(3))
	assert.Greater(t, res.WallTime, 0.004)
}

func TestRun_CounterEndToEnd(t *testing.T) {
	var counter uint64
	cfg := Config{MinTime: 0.05, MaxTime: 0.2, Accuracy: 0.05}

	start := time.Now()
	res := Run(func() { counter++ }, cfg)
	elapsed := time.Since(start).Seconds()

	require.GreaterOrEqual(t, res.Samples, uint64(3))
	assert.GreaterOrEqual(t, res.Iterations, uint64(1000))
	assert.Greater(t, res.WallTime, 0.0)
	assert.GreaterOrEqual(t, counter, res.Iterations)

	// Non-convergence is only legal once the time ceiling has been spent.
	if !res.MeetsTarget(cfg.Accuracy) {
		assert.GreaterOrEqual(t, elapsed, cfg.MaxTime)
	}
}

func TestRun_MaxTimeBoundsRuntime(t *testing.T) {
	cfg := Config{MinTime: 0.01, MaxTime: 0.02, Accuracy: 0.001}

	start := time.Now()
	res := Run(spin(100), cfg)
	elapsed := time.Since(start)

	// Calibration plus refinement plus at most one overshot window; a
	// generous bound still catches a runaway loop.
	assert.Less(t, elapsed, 2*time.Second)
	assert.GreaterOrEqual(t, res.Samples, uint64(3))
}

func TestRun_RepeatedRunsAgree(t *testing.T) {
	cfg := Config{MinTime: 0.02, MaxTime: 0.1, Accuracy: 0.03}
	op := spin(5000)

	r1 := Run(op, cfg)
	r2 := Run(op, cfg)

	require.Greater(t, r1.WallTime, 0.0)
	require.Greater(t, r2.WallTime, 0.0)
	assert.InEpsilon(t, r1.WallTime, r2.WallTime, 0.5)
}

func TestResult_Seconds(t *testing.T) {
	res := Result{WallTime: 1.5e-6}
	assert.Equal(t, 1.5e-6, res.Seconds())
}

func TestResult_MeetsTarget(t *testing.T) {
	assert.True(t, Result{Accuracy: 0.02}.MeetsTarget(0.03))
	assert.True(t, Result{Accuracy: 0.03}.MeetsTarget(0.03))
	assert.False(t, Result{Accuracy: 0.05}.MeetsTarget(0.03))
}
