// Package runner measures the per-iteration cost of an arbitrary operation,
// adaptively choosing how many repetitions to run so that callers never have
// to guess. Operations may cost nanoseconds or milliseconds; the runner
// calibrates itself either way.
package runner

import (
	"log/slog"
	"math"
	"sort"

	"github.com/callbench/callbench/internal/bench/clock"
)

// Op is an operation under measurement. The runner borrows it for the
// duration of a call and never stores it.
type Op func()

// minSamples is the fixed minimum number of samples per run; convergence is
// judged on the spread between the best and the minSamples'th-best sample.
const minSamples = 3

// Measure runs op iterations times inside a single timed window, repeats the
// window samples times, and returns the smallest per-iteration time in
// seconds. The minimum is the right aggregate here: scheduling noise only
// ever inflates a window, never deflates it, so best-of-N converges on the
// true cost from above. Dividing once per window, after timing, amortizes
// the clock-read overhead across all iterations.
//
// iterations must be >= 1.
func Measure(samples, iterations uint64, op Op) float64 {
	best := math.Inf(1)
	for s := uint64(0); s < samples; s++ {
		start := clock.Now()
		for i := uint64(0); i < iterations; i++ {
			op()
		}
		elapsed := clock.ElapsedSeconds(start, clock.Now())
		if elapsed < best {
			best = elapsed
		}
	}
	return best / float64(iterations)
}

// Run benchmarks op under the given config and returns the best observed
// per-iteration time along with sample/iteration counts and the achieved
// accuracy.
//
// The run has two phases. Calibration takes rounds of three samples, growing
// the per-sample iteration count (at least doubling per round) until the
// best sample's window, scaled to three windows, covers MinTime. Each round
// restarts the sample set and counters: re-measuring at the coarser
// granularity shrinks the relative clock overhead, so earlier rounds are
// discarded on purpose. Refinement then keeps taking samples until the best
// and third-best agree within the accuracy target and MinTime has been
// spent, or MaxTime runs out. MaxTime is checked between samples, not within
// one, so a run can overshoot it by up to one window.
//
// Run never fails; it reports whatever accuracy was achieved. All state is
// local to the call, so independent runs do not interfere.
func Run(op Op, cfg Config) Result {
	cfg = cfg.Normalize()
	threshold := 1 + cfg.Accuracy

	var res Result
	var times [minSamples + 1]float64
	var totalTime float64

	itersPerSample := uint64(1)
	for {
		res.Samples = 0
		res.Iterations = 0
		totalTime = 0
		for i := 0; i < minSamples; i++ {
			times[i] = Measure(1, itersPerSample, op)
			res.Samples++
			res.Iterations += itersPerSample
			totalTime += times[i] * float64(itersPerSample)
		}
		sort.Float64s(times[:minSamples])
		if times[0]*float64(itersPerSample)*minSamples >= cfg.MinTime {
			break
		}
		// Estimate from the best sample how many iterations reach
		// MinTime; the doubling floor bounds the number of rounds
		// logarithmically even when early samples read near zero.
		next := math.Max(cfg.MinTime/math.Max(times[0]*minSamples, 1e-9),
			float64(itersPerSample)*2)
		itersPerSample = uint64(next + 0.5)
		slog.Debug("calibrating iteration count", "itersPerSample", itersPerSample)
	}

	// The working set keeps the three best times in slots [0..2]; each new
	// sample lands in the spare slot and the re-sort evicts the worst.
	for (times[0]*threshold < times[minSamples-1] || totalTime < cfg.MinTime) &&
		totalTime < cfg.MaxTime {
		times[minSamples] = Measure(1, itersPerSample, op)
		res.Samples++
		res.Iterations += itersPerSample
		totalTime += times[minSamples] * float64(itersPerSample)
		sort.Float64s(times[:])
	}

	res.WallTime = times[0]
	res.Accuracy = times[minSamples-1]/times[0] - 1
	return res
}
