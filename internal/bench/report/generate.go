package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/callbench/callbench/internal/bench/clock"
	"github.com/callbench/callbench/internal/bench/runner"
)

// Generate assembles a report from a set of timings. The config is
// normalized first so the recorded budget and convergence flags reflect what
// the runner actually used.
func Generate(timings []Timing, cfg runner.Config) *Report {
	cfg = cfg.Normalize()

	r := &Report{
		Meta: BenchMeta{
			RunID:       uuid.NewString(),
			Timestamp:   time.Now().UTC(),
			ClockSource: clock.Source(),
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			MinTime:  cfg.MinTime,
			MaxTime:  cfg.MaxTime,
			Accuracy: cfg.Accuracy,
		},
	}

	best := 0.0
	for _, t := range timings {
		if t.Result.WallTime > 0 && (best == 0 || t.Result.WallTime < best) {
			best = t.Result.WallTime
		}
	}

	for _, t := range timings {
		e := Entry{
			Name:       t.Name,
			WallTime:   t.Result.WallTime,
			Samples:    t.Result.Samples,
			Iterations: t.Result.Iterations,
			Accuracy:   t.Result.Accuracy,
			Converged:  t.Result.MeetsTarget(cfg.Accuracy),
		}
		if best > 0 {
			e.Slowdown = t.Result.WallTime / best
		}
		r.Entries = append(r.Entries, e)
	}

	return r
}
