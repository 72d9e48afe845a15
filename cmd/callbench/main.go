package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/callbench/callbench/internal/bench/report"
	"github.com/callbench/callbench/internal/bench/runner"
	"github.com/callbench/callbench/internal/bench/spec"
	"github.com/callbench/callbench/internal/workload"
	"github.com/callbench/callbench/pkg/config/env"
)

// sink keeps the compiler from eliding the benchmarked calls.
var sink uint64

func main() {
	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), ".env"); err != nil {
		slog.Warn("Continuing without .env", "error", err)
	}

	cfg := parseFlags()

	runCfg := runner.Config{
		MinTime:  cfg.MinTime,
		MaxTime:  cfg.MaxTime,
		Accuracy: cfg.Accuracy,
	}

	workloads := cfg.defaultWorkloads()
	if cfg.SpecPath != "" {
		bs, err := spec.LoadFromFile(cfg.SpecPath)
		if err != nil {
			slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
			os.Exit(1)
		}
		runCfg = runner.Config{
			MinTime:  bs.Run.MinTime,
			MaxTime:  bs.Run.MaxTime,
			Accuracy: bs.Run.Accuracy,
		}
		workloads = bs.Workloads
	}

	var timings []report.Timing
	for _, w := range workloads {
		op, checksum, err := buildOp(w)
		if err != nil {
			slog.Error("Failed to build workload", "workload", w.Name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s: checksum %d\n", w.Name, checksum)

		res := runner.Run(op, runCfg)
		timings = append(timings, report.Timing{Name: w.Name, Result: res})
	}

	rpt := report.Generate(timings, runCfg)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}
}

// buildOp materializes a workload: generates its data, picks the call path,
// and returns the operation plus the checksum a single call produces.
func buildOp(w spec.Workload) (runner.Op, uint64, error) {
	data := workload.Generate(w.Size, w.Seed)

	switch w.Kind {
	case spec.KindFixed:
		op := func() { sink = workload.SumFixed(data, w.Add) }
		return op, workload.SumFixed(data, w.Add), nil
	case spec.KindGeneric:
		op := func() { sink = workload.SumGeneric(data, w.Add, workload.Sum) }
		return op, workload.SumGeneric(data, w.Add, workload.Sum), nil
	default:
		return nil, 0, fmt.Errorf("unsupported workload kind: %s", w.Kind)
	}
}
