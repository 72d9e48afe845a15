package main

import (
	"flag"

	"github.com/callbench/callbench/internal/bench/runner"
	"github.com/callbench/callbench/internal/bench/spec"
)

type cliConfig struct {
	SpecPath string
	MinTime  float64
	MaxTime  float64
	Accuracy float64
	Size     int
	Add      uint64
	Seed     int64
	Output   string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to bench spec YAML (overrides workload flags)")
	flag.Float64Var(&cfg.MinTime, "min-time", runner.DefaultMinTime, "Floor for total measured time per workload, seconds")
	flag.Float64Var(&cfg.MaxTime, "max-time", runner.DefaultMaxTime, "Hard ceiling on total measured time per workload, seconds")
	flag.Float64Var(&cfg.Accuracy, "accuracy", runner.DefaultAccuracy, "Target relative gap between best and third-best sample")
	flag.IntVar(&cfg.Size, "size", 2000, "Number of float32 values to sum per call")
	flag.Uint64Var(&cfg.Add, "add", 1337, "Constant added to each checksum")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Seed for workload data generation")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}

// defaultWorkloads is the built-in fixed-vs-generic comparison used when no
// spec file is given.
func (c cliConfig) defaultWorkloads() []spec.Workload {
	return []spec.Workload{
		{Name: "fixed-sum", Kind: spec.KindFixed, Size: c.Size, Add: c.Add, Seed: c.Seed},
		{Name: "generic-sum", Kind: spec.KindGeneric, Size: c.Size, Add: c.Add, Seed: c.Seed},
	}
}
