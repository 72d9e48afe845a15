package report

import (
	"runtime"
	"time"

	"github.com/callbench/callbench/internal/bench/runner"
)

type Report struct {
	Meta    BenchMeta    `json:"meta"`
	Entries []Entry      `json:"entries"`
	Config  ReportConfig `json:"config"`
}

type BenchMeta struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	ClockSource string          `json:"clock_source"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	MinTime  float64 `json:"min_time"`
	MaxTime  float64 `json:"max_time"`
	Accuracy float64 `json:"accuracy"`
}

// Entry is one benchmarked workload. Slowdown is WallTime relative to the
// fastest entry in the report (1.0 for the fastest itself).
type Entry struct {
	Name       string  `json:"name"`
	WallTime   float64 `json:"wall_time_seconds"`
	Samples    uint64  `json:"samples"`
	Iterations uint64  `json:"iterations"`
	Accuracy   float64 `json:"accuracy"`
	Converged  bool    `json:"converged"`
	Slowdown   float64 `json:"slowdown"`
}

// Timing pairs a workload name with its runner result, for Generate.
type Timing struct {
	Name   string
	Result runner.Result
}
