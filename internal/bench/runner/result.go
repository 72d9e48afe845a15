package runner

// Result is the outcome of one adaptive benchmark run.
type Result struct {
	// WallTime is the best observed wall-clock time per iteration, in
	// seconds.
	WallTime float64

	// Samples is the number of measurement samples used. Calibration
	// rounds that were discarded are not counted.
	Samples uint64

	// Iterations is the total number of operation invocations across the
	// counted samples.
	Iterations uint64

	// Accuracy is the achieved relative gap between the best and
	// third-best sample, (third/best)-1. It exceeds the configured target
	// only when MaxTime ran out before convergence.
	Accuracy float64
}

// Seconds returns WallTime, for direct comparison and printing.
func (r Result) Seconds() float64 {
	return r.WallTime
}

// MeetsTarget reports whether the run converged within the given accuracy
// target.
func (r Result) MeetsTarget(target float64) bool {
	return r.Accuracy <= target
}
