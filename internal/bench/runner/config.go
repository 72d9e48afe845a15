package runner

import "math"

const (
	DefaultMinTime  = 0.1
	DefaultMaxTime  = DefaultMinTime * 4
	DefaultAccuracy = 0.03

	minTimeFloor  = 10e-6
	accuracyFloor = 0.001
	accuracyCeil  = 0.1
)

// Config bounds a single benchmark run. All times are in seconds.
type Config struct {
	// MinTime is the floor for total measured time. Calibration grows the
	// per-sample iteration count until the measured samples add up to at
	// least this much.
	MinTime float64

	// MaxTime is the hard ceiling on total measured time. The run stops
	// once it is reached, converged or not.
	MaxTime float64

	// Accuracy is the target relative gap between the best and third-best
	// per-iteration sample times. Smaller targets give more reliable
	// numbers but may take longer to reach.
	Accuracy float64
}

func DefaultConfig() Config {
	return Config{
		MinTime:  DefaultMinTime,
		MaxTime:  DefaultMaxTime,
		Accuracy: DefaultAccuracy,
	}
}

// Normalize clamps the config to its documented bounds: MinTime to at least
// 10µs, MaxTime to at least MinTime, Accuracy to [0.001, 0.1]. Run applies
// it to every config it receives, so a zero or misconfigured Config is still
// usable.
func (c Config) Normalize() Config {
	c.MinTime = math.Max(minTimeFloor, c.MinTime)
	c.MaxTime = math.Max(c.MinTime, c.MaxTime)
	c.Accuracy = math.Min(math.Max(accuracyFloor, c.Accuracy), accuracyCeil)
	return c
}
