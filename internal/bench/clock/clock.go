// Package clock provides the monotonic time source used by the benchmark
// runner. The source is resolved once at process init and never changes, so
// every timestamp in a run comes from the same clock.
package clock

import "time"

// Timestamp is an opaque reading of the benchmark clock, in nanoseconds since
// process init. Timestamps are only meaningful relative to each other.
type Timestamp uint64

// epoch anchors all timestamps. Measuring against a fixed epoch forces every
// reading through the runtime's steady monotonic clock; the wall clock is
// never consulted, so NTP steps and suspend/resume cannot corrupt a
// measurement window.
var epoch = time.Now()

// Now returns the current reading of the benchmark clock.
func Now() Timestamp {
	return Timestamp(time.Since(epoch).Nanoseconds())
}

// ElapsedSeconds returns the duration between two timestamps in seconds.
// The result is non-negative for any start taken before end.
func ElapsedSeconds(start, end Timestamp) float64 {
	return float64(end-start) / 1e9
}

// Source names the clock source backing Now, for report metadata.
func Source() string {
	return "runtime monotonic"
}
