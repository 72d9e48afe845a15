// Package workload holds the operations under benchmark: the same rounded
// float32 summation reached through a direct call path and through a generic
// one. The arithmetic is deliberately trivial; only the dispatch mechanics
// differ between the two paths.
package workload

// Sum rounds each element to the nearest integer and accumulates the results.
func Sum(data []float32) uint64 {
	var sum uint64
	for _, d := range data {
		sum += uint64(d + 0.5)
	}
	return sum
}

// SumFixed computes Sum(data)+add through a direct, non-generic call.
func SumFixed(data []float32, add uint64) uint64 {
	return Sum(data) + add
}

// SumGeneric computes the same value but reaches the summation through a
// type-parameterized call, taking the summation function as a value.
func SumGeneric[C any](data C, add uint64, sum func(C) uint64) uint64 {
	return sum(data) + add
}
