package workload

import "math/rand"

// Generate returns n pseudo-random float32 values in [0, 1e10), seeded so
// that a workload's input (and therefore its checksum) is reproducible.
func Generate(n int, seed int64) []float32 {
	r := rand.New(rand.NewSource(seed))
	data := make([]float32, n)
	for i := range data {
		data[i] = r.Float32() * 1e10
	}
	return data
}
