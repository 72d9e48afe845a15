package spec

const (
	KindFixed   = "fixed"
	KindGeneric = "generic"
)

type BenchSpec struct {
	Run       RunConfig  `yaml:"run"`
	Workloads []Workload `yaml:"workloads"`
}

// RunConfig is the time/accuracy budget shared by all workloads in the spec.
// All times are in seconds.
type RunConfig struct {
	MinTime  float64 `yaml:"min_time"`
	MaxTime  float64 `yaml:"max_time"`
	Accuracy float64 `yaml:"accuracy"`
}

// Workload describes one summation call path to benchmark: "fixed" dispatches
// through the direct function, "generic" through the type-parameterized one.
type Workload struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Size int    `yaml:"size"`
	Add  uint64 `yaml:"add"`
	Seed int64  `yaml:"seed"`
}
