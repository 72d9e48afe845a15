package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/callbench/callbench/internal/bench/runner"
)

const defaultDataSize = 2000

func LoadFromFile(path string) (*BenchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*BenchSpec, error) {
	var s BenchSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validKinds = map[string]bool{
	KindFixed:   true,
	KindGeneric: true,
}

func validate(s *BenchSpec) error {
	if len(s.Workloads) == 0 {
		return fmt.Errorf("spec has no workloads")
	}
	seen := make(map[string]bool)
	for i := range s.Workloads {
		w := &s.Workloads[i]
		if w.Name == "" {
			return fmt.Errorf("workload at index %d has no name", i)
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate workload name %q", w.Name)
		}
		seen[w.Name] = true
		if w.Kind == "" {
			return fmt.Errorf("workload %q has no kind", w.Name)
		}
		if !validKinds[w.Kind] {
			return fmt.Errorf("workload %q has invalid kind %q", w.Name, w.Kind)
		}
		if w.Size <= 0 {
			w.Size = defaultDataSize
		}
	}
	if s.Run.MinTime <= 0 {
		s.Run.MinTime = runner.DefaultMinTime
	}
	if s.Run.MaxTime <= 0 {
		s.Run.MaxTime = runner.DefaultMaxTime
	}
	if s.Run.Accuracy <= 0 {
		s.Run.Accuracy = runner.DefaultAccuracy
	}
	return nil
}
