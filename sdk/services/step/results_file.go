// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package step

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Results is the content of the pipeline workflow results file, keyed by step
// name. Each stage loads it to consume prior artifacts and saves it back with
// its own result appended.
type Results map[string]*Result

// LoadResults reads a results file. A missing file is not an error: stages at
// the head of the pipeline start from an empty set.
func LoadResults(path string) (Results, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Results{}, nil
		}
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	var rs Results
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("invalid results file %s: %w", path, err)
	}
	if rs == nil {
		rs = Results{}
	}
	return rs, nil
}

func (rs Results) Save(path string) error {
	b, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

func (rs Results) Add(r *Result) {
	rs[r.Step] = r
}

// ArtifactValue searches every recorded step for an artifact by name and
// returns the first value found, or "" when no step produced it.
func (rs Results) ArtifactValue(name string) string {
	for _, r := range rs {
		if r == nil || !r.Success {
			continue
		}
		if v, ok := r.Artifacts[name]; ok {
			return v
		}
	}
	return ""
}

// FlattenArtifacts merges the artifacts of all successful steps into one map,
// the shape consumed by step implementations.
func (rs Results) FlattenArtifacts() map[string]string {
	out := map[string]string{}
	for _, r := range rs {
		if r == nil || !r.Success {
			continue
		}
		for k, v := range r.Artifacts {
			out[k] = v
		}
	}
	return out
}
