// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package step

import (
	"github.com/sigpush/sigpush-cli-sdk/sdk/utils"
)

// Result is the outcome of one pipeline step: a success flag, an optional
// human-readable message and the named artifacts the step produced. Artifacts
// are only meaningful when Success is true.
type Result struct {
	ID        string            `json:"id"                  yaml:"id"`
	Step      string            `json:"step"                yaml:"step"`
	Success   bool              `json:"success"             yaml:"success"`
	Message   string            `json:"message,omitempty"   yaml:"message,omitempty"`
	Artifacts map[string]string `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

func NewResult(stepName string) *Result {
	return &Result{
		ID:        utils.UUIDv4NoDash(),
		Step:      stepName,
		Success:   true,
		Artifacts: map[string]string{},
	}
}

func (r *Result) AddArtifact(name, value string) {
	if r.Artifacts == nil {
		r.Artifacts = map[string]string{}
	}
	r.Artifacts[name] = value
}

func (r *Result) Artifact(name string) string {
	return r.Artifacts[name]
}

// Fail marks the result failed with a message; any artifacts added so far are
// dropped, since a step never reports partial output.
func (r *Result) Fail(message string) {
	r.Success = false
	r.Message = message
	r.Artifacts = nil
}
