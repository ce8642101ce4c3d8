// Package prompts provides the instruction and response-specification text
// for each generative stage, plus prompt composition.
package prompts

import (
	"encoding/json"
	"slices"
)

// Stage represents a generative stage that a prompt targets.
type Stage string

// Valid generative stages.
const (
	StageIntent  Stage = "intent"
	StagePredict Stage = "predict"
	StagePattern Stage = "pattern"
)

var stages = []Stage{
	StageIntent,
	StagePredict,
	StagePattern,
}

// Stages returns the list of valid generative stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known generative stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
