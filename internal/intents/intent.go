// Package intents classifies free-text questions about ordering history into
// a fixed enumeration of intents via a structured generative-model call.
package intents

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Intent is the classified category of a user's natural-language question.
type Intent string

// Valid intents. All downstream analysis routing depends on this enumeration;
// no other values are ever produced by the classifier.
const (
	IntentCount   Intent = "count"
	IntentPattern Intent = "pattern"
	IntentTrend   Intent = "trend"
	IntentSummary Intent = "summary"
)

var intents = []Intent{
	IntentCount,
	IntentPattern,
	IntentTrend,
	IntentSummary,
}

// Intents returns the list of valid intents.
func Intents() []Intent {
	return intents
}

// UnmarshalJSON validates that the decoded string is a known intent. This is
// a strict allow-list, not best-effort parsing; out-of-enum model responses
// fail here and trigger a classification retry.
func (i *Intent) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseIntent(raw)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ParseIntent validates a string as a known intent.
func ParseIntent(s string) (Intent, error) {
	v := Intent(s)
	if !slices.Contains(intents, v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIntent, s)
	}
	return v, nil
}
