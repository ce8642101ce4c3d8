package workflow

import (
	"time"

	"brewline/internal/analysis"
	"brewline/internal/intents"
)

const (
	KeyQuestion = "question"
	KeyOrders   = "orders"
	KeyIntent   = "intent"
	KeyResult   = "result"
)

// AskResult is the final output from an ask workflow execution. Prediction is
// populated for count, trend, and summary intents; Pattern for the pattern
// intent. The two are mutually exclusive.
type AskResult struct {
	Question    string            `json:"question"`
	Intent      intents.Intent    `json:"intent"`
	Prediction  string            `json:"prediction,omitempty"`
	Pattern     *analysis.Pattern `json:"pattern,omitempty"`
	Confidence  float64           `json:"confidence"`
	Reasoning   string            `json:"reasoning"`
	CompletedAt time.Time         `json:"completed_at"`
}
