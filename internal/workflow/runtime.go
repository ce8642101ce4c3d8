package workflow

import (
	"log/slog"

	"brewline/internal/analysis"
	"brewline/internal/intents"
	"brewline/internal/orders"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Orders     orders.System
	Classifier *intents.Classifier
	Analyzer   *analysis.Analyzer
	Logger     *slog.Logger
}
