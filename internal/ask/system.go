// Package ask exposes the question-answering pipeline as a domain module:
// classify the question's intent, route it to the matching analysis, and
// return a structured result grounded in the order history.
package ask

import (
	"context"
	"log/slog"

	"brewline/internal/orders"
	"brewline/internal/workflow"
)

// System defines question-answering operations over the order history. It
// doubles as the orders module's Advisor so listings can trigger advisory
// analysis without a dependency cycle.
type System interface {
	orders.Advisor
	Ask(ctx context.Context, question string) (*workflow.AskResult, error)
	Handler() *Handler
}

type service struct {
	runtime *workflow.Runtime
	logger  *slog.Logger
}

// New creates an ask System backed by the given workflow runtime.
func New(runtime *workflow.Runtime, logger *slog.Logger) System {
	return &service{
		runtime: runtime,
		logger:  logger.With("system", "ask"),
	}
}

func (s *service) Ask(ctx context.Context, question string) (*workflow.AskResult, error) {
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	result, err := workflow.Execute(ctx, s.runtime, question)
	if err != nil {
		s.logger.Error("ask workflow failed",
			"question", question,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("ask workflow complete",
		"question", question,
		"intent", result.Intent,
		"confidence", result.Confidence,
	)
	return result, nil
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}
