package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// PredictNode returns a state node that answers count, trend, and summary
// questions with a single prediction grounded in the order history.
func PredictNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		history, err := extractOrders(s)
		if err != nil {
			return s, fmt.Errorf("%w: predict: %w", ErrAnalyzeFailed, err)
		}

		question, err := extractQuestion(s)
		if err != nil {
			return s, fmt.Errorf("predict: %w", err)
		}

		prediction, err := rt.Analyzer.AnalyzeSimple(ctx, *history, question)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "predict node complete",
			"confidence", prediction.Confidence,
		)

		s = s.Set(KeyResult, *prediction)
		return s, nil
	})
}

// PatternNode returns a state node that builds the full weekly preference
// pattern from the order history. The question text is not forwarded; the
// pattern analysis always covers the whole week.
func PatternNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		history, err := extractOrders(s)
		if err != nil {
			return s, fmt.Errorf("%w: pattern: %w", ErrAnalyzeFailed, err)
		}

		result, err := rt.Analyzer.AnalyzePattern(ctx, *history)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "pattern node complete",
			"days", len(result.Pattern.Days),
			"confidence", result.Confidence,
		)

		s = s.Set(KeyResult, *result)
		return s, nil
	})
}
