package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"brewline/internal/analysis"
	"brewline/internal/intents"
)

// Execute runs the ask workflow for a single question. It builds the state
// graph (prepare → predict|pattern → finalize), executes it, and extracts
// the AskResult from the final state.
func Execute(ctx context.Context, rt *Runtime, question string) (*AskResult, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyQuestion, question)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("brewline-ask")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("prepare", PrepareNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("predict", PredictNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("pattern", PatternNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// prepare → pattern (pattern questions get the full weekly breakdown)
	if err := graph.AddEdge("prepare", "pattern", wantsPattern); err != nil {
		return nil, err
	}

	// prepare → predict (count, trend, and summary questions)
	if err := graph.AddEdge("prepare", "predict", state.Not(wantsPattern)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("predict", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("pattern", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("prepare"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*AskResult, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in final state", ErrFinalizeFailed, KeyResult)
	}

	result, ok := val.(AskResult)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not AskResult", ErrFinalizeFailed, KeyResult)
	}

	return &result, nil
}

func wantsPattern(s state.State) bool {
	intent, err := extractIntent(s)
	if err != nil {
		return false
	}

	return intent == intents.IntentPattern
}

// FinalizeNode returns a state node that assembles the AskResult from the
// question, intent, and whichever analysis result the routing produced.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		question, err := extractQuestion(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		intent, err := extractIntent(s)
		if err != nil {
			return s, fmt.Errorf("%w: finalize: %w", ErrFinalizeFailed, err)
		}

		val, ok := s.Get(KeyResult)
		if !ok {
			return s, fmt.Errorf("%w: missing %s in state", ErrFinalizeFailed, KeyResult)
		}

		result := AskResult{
			Question:    question,
			Intent:      intent,
			CompletedAt: time.Now().UTC(),
		}

		switch r := val.(type) {
		case analysis.Prediction:
			result.Prediction = r.Prediction
			result.Confidence = r.Confidence
			result.Reasoning = r.Reasoning
		case analysis.PatternResult:
			result.Pattern = &r.Pattern
			result.Confidence = r.Confidence
			result.Reasoning = r.Reasoning
		default:
			return s, fmt.Errorf("%w: unexpected %s type %T", ErrFinalizeFailed, KeyResult, val)
		}

		rt.Logger.InfoContext(
			ctx, "finalize node complete",
			"intent", result.Intent,
			"confidence", result.Confidence,
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}
