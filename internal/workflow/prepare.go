package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"brewline/internal/intents"
	"brewline/internal/orders"
)

// PrepareNode returns a state node that loads the full order history and
// classifies the question's intent. The two calls are independent, so they
// run concurrently; either failure aborts the workflow.
func PrepareNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		question, err := extractQuestion(s)
		if err != nil {
			return s, fmt.Errorf("prepare: %w", err)
		}

		var (
			history *orders.Orders
			intent  intents.Intent
		)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			history, err = rt.Orders.List(gctx)
			return err
		})

		g.Go(func() error {
			var err error
			intent, err = rt.Classifier.Classify(gctx, question)
			return err
		})

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("%w: %w", ErrPrepareFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "prepare node complete",
			"orders", history.Len(),
			"intent", intent,
		)

		s = s.Set(KeyOrders, *history)
		s = s.Set(KeyIntent, intent)
		return s, nil
	})
}

func extractQuestion(s state.State) (string, error) {
	val, ok := s.Get(KeyQuestion)
	if !ok {
		return "", fmt.Errorf("%w: missing %s in state", ErrPrepareFailed, KeyQuestion)
	}

	question, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrPrepareFailed, KeyQuestion)
	}

	return question, nil
}

func extractOrders(s state.State) (*orders.Orders, error) {
	val, ok := s.Get(KeyOrders)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyOrders)
	}

	history, ok := val.(orders.Orders)
	if !ok {
		return nil, fmt.Errorf("%s is not orders.Orders", KeyOrders)
	}

	return &history, nil
}

func extractIntent(s state.State) (intents.Intent, error) {
	val, ok := s.Get(KeyIntent)
	if !ok {
		return "", fmt.Errorf("missing %s in state", KeyIntent)
	}

	intent, ok := val.(intents.Intent)
	if !ok {
		return "", fmt.Errorf("%s is not intents.Intent", KeyIntent)
	}

	return intent, nil
}
