package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"brewline/internal/orders"
	"brewline/internal/prompts"
	"brewline/pkg/completion"
)

// Analyzer runs structured analysis calls over historical orders. Both
// operations are pure with respect to system state: they never write, never
// cache, and their output is non-deterministic across calls.
type Analyzer struct {
	completer completion.Completer
	logger    *slog.Logger
}

// NewAnalyzer creates an Analyzer using the given completer.
func NewAnalyzer(completer completion.Completer, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		completer: completer,
		logger:    logger.With("system", "analysis"),
	}
}

// AnalyzeSimple answers a free-text question about the order history with a
// short prediction, confidence, and reasoning. Transient failures and
// structurally invalid responses retry within the completion budget, after
// which ErrAnalysis is returned.
func (a *Analyzer) AnalyzeSimple(ctx context.Context, o orders.Orders, question string) (*Prediction, error) {
	grounding, err := GroundingContext(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	prompt, err := prompts.Compose(
		prompts.StagePredict,
		grounding,
		"Question: "+question,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	resp, err := completion.Structured(ctx, a.completer, prompt, validatePrediction)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	a.logger.Info("simple analysis complete",
		"orders", o.Len(),
		"confidence", resp.Confidence,
	)
	return &resp, nil
}

// AnalyzePattern produces a full weekly breakdown of drink preferences
// bucketed by time of day, restricted to high-likelihood patterns.
func (a *Analyzer) AnalyzePattern(ctx context.Context, o orders.Orders) (*PatternResult, error) {
	grounding, err := GroundingContext(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	prompt, err := prompts.Compose(prompts.StagePattern, grounding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	resp, err := completion.Structured(ctx, a.completer, prompt, validatePatternResult)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	a.logger.Info("pattern analysis complete",
		"orders", o.Len(),
		"days", len(resp.Pattern.Days),
		"confidence", resp.Confidence,
	)
	return &resp, nil
}

func validateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("%w: confidence %g outside [0,1]", ErrInvalidResult, confidence)
	}
	return nil
}

func validatePrediction(p Prediction) error {
	if p.Prediction == "" {
		return fmt.Errorf("%w: empty prediction", ErrInvalidResult)
	}
	if p.Reasoning == "" {
		return fmt.Errorf("%w: empty reasoning", ErrInvalidResult)
	}
	return validateConfidence(p.Confidence)
}

func validatePatternResult(p PatternResult) error {
	if p.Reasoning == "" {
		return fmt.Errorf("%w: empty reasoning", ErrInvalidResult)
	}
	if err := validateConfidence(p.Confidence); err != nil {
		return err
	}
	return p.Pattern.Validate()
}
