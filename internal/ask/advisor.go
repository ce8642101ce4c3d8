package ask

import (
	"context"

	"brewline/internal/orders"
)

// Advise satisfies orders.Advisor. It runs the ask pipeline for the given
// question and logs the outcome. Failures are contained here so advisory
// analysis can never disturb the order listing that triggered it.
func (s *service) Advise(ctx context.Context, o orders.Orders, question string) {
	result, err := s.Ask(ctx, question)
	if err != nil {
		s.logger.Warn("advisory analysis failed",
			"question", question,
			"orders", o.Len(),
			"error", err,
		)
		return
	}

	s.logger.Info("advisory analysis complete",
		"question", question,
		"intent", result.Intent,
		"prediction", result.Prediction,
		"confidence", result.Confidence,
	)
}
