package completion

import (
	"context"
	"errors"
	"fmt"

	"brewline/pkg/formatting"
)

// ExtraAttempts is the retry budget beyond the first call for structured
// completions. Transport failures, unparseable responses, and responses the
// validator rejects all consume attempts.
const ExtraAttempts = 2

// ErrExhausted is returned when a structured completion fails every attempt.
var ErrExhausted = errors.New("completion attempts exhausted")

// Structured executes a completion and parses the response as JSON into T,
// retrying with a fresh call on transport failure, parse failure, or validator
// rejection. validate may be nil. The last failure is wrapped in ErrExhausted
// once the budget runs out.
func Structured[T any](
	ctx context.Context,
	c Completer,
	prompt string,
	validate func(T) error,
) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= ExtraAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		content, err := c.Complete(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		parsed, err := formatting.Parse[T](content)
		if err != nil {
			lastErr = err
			continue
		}

		if validate != nil {
			if err := validate(parsed); err != nil {
				lastErr = err
				continue
			}
		}

		return parsed, nil
	}

	return zero, fmt.Errorf("%w: %w", ErrExhausted, lastErr)
}
