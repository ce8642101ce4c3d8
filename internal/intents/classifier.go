package intents

import (
	"context"
	"fmt"
	"log/slog"

	"brewline/internal/prompts"
	"brewline/pkg/completion"
)

type intentResponse struct {
	Intent Intent `json:"intent"`
}

// Classifier resolves free-text questions to intents through the completion
// boundary. It is stateless; every call is independent.
type Classifier struct {
	completer completion.Completer
	logger    *slog.Logger
}

// NewClassifier creates a Classifier using the given completer.
func NewClassifier(completer completion.Completer, logger *slog.Logger) *Classifier {
	return &Classifier{
		completer: completer,
		logger:    logger.With("system", "intents"),
	}
}

// Classify determines the intent of a question. The model call is constrained
// to the intent enumeration; out-of-enum responses are rejected and retried
// within the completion retry budget, after which ErrClassification is
// returned.
func (c *Classifier) Classify(ctx context.Context, question string) (Intent, error) {
	if question == "" {
		return "", fmt.Errorf("%w: empty question", ErrInvalidIntent)
	}

	prompt, err := prompts.Compose(
		prompts.StageIntent,
		possibleIntents(),
		"Question: "+question,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClassification, err)
	}

	resp, err := completion.Structured(ctx, c.completer, prompt, func(r intentResponse) error {
		if r.Intent == "" {
			return fmt.Errorf("%w: missing intent", ErrInvalidIntent)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClassification, err)
	}

	c.logger.Info("question classified", "intent", resp.Intent)
	return resp.Intent, nil
}

func possibleIntents() string {
	list := Intents()
	out := "Possible intents:"
	for _, intent := range list {
		out += " " + string(intent)
	}
	return out
}
