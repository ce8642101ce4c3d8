// Package completion provides the narrow capability boundary for generative
// model calls: a Completer executes one chat completion, and Structured wraps
// it with schema parsing, response validation, and a bounded retry budget.
package completion

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Completer executes a single chat completion and returns the raw response
// content. Implementations must issue a fresh call on every invocation; no
// partial results are carried between attempts.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type agentCompleter struct {
	cfg gaconfig.AgentConfig
}

// NewAgentCompleter creates a Completer backed by a go-agents chat agent.
// The agent is constructed per call from the stored configuration.
func NewAgentCompleter(cfg gaconfig.AgentConfig) Completer {
	return &agentCompleter{cfg: cfg}
}

func (c *agentCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&c.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}
