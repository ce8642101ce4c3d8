package api

import (
	"brewline/internal/analysis"
	"brewline/internal/ask"
	"brewline/internal/intents"
	"brewline/internal/orders"
	"brewline/internal/workflow"
	"brewline/pkg/completion"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Orders orders.System
	Ask    ask.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	ordersSystem := orders.New(runtime.Store, runtime.Logger)

	completer := completion.NewAgentCompleter(runtime.Agent)

	askSystem := ask.New(
		&workflow.Runtime{
			Orders:     ordersSystem,
			Classifier: intents.NewClassifier(completer, runtime.Logger),
			Analyzer:   analysis.NewAnalyzer(completer, runtime.Logger),
			Logger:     runtime.Logger.With("system", "workflow"),
		},
		runtime.Logger,
	)

	return &Domain{
		Orders: ordersSystem,
		Ask:    askSystem,
	}
}
