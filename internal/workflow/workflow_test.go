package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"brewline/internal/analysis"
	"brewline/internal/intents"
	"brewline/internal/orders"
	"brewline/internal/workflow"
)

type mockOrders struct {
	orders  []orders.CoffeeOrder
	listErr error
}

func (m *mockOrders) Handler(advisor orders.Advisor) *orders.Handler { return nil }

func (m *mockOrders) List(ctx context.Context) (*orders.Orders, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return orders.NewOrders(m.orders)
}

func (m *mockOrders) Find(ctx context.Context, id int) (*orders.CoffeeOrder, error) {
	return nil, orders.ErrNotFound
}

func (m *mockOrders) Create(ctx context.Context, cmd orders.CreateCommand) (*orders.CoffeeOrder, error) {
	return nil, errors.New("not implemented")
}

// routingCompleter answers classification, prediction, and pattern prompts
// with canned responses, keyed on distinctive prompt text.
type routingCompleter struct {
	intent          string
	predictCalls    int
	patternCalls    int
	classifyCalls   int
	transportErr    error
	patternResponse string
}

func (r *routingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if r.transportErr != nil {
		return "", r.transportErr
	}

	switch {
	case strings.Contains(prompt, "identifying the intent"):
		r.classifyCalls++
		return `{"intent": "` + r.intent + `"}`, nil
	case strings.Contains(prompt, "weekly breakdown"):
		r.patternCalls++
		if r.patternResponse != "" {
			return r.patternResponse, nil
		}
		return `{
			"pattern": {"days": [{"day": "Monday", "preferences": [
				{"coffee_type": "Latte", "milk_type": "Oat", "likelihood": "high", "time_of_day": "morning"}
			]}]},
			"confidence": 0.7,
			"reasoning": "consistent Monday mornings"
		}`, nil
	default:
		r.predictCalls++
		return `{"prediction": "around 12 lattes", "confidence": 0.8, "reasoning": "steady demand"}`, nil
	}
}

func testRuntime(sys orders.System, completer *routingCompleter) *workflow.Runtime {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &workflow.Runtime{
		Orders:     sys,
		Classifier: intents.NewClassifier(completer, logger),
		Analyzer:   analysis.NewAnalyzer(completer, logger),
		Logger:     logger,
	}
}

func seedOrders() []orders.CoffeeOrder {
	return []orders.CoffeeOrder{
		{
			OrderID:    1,
			CoffeeType: orders.Latte,
			MilkType:   orders.Oat,
			Cost:       5.00,
			Time:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			ServerName: "Alice",
		},
	}
}

func TestExecuteRoutesToPredict(t *testing.T) {
	for _, intent := range []string{"count", "trend", "summary"} {
		t.Run(intent, func(t *testing.T) {
			completer := &routingCompleter{intent: intent}
			rt := testRuntime(&mockOrders{orders: seedOrders()}, completer)

			result, err := workflow.Execute(context.Background(), rt, "how many lattes?")
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			if result.Intent != intents.Intent(intent) {
				t.Errorf("intent = %s, want %s", result.Intent, intent)
			}
			if result.Prediction == "" {
				t.Error("prediction is empty")
			}
			if result.Pattern != nil {
				t.Error("pattern set for a non-pattern intent")
			}
			if completer.predictCalls != 1 || completer.patternCalls != 0 {
				t.Errorf("predict calls = %d, pattern calls = %d; want 1, 0",
					completer.predictCalls, completer.patternCalls)
			}
		})
	}
}

func TestExecuteRoutesToPattern(t *testing.T) {
	completer := &routingCompleter{intent: "pattern"}
	rt := testRuntime(&mockOrders{orders: seedOrders()}, completer)

	result, err := workflow.Execute(context.Background(), rt, "what do people drink each day?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Intent != intents.IntentPattern {
		t.Errorf("intent = %s, want pattern", result.Intent)
	}
	if result.Pattern == nil {
		t.Fatal("pattern is nil")
	}
	if result.Prediction != "" {
		t.Errorf("prediction = %q, want empty for pattern intent", result.Prediction)
	}
	if len(result.Pattern.Days) != 1 || result.Pattern.Days[0].Day != "Monday" {
		t.Errorf("pattern = %+v", result.Pattern)
	}
	if completer.patternCalls != 1 || completer.predictCalls != 0 {
		t.Errorf("pattern calls = %d, predict calls = %d; want 1, 0",
			completer.patternCalls, completer.predictCalls)
	}
}

func TestExecuteCarriesQuestion(t *testing.T) {
	completer := &routingCompleter{intent: "count"}
	rt := testRuntime(&mockOrders{orders: seedOrders()}, completer)

	result, err := workflow.Execute(context.Background(), rt, "how many cortados?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Question != "how many cortados?" {
		t.Errorf("question = %q", result.Question)
	}
	if result.CompletedAt.IsZero() {
		t.Error("completed_at not set")
	}
}

func TestExecuteEmptyHistory(t *testing.T) {
	completer := &routingCompleter{intent: "count"}
	rt := testRuntime(&mockOrders{}, completer)

	_, err := workflow.Execute(context.Background(), rt, "how many lattes?")
	if !errors.Is(err, orders.ErrEmptyOrders) {
		t.Errorf("error = %v, want ErrEmptyOrders", err)
	}
}

func TestExecuteClassificationFailure(t *testing.T) {
	completer := &routingCompleter{transportErr: errors.New("connection refused")}
	rt := testRuntime(&mockOrders{orders: seedOrders()}, completer)

	_, err := workflow.Execute(context.Background(), rt, "how many lattes?")
	if !errors.Is(err, workflow.ErrPrepareFailed) {
		t.Errorf("error = %v, want ErrPrepareFailed", err)
	}
}
