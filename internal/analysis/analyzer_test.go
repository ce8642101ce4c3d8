package analysis_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"brewline/internal/analysis"
	"brewline/internal/orders"
)

type stubCompleter struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	i := min(s.calls-1, len(s.responses)-1)
	return s.responses[i], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeOrders(n int) orders.Orders {
	list := make([]orders.CoffeeOrder, 0, n)
	for i := range n {
		list = append(list, orders.CoffeeOrder{
			OrderID:    i + 1,
			CoffeeType: orders.Latte,
			MilkType:   orders.Oat,
			Cost:       5.00,
			Time:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			ServerName: "Alice",
		})
	}
	return orders.Orders{Orders: list}
}

func TestGroundingContext(t *testing.T) {
	for _, n := range []int{1, 10, 1000} {
		t.Run(fmt.Sprintf("%d orders", n), func(t *testing.T) {
			got, err := analysis.GroundingContext(makeOrders(n))
			if err != nil {
				t.Fatalf("GroundingContext failed: %v", err)
			}
			if !strings.HasPrefix(got, "Past orders:") {
				t.Error("grounding context missing header")
			}
			if want := fmt.Sprintf(`"order_id": %d`, n); !strings.Contains(got, want) {
				t.Errorf("grounding context missing last order %d", n)
			}
		})
	}
}

func TestGroundingContextDateFormat(t *testing.T) {
	got, err := analysis.GroundingContext(makeOrders(1))
	if err != nil {
		t.Fatalf("GroundingContext failed: %v", err)
	}
	// 2025-03-10 was a Monday.
	if !strings.Contains(got, "2025-03-10 Mon 09:00 AM") {
		t.Errorf("grounding context missing weekday-formatted date:\n%s", got)
	}
}

func TestAnalyzeSimple(t *testing.T) {
	stub := &stubCompleter{responses: []string{
		`{"prediction": "around 12 lattes", "confidence": 0.8, "reasoning": "steady weekday demand"}`,
	}}
	a := analysis.NewAnalyzer(stub, testLogger())

	got, err := a.AnalyzeSimple(context.Background(), makeOrders(5), "how many lattes tomorrow?")
	if err != nil {
		t.Fatalf("AnalyzeSimple failed: %v", err)
	}
	if got.Prediction != "around 12 lattes" {
		t.Errorf("prediction = %q", got.Prediction)
	}
	if got.Confidence != 0.8 {
		t.Errorf("confidence = %g, want 0.8", got.Confidence)
	}
	if !strings.Contains(stub.prompts[0], "how many lattes tomorrow?") {
		t.Error("prompt missing the question")
	}
	if !strings.Contains(stub.prompts[0], "Past orders:") {
		t.Error("prompt missing grounding context")
	}
}

func TestAnalyzeSimpleRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"confidence above one", `{"prediction": "p", "confidence": 1.5, "reasoning": "r"}`},
		{"negative confidence", `{"prediction": "p", "confidence": -0.1, "reasoning": "r"}`},
		{"empty prediction", `{"prediction": "", "confidence": 0.5, "reasoning": "r"}`},
		{"empty reasoning", `{"prediction": "p", "confidence": 0.5, "reasoning": ""}`},
		{"not json", `the answer is twelve`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{responses: []string{tt.response}}
			a := analysis.NewAnalyzer(stub, testLogger())

			_, err := a.AnalyzeSimple(context.Background(), makeOrders(3), "how many?")
			if !errors.Is(err, analysis.ErrAnalysis) {
				t.Errorf("error = %v, want ErrAnalysis", err)
			}
		})
	}
}

func TestAnalyzeSimpleRetriesThenSucceeds(t *testing.T) {
	stub := &stubCompleter{responses: []string{
		`{"prediction": "p", "confidence": 2, "reasoning": "r"}`,
		`{"prediction": "p", "confidence": 0.6, "reasoning": "r"}`,
	}}
	a := analysis.NewAnalyzer(stub, testLogger())

	got, err := a.AnalyzeSimple(context.Background(), makeOrders(3), "how many?")
	if err != nil {
		t.Fatalf("AnalyzeSimple failed: %v", err)
	}
	if got.Confidence != 0.6 {
		t.Errorf("confidence = %g, want 0.6", got.Confidence)
	}
	if stub.calls != 2 {
		t.Errorf("completer called %d times, want 2", stub.calls)
	}
}

const patternResponse = `{
  "pattern": {
    "days": [
      {
        "day": "Monday",
        "preferences": [
          {"coffee_type": "Latte", "milk_type": "Oat", "likelihood": "high", "time_of_day": "morning"}
        ]
      }
    ]
  },
  "confidence": 0.7,
  "reasoning": "consistent Monday mornings"
}`

func TestAnalyzePattern(t *testing.T) {
	stub := &stubCompleter{responses: []string{patternResponse}}
	a := analysis.NewAnalyzer(stub, testLogger())

	got, err := a.AnalyzePattern(context.Background(), makeOrders(5))
	if err != nil {
		t.Fatalf("AnalyzePattern failed: %v", err)
	}
	if len(got.Pattern.Days) != 1 {
		t.Fatalf("pattern has %d days, want 1", len(got.Pattern.Days))
	}

	day := got.Pattern.Days[0]
	if day.Day != "Monday" {
		t.Errorf("day = %q, want Monday", day.Day)
	}
	if len(day.Preferences) != 1 {
		t.Fatalf("day has %d preferences, want 1", len(day.Preferences))
	}

	pref := day.Preferences[0]
	if pref.Likelihood != analysis.LikelihoodHigh || pref.TimeOfDay != analysis.Morning {
		t.Errorf("preference = %+v", pref)
	}
}

func TestAnalyzePatternRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			"unknown weekday",
			`{"pattern": {"days": [{"day": "Funday", "preferences": [{"coffee_type": "Latte", "milk_type": "Oat", "likelihood": "high", "time_of_day": "morning"}]}]}, "confidence": 0.7, "reasoning": "r"}`,
		},
		{
			"day without preferences",
			`{"pattern": {"days": [{"day": "Monday", "preferences": []}]}, "confidence": 0.7, "reasoning": "r"}`,
		},
		{
			"out-of-enum likelihood",
			`{"pattern": {"days": [{"day": "Monday", "preferences": [{"coffee_type": "Latte", "milk_type": "Oat", "likelihood": "certain", "time_of_day": "morning"}]}]}, "confidence": 0.7, "reasoning": "r"}`,
		},
		{
			"out-of-enum daypart",
			`{"pattern": {"days": [{"day": "Monday", "preferences": [{"coffee_type": "Latte", "milk_type": "Oat", "likelihood": "high", "time_of_day": "midnight"}]}]}, "confidence": 0.7, "reasoning": "r"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCompleter{responses: []string{tt.response}}
			a := analysis.NewAnalyzer(stub, testLogger())

			if _, err := a.AnalyzePattern(context.Background(), makeOrders(3)); !errors.Is(err, analysis.ErrAnalysis) {
				t.Errorf("error = %v, want ErrAnalysis", err)
			}
		})
	}
}

func TestPatternValidate(t *testing.T) {
	valid := analysis.Pattern{Days: []analysis.DayPattern{
		{
			Day: "Friday",
			Preferences: []analysis.DrinkPreference{
				{CoffeeType: orders.Cortado, MilkType: orders.Regular, Likelihood: analysis.LikelihoodHigh, TimeOfDay: analysis.Afternoon},
			},
		},
	}}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid pattern rejected: %v", err)
	}

	empty := analysis.Pattern{}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty pattern rejected: %v", err)
	}
}
