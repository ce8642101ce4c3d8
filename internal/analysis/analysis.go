// Package analysis summarizes historical coffee orders into grounding context
// and asks a generative model to predict or describe ordering patterns.
package analysis

import (
	"encoding/json"
	"fmt"
	"slices"

	"brewline/internal/orders"
)

// Likelihood is a categorical rating of how strongly a preference is
// supported by the order history.
type Likelihood string

// Likelihood levels for drink preferences.
const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

var likelihoods = []Likelihood{LikelihoodHigh, LikelihoodMedium, LikelihoodLow}

// UnmarshalJSON validates that the decoded string is a known likelihood.
func (l *Likelihood) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Likelihood(raw)
	if !slices.Contains(likelihoods, v) {
		return fmt.Errorf("%w: likelihood %q", ErrInvalidResult, raw)
	}
	*l = v
	return nil
}

// TimeOfDay buckets an order time into a coarse daypart.
type TimeOfDay string

// Time-of-day buckets.
const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

var timesOfDay = []TimeOfDay{Morning, Afternoon, Evening}

// UnmarshalJSON validates that the decoded string is a known daypart.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := TimeOfDay(raw)
	if !slices.Contains(timesOfDay, v) {
		return fmt.Errorf("%w: time_of_day %q", ErrInvalidResult, raw)
	}
	*t = v
	return nil
}

// DrinkPreference is one observed drink and milk combination with its
// likelihood rating and daypart.
type DrinkPreference struct {
	CoffeeType orders.CoffeeType `json:"coffee_type"`
	MilkType   orders.MilkType   `json:"milk_type"`
	Likelihood Likelihood        `json:"likelihood"`
	TimeOfDay  TimeOfDay         `json:"time_of_day"`
}

// DayPattern is the set of drink preferences observed for one weekday.
type DayPattern struct {
	Day         string            `json:"day"`
	Preferences []DrinkPreference `json:"preferences"`
}

// Pattern is a per-weekday breakdown of drink preferences.
type Pattern struct {
	Days []DayPattern `json:"days"`
}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// Validate checks that every day entry names a real weekday and carries at
// least one preference.
func (p *Pattern) Validate() error {
	for _, day := range p.Days {
		if !slices.Contains(weekdays, day.Day) {
			return fmt.Errorf("%w: day %q", ErrInvalidResult, day.Day)
		}
		if len(day.Preferences) == 0 {
			return fmt.Errorf("%w: no preferences for %s", ErrInvalidResult, day.Day)
		}
	}
	return nil
}

// Prediction is the analyzer's answer to a simple question: a short textual
// prediction with a confidence score and the reasoning behind it. Ephemeral;
// produced per request and never persisted.
type Prediction struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// PatternResult is the analyzer's full weekly pattern output with a
// confidence score and reasoning. Ephemeral; never persisted.
type PatternResult struct {
	Pattern    Pattern `json:"pattern"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
