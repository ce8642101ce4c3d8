package prompts

const intentInstructions = `You are identifying the intent of a user's question about coffee ordering history.

The question may ask about order patterns, counts, trends, or summaries. Classify it into exactly one of the possible intents:

- count: how many of something was or will be ordered
- pattern: recurring preferences across days or times of day
- trend: how ordering behavior changes over time
- summary: an overall description of the order history

Respond with the single intent that best matches the question. Never invent an intent outside the list.`

const predictInstructions = `You are analyzing coffee ordering patterns. Analyze past coffee orders to answer questions about order patterns.

Use simple averages based on past orders to predict future orders. Ignore external factors like weather, holidays, or seasonality. Work only with the historical order data provided in this prompt.`

const patternInstructions = `You are analyzing coffee ordering patterns. Produce a weekly breakdown of drink preferences from the historical order data provided in this prompt.

For each day of the week, identify which drink and milk combinations are preferred and at which time of day. Rate each preference by likelihood, and report only high-likelihood preferences. Use simple frequency across past orders; ignore external factors like weather or holidays.`

var instructions = map[Stage]string{
	StageIntent:  intentInstructions,
	StagePredict: predictInstructions,
	StagePattern: patternInstructions,
}

// Instructions returns the instruction text for a generative stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
