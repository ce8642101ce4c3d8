package prompts

const intentSpec = `Respond with a JSON object matching this exact structure:

{
  "intent": "<count|pattern|trend|summary>"
}

Field constraints:
- intent: Exactly one value from the list. Any other value is invalid.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Classify the question as written; do not answer it`

const predictSpec = `Respond with a JSON object matching this exact structure:

{
  "prediction": "<answer>",
  "confidence": 0.0,
  "reasoning": "<explanation>"
}

Field constraints:
- prediction: A short direct answer to the question, grounded in the
  historical orders provided.
- confidence: A number between 0 and 1 reflecting how well the historical
  data supports the prediction.
- reasoning: Brief explanation of how the historical orders lead to the
  prediction, citing the relevant counts or averages.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Base the answer only on the provided order history
- State uncertainty in the reasoning when the history is sparse`

const patternSpec = `Respond with a JSON object matching this exact structure:

{
  "pattern": {
    "days": [
      {
        "day": "<Monday..Sunday>",
        "preferences": [
          {
            "coffee_type": "<Americano|Latte|Cortado>",
            "milk_type": "<Oat|Regular|Almond>",
            "likelihood": "<high|medium|low>",
            "time_of_day": "<morning|afternoon|evening>"
          }
        ]
      }
    ]
  },
  "confidence": 0.0,
  "reasoning": "<explanation>"
}

Field constraints:
- pattern.days: One entry per weekday that has observable preferences.
  Omit days with no orders rather than fabricating entries.
- preferences: Only combinations actually present in the order history.
  Report only high-likelihood preferences; omit medium and low.
- confidence: A number between 0 and 1 reflecting how well the historical
  data supports the reported pattern.
- reasoning: Brief explanation of the strongest observed patterns and the
  order counts behind them.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Base the pattern only on the provided order history
- Never invent drink or milk types outside the listed values`

var specs = map[Stage]string{
	StageIntent:  intentSpec,
	StagePredict: predictSpec,
	StagePattern: patternSpec,
}

// Spec returns the response specification for a generative stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
