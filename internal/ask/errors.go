package ask

import (
	"errors"
	"net/http"

	"brewline/internal/analysis"
	"brewline/internal/intents"
	"brewline/internal/orders"
)

// ErrEmptyQuestion indicates a request with no question text.
var ErrEmptyQuestion = errors.New("question is required")

// MapHTTPStatus maps ask pipeline errors to HTTP status codes. Model-side
// failures surface as 502 because the fault lies with the upstream provider,
// not the request.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyQuestion):
		return http.StatusBadRequest
	case errors.Is(err, orders.ErrEmptyOrders):
		return http.StatusUnprocessableEntity
	// checked before ErrInvalidIntent: an exhausted classification whose
	// retries all produced out-of-enum intents carries both, and the fault
	// is the model's
	case errors.Is(err, intents.ErrClassification),
		errors.Is(err, analysis.ErrAnalysis):
		return http.StatusBadGateway
	case errors.Is(err, intents.ErrInvalidIntent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
