package analysis

import (
	"errors"
	"net/http"
)

// Domain errors for pattern analysis.
var (
	ErrAnalysis      = errors.New("order analysis failed")
	ErrInvalidResult = errors.New("invalid analysis result")
)

// MapHTTPStatus maps analysis errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrAnalysis) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
