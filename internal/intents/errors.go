package intents

import (
	"errors"
	"net/http"
)

// Domain errors for intent classification.
var (
	ErrInvalidIntent  = errors.New("invalid intent")
	ErrClassification = errors.New("intent classification failed")
)

// MapHTTPStatus maps classification errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrClassification) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrInvalidIntent) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
