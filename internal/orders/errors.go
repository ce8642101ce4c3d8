package orders

import (
	"errors"
	"net/http"
)

// Domain errors for order operations.
var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidOrder = errors.New("invalid order")
	ErrEmptyOrders  = errors.New("orders cannot be empty")
	ErrBadRecord    = errors.New("malformed order record")
)

// MapHTTPStatus maps order domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidOrder) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrEmptyOrders) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
