package storage

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates no record matched the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrSchemaMismatch indicates an existing store file whose header does not
	// match the configured schema.
	ErrSchemaMismatch = errors.New("store schema mismatch")
	// ErrFieldCount indicates a record whose field count does not match the schema.
	ErrFieldCount = errors.New("record field count does not match schema")
)

// MapHTTPStatus maps storage errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrFieldCount) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
