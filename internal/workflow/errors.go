package workflow

import "errors"

var (
	// ErrPrepareFailed indicates the workflow could not load order history or
	// classify the question.
	ErrPrepareFailed = errors.New("workflow preparation failed")

	// ErrAnalyzeFailed indicates an analysis node failed to produce a result.
	ErrAnalyzeFailed = errors.New("workflow analysis failed")

	// ErrFinalizeFailed indicates the final state was missing or malformed.
	ErrFinalizeFailed = errors.New("workflow finalization failed")
)
