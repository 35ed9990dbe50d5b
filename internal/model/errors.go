package model

import "errors"

// Error taxonomy surfaced to the boundary layer. Callers wrap these with
// fmt.Errorf("...: %w", err) and classify them with errors.Is.
var (
	// ErrEmptyInput means there was nothing to summarize.
	ErrEmptyInput = errors.New("text is empty")

	// ErrInvalidParameter means a request parameter was missing or out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrResourceUnavailable means a language asset could not be loaded.
	ErrResourceUnavailable = errors.New("language resource unavailable")

	// ErrUnknownMethod means the summarization method is not recognised.
	ErrUnknownMethod = errors.New("invalid summarization method")

	// ErrBackendUnavailable means no abstractive backend is configured or reachable.
	ErrBackendUnavailable = errors.New("abstractive backend unavailable")
)
