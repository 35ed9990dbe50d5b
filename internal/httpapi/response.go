package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/condense/internal/model"
)

// HTTPError carries the status code and message sent to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func JSONResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONResponse(w, status, map[string]string{
		"error": message,
	})
}

// HandleError writes err as a JSON error body with the matching status.
func HandleError(w http.ResponseWriter, err error) {
	httpErr := toHTTPError(err)
	JSONError(w, httpErr.Code, httpErr.Message)
}

func toHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return &HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
	case errors.Is(err, model.ErrEmptyInput):
		return &HTTPError{Code: http.StatusBadRequest, Message: "Text is empty"}
	case errors.Is(err, model.ErrUnknownMethod):
		return &HTTPError{Code: http.StatusBadRequest, Message: "Invalid summarization method"}
	case errors.Is(err, model.ErrInvalidParameter):
		return &HTTPError{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, model.ErrResourceUnavailable), errors.Is(err, model.ErrBackendUnavailable):
		return &HTTPError{Code: http.StatusServiceUnavailable, Message: err.Error()}
	default:
		return &HTTPError{Code: http.StatusInternalServerError, Message: "Failed to summarize: " + err.Error()}
	}
}
