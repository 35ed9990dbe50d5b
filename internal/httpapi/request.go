package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/condense/internal/model"
)

const maxMemory = 8 << 20

var errMissingFields = &HTTPError{Code: http.StatusBadRequest, Message: "Missing required fields"}

type summarizeRequest struct {
	Method     string          `json:"method"`
	Percentage json.RawMessage `json:"percentage"`
	Text       string          `json:"text"`
}

// parseRequest accepts a JSON body or form fields, with an optional plain
// text "file" part that takes precedence over the "text" field.
func parseRequest(r *http.Request) (model.Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return parseJSON(r)
	}
	return parseForm(r)
}

func parseJSON(r *http.Request) (model.Request, error) {
	var body summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.Request{}, err
		}
		return model.Request{}, &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}

	raw := strings.TrimSpace(string(body.Percentage))
	if raw == "" || raw == "null" {
		return model.Request{}, errMissingFields
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(body.Percentage, &s); err != nil {
			return model.Request{}, fmt.Errorf("%w: percentage: %v", model.ErrInvalidParameter, err)
		}
		raw = s
	}

	return build(body.Method, raw, body.Text)
}

func parseForm(r *http.Request) (model.Request, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.Request{}, err
		}
		return model.Request{}, &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid form payload: " + err.Error(),
		}
	}

	text := r.FormValue("text")
	file, _, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		text, err = readTextFile(file)
		if err != nil {
			return model.Request{}, err
		}
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		return model.Request{}, fmt.Errorf("read file part: %w", err)
	}

	return build(r.FormValue("method"), r.FormValue("percentage"), text)
}

func readTextFile(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("read file part: %w", err)
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", fmt.Errorf("%w: file must be UTF-8 plain text", model.ErrInvalidParameter)
	}
	return buf.String(), nil
}

func build(method, percentage, text string) (model.Request, error) {
	method = strings.TrimSpace(method)
	percentage = strings.TrimSpace(percentage)
	if method == "" || percentage == "" {
		return model.Request{}, errMissingFields
	}

	p, err := strconv.Atoi(percentage)
	if err != nil {
		return model.Request{}, fmt.Errorf("%w: percentage must be an integer, got %q", model.ErrInvalidParameter, percentage)
	}

	return model.Request{
		Method:     model.Method(method),
		Percentage: p,
		Text:       text,
	}, nil
}
