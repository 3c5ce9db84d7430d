package structs

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
)

// GenericSubmitError is shown when a backend response body is unusable.
const GenericSubmitError = "Error occurred during submission."

// APIError is a non-2xx answer from the backend, decoded from its
// {message, errors} body when possible.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "backend request failed"
	}
	return e.Message
}

// UserMessage renders the error the way the forms display it: the backend
// message, with field-level server errors joined on.
func (e *APIError) UserMessage() string {
	if e.Message == "" {
		return GenericSubmitError
	}
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}
