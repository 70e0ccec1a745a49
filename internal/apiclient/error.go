package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Kind classifies a failed call. The console treats all kinds the same way;
// the distinction only matters for logs.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindServer     Kind = "server"
	KindValidation Kind = "validation"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	case KindTransport:
		return fmt.Sprintf("api: transport: %v", e.Err)
	default:
		return "api: validation: " + e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a client-side validation error. The message is the first
// failing field in name order so repeated submissions report the same problem.
func Validation(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Error{
		Kind:    KindValidation,
		Message: fields[names[0]],
		Fields:  fields,
	}
}

// Message returns the text an admin should see for err: the server or
// validation message when there is one, the fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind != KindTransport && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindServer && apiErr.Status == status
}
