// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultMessage is used when the backend returns no readable error body.
const DefaultMessage = "An error occurred"

var (
	// ErrSessionExpired means no usable access token could be obtained.
	ErrSessionExpired = errors.New("session expired, please sign in again")
	// ErrNoRefreshToken is returned by an explicit refresh without a cached refresh token.
	ErrNoRefreshToken = errors.New("no refresh token")
	// ErrCampaignNotStartable is returned before calling the backend when a
	// campaign lacks a template or a contact list.
	ErrCampaignNotStartable = errors.New("campaign cannot be started")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NewAPIError builds an APIError, falling back to DefaultMessage.
func NewAPIError(status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = DefaultMessage
	}
	return &APIError{Status: status, Message: message}
}

// IsUnauthorized reports whether err is (or wraps) a 401 from the backend,
// or a locally detected expired session.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrSessionExpired) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// NotFoundError is a 404 from the backend for the resource at Path. It
// unwraps to the underlying APIError.
type NotFoundError struct {
	Path string
	*APIError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Path, e.Message)
}

func (e *NotFoundError) Unwrap() error { return e.APIError }

// NewNotFound builds a NotFoundError for path.
func NewNotFound(path, message string) error {
	if strings.TrimSpace(message) == "" {
		message = DefaultMessage
	}
	return &NotFoundError{Path: path, APIError: &APIError{Status: http.StatusNotFound, Message: message}}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError carries one message per invalid form field.
type ValidationError struct {
	Fields map[string]string
	Order  []string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Order))
	for _, f := range e.Order {
		msgs = append(msgs, e.Fields[f])
	}
	return strings.Join(msgs, "; ")
}

// First returns the first field message, the one a toast would show.
func (e *ValidationError) First() string {
	if len(e.Order) == 0 {
		return ""
	}
	return e.Fields[e.Order[0]]
}

// Add records a message for field, keeping the first one per field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = message
	e.Order = append(e.Order, field)
}

// UserMessage returns the text shown to a dashboard or CLI user for err.
func UserMessage(err error, fallback string) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.First()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrCampaignNotStartable) {
		return err.Error()
	}
	return fallback
}
