package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error types for the Memphora API client. Every failed exchange with the
// API is surfaced as one of these, carrying the HTTP status and the server
// message so callers can branch on the class of failure.
type (
	// AuthenticationError is returned when the API rejects the credentials.
	AuthenticationError struct {
		StatusCode int
		Message    string
	}

	// RateLimitError is returned when the API throttles the client.
	RateLimitError struct {
		StatusCode int
		Message    string
		RetryAfter int
	}

	// ValidationError is returned when a request is rejected as malformed,
	// either locally before transmission or by the server (400, 422).
	ValidationError struct {
		StatusCode int
		Message    string
	}

	// NotFoundError is returned when the requested resource does not exist.
	NotFoundError struct {
		StatusCode int
		Message    string
	}

	// ServerError is returned for 5xx responses that survived retries.
	ServerError struct {
		StatusCode int
		Message    string
	}

	// ConnectionError wraps a transport failure before any response arrived.
	ConnectionError struct {
		Message string
		Err     error
	}

	// DecodingError is returned when a response body cannot be decoded.
	DecodingError struct {
		Message string
		Err     error
	}
)

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (status: %d, retry after %ds)", e.Message, e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *ValidationError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("invalid request: %s", e.Message)
	}
	return fmt.Sprintf("invalid request: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to reach the Memphora API: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to reach the Memphora API: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode API response: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to decode API response: %s", e.Message)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// NewValidationError builds a client-side validation failure, used before a
// request is transmitted. StatusCode stays zero.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FromResponse maps a non-2xx status and response body to a typed error.
// The body is expected to be JSON with a detail, message or error field,
// but a raw body is carried verbatim when it is not.
func FromResponse(status int, body []byte) error {
	message := extractMessage(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{StatusCode: status, Message: message}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{StatusCode: status, Message: message}
	case status == http.StatusNotFound:
		return &NotFoundError{StatusCode: status, Message: message}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &ValidationError{StatusCode: status, Message: message}
	case status >= 500:
		return &ServerError{StatusCode: status, Message: message}
	default:
		return &ServerError{StatusCode: status, Message: message}
	}
}

// extractMessage pulls a human-readable message out of an API error body.
func extractMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			return payload.Detail
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		}
	}

	if len(body) == 0 {
		return "no response body"
	}

	return string(body)
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsRateLimit reports whether err is a rate limit failure.
func IsRateLimit(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsServer reports whether err is a server-side failure.
func IsServer(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}
