package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"bad key"}`, IsAuthentication},
		{"forbidden", http.StatusForbidden, `{"detail":"no access"}`, IsAuthentication},
		{"rate limited", http.StatusTooManyRequests, `{"detail":"slow down"}`, IsRateLimit},
		{"not found", http.StatusNotFound, `{"detail":"no such memory"}`, IsNotFound},
		{"bad request", http.StatusBadRequest, `{"detail":"missing content"}`, IsValidation},
		{"unprocessable", http.StatusUnprocessableEntity, `{"detail":"bad payload"}`, IsValidation},
		{"internal", http.StatusInternalServerError, `{"detail":"boom"}`, IsServer},
		{"bad gateway", http.StatusBadGateway, "", IsServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResponse(tt.status, []byte(tt.body))
			assert.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestFromResponseMessage(t *testing.T) {
	// detail wins over message and error
	err := FromResponse(http.StatusBadRequest, []byte(`{"detail":"a","message":"b","error":"c"}`))
	assert.Contains(t, err.Error(), "a")

	// message field
	err = FromResponse(http.StatusBadRequest, []byte(`{"message":"b"}`))
	assert.Contains(t, err.Error(), "b")

	// error field
	err = FromResponse(http.StatusBadRequest, []byte(`{"error":"c"}`))
	assert.Contains(t, err.Error(), "c")

	// non-JSON body is carried verbatim
	err = FromResponse(http.StatusInternalServerError, []byte("upstream timeout"))
	assert.Contains(t, err.Error(), "upstream timeout")

	// empty body gets a placeholder
	err = FromResponse(http.StatusInternalServerError, nil)
	assert.Contains(t, err.Error(), "no response body")
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("content must not be blank")
	assert.True(t, IsValidation(err))
	assert.Equal(t, 0, err.StatusCode)
	assert.Contains(t, err.Error(), "content must not be blank")
}

func TestRateLimitRetryAfter(t *testing.T) {
	err := &RateLimitError{StatusCode: http.StatusTooManyRequests, Message: "throttled", RetryAfter: 7}
	assert.Contains(t, err.Error(), "retry after 7s")
}

func TestPredicatesRejectOtherTypes(t *testing.T) {
	err := FromResponse(http.StatusNotFound, nil)
	assert.False(t, IsAuthentication(err))
	assert.False(t, IsRateLimit(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsServer(err))
	assert.True(t, IsNotFound(err))
}
