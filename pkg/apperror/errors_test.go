package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	e := New("WAL_004", "Amount must be greater than zero", http.StatusBadRequest)
	assert.Equal(t, "[WAL_004] Amount must be greater than zero", e.Error())
}

func TestAppError_ErrorStringWithWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, cause)
	assert.Contains(t, e.Error(), "SYS_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row not found")
	e := InternalError(fmt.Errorf("load wallet: %w", cause))
	assert.True(t, errors.Is(e, cause))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrWalletNotFound())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestErrorConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"invalid credentials", ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{"username exists", ErrUsernameExists(), "AUTH_002", http.StatusConflict},
		{"invalid token", ErrInvalidToken(), "AUTH_003", http.StatusUnauthorized},
		{"user not found", ErrUserNotFound(), "WAL_001", http.StatusNotFound},
		{"wallet not found", ErrWalletNotFound(), "WAL_002", http.StatusNotFound},
		{"wallet exists", ErrWalletExists(), "WAL_003", http.StatusBadRequest},
		{"invalid amount", ErrInvalidAmount(), "WAL_004", http.StatusBadRequest},
		{"insufficient funds", ErrInsufficientFunds(), "WAL_005", http.StatusBadRequest},
		{"rate limit", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestValidation_CustomMessage(t *testing.T) {
	e := Validation("start date after end date")
	assert.Equal(t, "WAL_004", e.Code)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)
	assert.Equal(t, "start date after end date", e.Message)
}
