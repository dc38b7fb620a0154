package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

// ErrInvalidCredentials is returned for every login failure: blank
// fields, unknown username, or wrong password. The conditions are
// deliberately indistinguishable to the caller.
func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Wallet & Ledger (WAL) ----

func ErrUserNotFound() *AppError {
	return New("WAL_001", "User not found", http.StatusNotFound)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found for this user", http.StatusNotFound)
}

func ErrWalletExists() *AppError {
	return New("WAL_003", "User already has a wallet", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_004", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("WAL_005", "Insufficient balance", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected storage or infrastructure error.
// The wrapped cause is logged, never returned to the client.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WAL_004-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("WAL_004", message, http.StatusBadRequest)
}
