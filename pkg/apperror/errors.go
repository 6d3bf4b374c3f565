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

// ---- Ledger (LED) ----

func ErrInsufficientFunds(what string) *AppError {
	return New("LED_001", fmt.Sprintf("Insufficient %s balance", what), http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("LED_002", "Invalid amount", http.StatusBadRequest)
}

func ErrWalletNotFound() *AppError {
	return New("LED_003", "Wallet not found", http.StatusNotFound)
}

// ErrLedgerWriteFailed marks an unexpected persistence failure during a
// ledger mutation. Settlement treats it as retryable.
func ErrLedgerWriteFailed(err error) *AppError {
	return Wrap("LED_004", "Ledger write failed", http.StatusInternalServerError, err)
}

// ---- Positions (POS) ----

func ErrInvalidDuration(seconds int) *AppError {
	return New("POS_001", fmt.Sprintf("No payout tier for duration %ds", seconds), http.StatusBadRequest)
}

func ErrPositionNotFound() *AppError {
	return New("POS_002", "Position not found", http.StatusNotFound)
}

// ErrAlreadySettled is not surfaced to callers of Settle (duplicate fires are
// a no-op); it exists for internal signalling and reporting.
func ErrAlreadySettled() *AppError {
	return New("POS_003", "Position already settled", http.StatusConflict)
}

func ErrInvalidDirection() *AppError {
	return New("POS_004", "Direction must be UP or DOWN", http.StatusBadRequest)
}

// ---- Orders (ORD) ----

func ErrInvalidSide() *AppError {
	return New("ORD_001", "Side must be BUY or SELL", http.StatusBadRequest)
}

func ErrOrderNotFound() *AppError {
	return New("ORD_002", "Order not found", http.StatusNotFound)
}

func ErrOrderNotOpen() *AppError {
	return New("ORD_003", "Order is no longer open", http.StatusConflict)
}

// ---- Price oracle (ORC) ----

func ErrOracleUnavailable(pair string, err error) *AppError {
	return Wrap("ORC_001", fmt.Sprintf("No price available for %s", pair), http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_003", "Too many requests, please try again later", http.StatusTooManyRequests)
}
