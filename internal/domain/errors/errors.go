package errors

import (
	"fmt"
	"net/http"
	"strings"

	"brew/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so copies made by WithDetails still match the
// predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrNoActiveOrder = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_ORDER",
		"no order is in progress",
		"",
	)

	ErrOrderInProgress = NewBaseError(
		http.StatusConflict,
		"ORDER_IN_PROGRESS",
		"an order is already in progress",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"order status can only move to the next stage",
		"",
	)

	ErrPaymentNotExpected = NewBaseError(
		http.StatusConflict,
		"PAYMENT_NOT_EXPECTED",
		"the order is not waiting for payment",
		"",
	)

	// ErrStaleResponse is returned when a response arrives for an order that was
	// cancelled or replaced while the call was in flight.
	ErrStaleResponse = NewBaseError(
		http.StatusConflict,
		"STALE_RESPONSE",
		"the order changed while the request was in flight",
		"",
	)

	// ErrReceiptUnavailable is returned when a receipt is requested before the order is paid.
	ErrReceiptUnavailable = NewBaseError(
		http.StatusConflict,
		"RECEIPT_UNAVAILABLE",
		"a receipt is only available once the order is paid",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// MissingSelectionError is returned when an order is built without a coffee, a payment
// method and a delivery method all chosen.
type MissingSelectionError struct {
	Missing []string
}

// NewMissingSelectionError creates a MissingSelectionError for the named parts.
func NewMissingSelectionError(missing ...string) *MissingSelectionError {
	return &MissingSelectionError{Missing: missing}
}

func (e *MissingSelectionError) Error() string {
	return "missing selection: " + strings.Join(e.Missing, ", ")
}

func (e *MissingSelectionError) HTTPCode() int     { return http.StatusBadRequest }
func (e *MissingSelectionError) ErrorCode() string { return "MISSING_SELECTION" }

func (e *MissingSelectionError) Message() string {
	return "please select a coffee, a payment method and a delivery method"
}

func (e *MissingSelectionError) Details() string {
	return strings.Join(e.Missing, ",")
}

// OrderSubmissionError is returned when the remote service refused or failed to create an order.
type OrderSubmissionError struct {
	err error
}

// NewOrderSubmissionError wraps the remote failure.
func NewOrderSubmissionError(err error) *OrderSubmissionError {
	return &OrderSubmissionError{err: err}
}

func (e *OrderSubmissionError) Error() string {
	return errors.Wrap(e.err, "order submission failed").Error()
}

func (e *OrderSubmissionError) Unwrap() error     { return e.err }
func (e *OrderSubmissionError) HTTPCode() int     { return http.StatusBadGateway }
func (e *OrderSubmissionError) ErrorCode() string { return "ORDER_SUBMISSION_FAILED" }

func (e *OrderSubmissionError) Message() string {
	return "the order could not be placed, please try again"
}

func (e *OrderSubmissionError) Details() string {
	return e.err.Error()
}

// PaymentValidationError is returned when payment input breaks the rule of its method.
type PaymentValidationError struct {
	Reason string
}

// NewPaymentValidationError creates a PaymentValidationError with a human-readable reason.
func NewPaymentValidationError(format string, args ...any) *PaymentValidationError {
	return &PaymentValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *PaymentValidationError) Error() string {
	return "invalid payment: " + e.Reason
}

func (e *PaymentValidationError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *PaymentValidationError) ErrorCode() string { return "PAYMENT_VALIDATION_FAILED" }
func (e *PaymentValidationError) Message() string   { return e.Reason }
func (e *PaymentValidationError) Details() string   { return "" }

// NoUserFoundError is returned when the profile endpoint answers with an empty collection.
type NoUserFoundError struct{}

func (e *NoUserFoundError) Error() string     { return "no user found" }
func (e *NoUserFoundError) HTTPCode() int     { return http.StatusNotFound }
func (e *NoUserFoundError) ErrorCode() string { return "NO_USER_FOUND" }
func (e *NoUserFoundError) Message() string   { return "no user profile is available" }
func (e *NoUserFoundError) Details() string   { return "" }

// RemoteCallError represents a failed call to the remote coffee service: a non-2xx answer
// (Status set) or a transport failure (Status zero, Cause set).
type RemoteCallError struct {
	Method string
	Path   string
	Status int
	Msg    string
	Cause  error
}

func (e *RemoteCallError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Cause)
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Msg)
}

func (e *RemoteCallError) Unwrap() error     { return e.Cause }
func (e *RemoteCallError) HTTPCode() int     { return http.StatusBadGateway }
func (e *RemoteCallError) ErrorCode() string { return "REMOTE_CALL_FAILED" }

func (e *RemoteCallError) Message() string {
	return "the coffee service is unavailable, please retry"
}

func (e *RemoteCallError) Details() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}

	return ""
}

// IsNotFound reports whether the remote answered 404.
func (e *RemoteCallError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
