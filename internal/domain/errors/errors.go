package errors

import (
	"fmt"
	"net/http"
	"time"

	"rentauth/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still match their sentinel.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrDuplicateAccount = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ACCOUNT",
		"An account with this email already exists",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DEACTIVATED",
		"This account has been deactivated",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email address before logging in",
		"",
	)

	ErrAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"ALREADY_VERIFIED",
		"Email address is already verified",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid or unknown token",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password does not meet the minimum requirements",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// ErrAccountLocked and ErrTokenExpired are the sentinels for the typed
	// errors below; match them with errors.Is and read fields with errors.As.
	ErrAccountLocked = NewBaseError(
		http.StatusLocked,
		"ACCOUNT_LOCKED",
		"Account is temporarily locked",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusGone,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)
)

// AccountLockedError reports a lockout and how long it still lasts.
type AccountLockedError struct {
	RemainingMinutes int
}

// NewAccountLockedError creates a lockout error with whole minutes remaining.
func NewAccountLockedError(remainingMinutes int) *AccountLockedError {
	return &AccountLockedError{RemainingMinutes: remainingMinutes}
}

func (e *AccountLockedError) Error() string {
	return e.Message()
}

// Is lets errors.Is(err, ErrAccountLocked) match.
func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

func (e *AccountLockedError) HTTPCode() int {
	return http.StatusLocked
}

func (e *AccountLockedError) ErrorCode() string {
	return ErrAccountLocked.ErrorCode()
}

func (e *AccountLockedError) Message() string {
	return fmt.Sprintf("Account is temporarily locked. Try again in %d minutes", e.RemainingMinutes)
}

func (e *AccountLockedError) Details() string {
	return fmt.Sprintf("remainingMinutes=%d", e.RemainingMinutes)
}

// TokenType names the purpose a token was issued for.
type TokenType string

const (
	TokenTypeVerification  TokenType = "VERIFICATION"
	TokenTypePasswordReset TokenType = "PASSWORD_RESET"
)

// TokenExpiredError reports a known token whose validity window has passed.
type TokenExpiredError struct {
	TokenType TokenType
	ExpiredAt time.Time
}

// NewTokenExpiredError creates an expiry error for the given token purpose.
func NewTokenExpiredError(tokenType TokenType, expiredAt time.Time) *TokenExpiredError {
	return &TokenExpiredError{TokenType: tokenType, ExpiredAt: expiredAt}
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("%s token expired at %s", e.TokenType, e.ExpiredAt.UTC().Format(time.RFC3339))
}

// Is lets errors.Is(err, ErrTokenExpired) match.
func (e *TokenExpiredError) Is(target error) bool {
	return target == ErrTokenExpired
}

func (e *TokenExpiredError) HTTPCode() int {
	return http.StatusGone
}

func (e *TokenExpiredError) ErrorCode() string {
	return ErrTokenExpired.ErrorCode()
}

func (e *TokenExpiredError) Message() string {
	if e.TokenType == TokenTypePasswordReset {
		return "Password reset link has expired. Please request a new one"
	}

	return "Verification link has expired. Please request a new one"
}

func (e *TokenExpiredError) Details() string {
	return "expiredAt=" + e.ExpiredAt.UTC().Format(time.RFC3339)
}

// StorageError represents a credential store failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the driver error.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
