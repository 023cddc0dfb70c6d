package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenMissing       ErrorType = "token_missing"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// NewInvalidCredentialsError is returned for both an unknown username and a
// wrong password so the response does not reveal which one failed.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "Invalid username or password.",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenMissingError is returned when a request carries no bearer token.
func NewTokenMissingError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenMissing,
		Message: "Authentication token required.",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenInvalidError is returned for a token that is present but cannot be
// verified: bad signature, expired or malformed.
func NewTokenInvalidError(details ...string) *AppError {
	return newAppError(ErrorTypeTokenInvalid, http.StatusForbidden, "Invalid or expired token.", details)
}
