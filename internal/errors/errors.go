package errors

import "fmt"

// ErrorCode represents a linklet error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrTextTooLarge   ErrorCode = "TEXT_TOO_LARGE"  // 413
	ErrEncodeFailed   ErrorCode = "ENCODE_FAILED"   // 422
	ErrDecodeFailed   ErrorCode = "DECODE_FAILED"   // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// LinkError represents a structured error with code, status, and details.
type LinkError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *LinkError {
	return &LinkError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewTextTooLarge creates a 413 error when text exceeds the share size limit.
func NewTextTooLarge(max, actual int) *LinkError {
	return &LinkError{
		Code:    ErrTextTooLarge,
		Status:  413,
		Message: fmt.Sprintf("text exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewEncodeFailed creates a 422 error when text cannot be turned into a token.
func NewEncodeFailed(reason string) *LinkError {
	return &LinkError{
		Code:    ErrEncodeFailed,
		Status:  422,
		Message: fmt.Sprintf("cannot encode text: %s", reason),
		Details: map[string]any{"reason": reason},
	}
}

// NewDecodeFailed creates a 422 error when a token is not valid encoder output.
func NewDecodeFailed(reason string) *LinkError {
	return &LinkError{
		Code:    ErrDecodeFailed,
		Status:  422,
		Message: fmt.Sprintf("cannot decode token: %s", reason),
		Details: map[string]any{"reason": reason},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *LinkError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &LinkError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a LinkError with the given code.
func Is(err error, code ErrorCode) bool {
	if lErr, ok := err.(*LinkError); ok {
		return lErr.Code == code
	}
	return false
}
