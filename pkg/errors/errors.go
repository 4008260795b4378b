package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrEncoding    ErrorCode = "ENCODING"

	// Discovery errors
	ErrDiscovery ErrorCode = "DISCOVERY"

	// Template errors
	ErrMalformedTemplate   ErrorCode = "MALFORMED_TEMPLATE"
	ErrUnresolvedAttribute ErrorCode = "UNRESOLVED_ATTRIBUTE"

	// FileSystem errors
	ErrSelfOverwrite ErrorCode = "SELF_OVERWRITE"
	ErrRead          ErrorCode = "READ"
	ErrWrite         ErrorCode = "WRITE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// Detail keys shared by the packages that build errors
const (
	DetailPath      = "path"
	DetailInput     = "input"
	DetailOutput    = "output"
	DetailAttribute = "attribute"
	DetailLine      = "line"
	DetailColumn    = "column"
	DetailEncoding  = "encoding"
)

// TplgenError represents a structured error with code and details
type TplgenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TplgenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TplgenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TplgenError) Is(target error) bool {
	var targetErr *TplgenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TplgenError with the given code and message
func New(code ErrorCode, message string) *TplgenError {
	return &TplgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TplgenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TplgenError {
	return &TplgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TplgenError
func Wrap(err error, code ErrorCode, message string) *TplgenError {
	if err == nil {
		return nil
	}
	return &TplgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TplgenError {
	if err == nil {
		return nil
	}
	return &TplgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TplgenError) WithDetail(key string, value interface{}) *TplgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TplgenError) WithDetails(details map[string]interface{}) *TplgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tplErr *TplgenError
	if errors.As(err, &tplErr) {
		return tplErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TplgenError
func GetErrorCode(err error) ErrorCode {
	var tplErr *TplgenError
	if errors.As(err, &tplErr) {
		return tplErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TplgenError
func GetErrorDetails(err error) map[string]interface{} {
	var tplErr *TplgenError
	if errors.As(err, &tplErr) {
		return tplErr.Details
	}
	return nil
}

// GetErrorMessage returns the message of a TplgenError, including the
// wrapped cause, without code prefixes. Other errors return Error().
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var tplErr *TplgenError
	if !errors.As(err, &tplErr) {
		return err.Error()
	}
	if tplErr.Wrapped == nil {
		return tplErr.Message
	}
	if inner, ok := tplErr.Wrapped.(*TplgenError); ok {
		return tplErr.Message + ": " + GetErrorMessage(inner)
	}
	return fmt.Sprintf("%s: %v", tplErr.Message, tplErr.Wrapped)
}
