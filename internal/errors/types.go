package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeUnknownType   ErrorType = "unknown_type"
	ErrorTypeChainMismatch ErrorType = "chain_mismatch"
	ErrorTypeChain         ErrorType = "chain"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeConfig        ErrorType = "config"
	ErrorTypeIO            ErrorType = "io"
	ErrorTypeInternal      ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeUnknownType     = "ERR_UNKNOWN_TYPE"
	ErrCodeChainMismatch   = "ERR_CHAIN_MISMATCH"
	ErrCodeMissingBase     = "ERR_MISSING_BASE"
	ErrCodeChainCycle      = "ERR_CHAIN_CYCLE"
	ErrCodeNotAncestor     = "ERR_NOT_ANCESTOR"
	ErrCodeRegistrySealed  = "ERR_REGISTRY_SEALED"
	ErrCodeInvalidBuilder  = "ERR_INVALID_BUILDER"
	ErrCodeNilObject       = "ERR_NIL_OBJECT"
	ErrCodeConfigInvalid   = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound    = "ERR_FILE_NOT_FOUND"
	ErrCodeDecodeFailed    = "ERR_DECODE_FAILED"
	ErrCodeValidation      = "ERR_VALIDATION_FAILED"
	ErrCodeInternalFailure = "ERR_INTERNAL"
)

// ViewforgeError is a structured error type with context.
type ViewforgeError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Class       string
	Attribute   string
	Recoverable bool
}

// Error implements the error interface.
func (e *ViewforgeError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Class != "" {
		parts = append(parts, "class:"+e.Class)
	}

	if e.Attribute != "" {
		parts = append(parts, "attribute:"+e.Attribute)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ViewforgeError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ViewforgeError) Is(target error) bool {
	var t *ViewforgeError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ViewforgeError) WithContext(key string, value interface{}) *ViewforgeError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithClass adds the type tag the error relates to.
func (e *ViewforgeError) WithClass(class string) *ViewforgeError {
	e.Class = class

	return e
}

// WithAttribute adds the attribute name the error relates to.
func (e *ViewforgeError) WithAttribute(name string) *ViewforgeError {
	e.Attribute = name

	return e
}

// Error creation functions

// NewUnknownTypeError reports a tag with no registered builder. It is fatal
// to one request; the caller picks a fallback.
func NewUnknownTypeError(tag string) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeUnknownType,
		Code:        ErrCodeUnknownType,
		Message:     "no builder registered for type",
		Class:       tag,
		Recoverable: true,
	}
}

// NewChainMismatchError reports a builder that refused an object because it
// is not of the builder's kind.
func NewChainMismatchError(tag, builderTag string) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeChainMismatch,
		Code:        ErrCodeChainMismatch,
		Message:     fmt.Sprintf("builder %q rejected the object", builderTag),
		Class:       tag,
		Recoverable: true,
	}
}

// NewChainError reports a broken builder chain: a missing base or a cycle.
func NewChainError(code, message string) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeChain,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ViewforgeError {
	return &ViewforgeError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var ve *ViewforgeError
	if errors.As(err, &ve) {
		return ve.Recoverable
	}

	return false
}

// IsUnknownType checks if an error reports an unregistered type tag.
func IsUnknownType(err error) bool {
	return hasType(err, ErrorTypeUnknownType)
}

// IsChainMismatch checks if an error reports a builder that refused an object.
func IsChainMismatch(err error) bool {
	return hasType(err, ErrorTypeChainMismatch)
}

// IsChainError checks if an error reports a broken builder chain.
func IsChainError(err error) bool {
	return hasType(err, ErrorTypeChain)
}

func hasType(err error, t ErrorType) bool {
	var ve *ViewforgeError
	if errors.As(err, &ve) {
		return ve.Type == t
	}

	return false
}

// Wrap wraps an error with additional context, creating a ViewforgeError if
// the input is not already one.
func Wrap(err error, errType ErrorType, code, message string) *ViewforgeError {
	if err == nil {
		return nil
	}

	var ve *ViewforgeError
	if errors.As(err, &ve) {
		return &ViewforgeError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       ve,
			Context:     ve.Context,
			Class:       ve.Class,
			Attribute:   ve.Attribute,
			Recoverable: ve.Recoverable,
		}
	}

	return &ViewforgeError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation,
	}
}
