package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSeverityString(t *testing.T) {
	testCases := []struct {
		severity ErrorSeverity
		expected string
	}{
		{ErrorSeverityInfo, "info"},
		{ErrorSeverityWarning, "warning"},
		{ErrorSeverityError, "error"},
		{ErrorSeverity(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.severity.String())
		})
	}
}

func TestViewforgeError_Error(t *testing.T) {
	err := NewUnknownTypeError("NoSuchTag")
	assert.Equal(t, "[ERR_UNKNOWN_TYPE] class:NoSuchTag no builder registered for type", err.Error())

	wrapped := NewIOError(ErrCodeFileNotFound, "cannot read layout", fmt.Errorf("disk gone"))
	assert.Contains(t, wrapped.Error(), "disk gone")

	attrErr := NewValidationError(ErrCodeValidation, "bad value").WithClass("Knob").WithAttribute("angle")
	assert.Contains(t, attrErr.Error(), "class:Knob")
	assert.Contains(t, attrErr.Error(), "attribute:angle")
}

func TestViewforgeError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("build failed: %w", NewUnknownTypeError("X"))

	assert.True(t, IsUnknownType(err))
	assert.False(t, IsChainMismatch(err))
	assert.True(t, errors.Is(err, &ViewforgeError{Type: ErrorTypeUnknownType, Code: ErrCodeUnknownType}))
	assert.True(t, IsRecoverable(err))

	chain := NewChainError(ErrCodeChainCycle, "cycle")
	assert.True(t, IsChainError(chain))
	assert.False(t, IsRecoverable(chain))

	mismatch := NewChainMismatchError("Knob", "Slider")
	assert.True(t, IsChainMismatch(mismatch))
	assert.Contains(t, mismatch.Error(), `"Slider"`)

	assert.False(t, IsUnknownType(errors.New("plain")))
	assert.False(t, IsRecoverable(errors.New("plain")))
}

func TestViewforgeError_WithContext(t *testing.T) {
	err := NewConfigError(ErrCodeConfigInvalid, "bad level").
		WithContext("key", "log.level").
		WithContext("value", "loud")

	assert.Equal(t, "log.level", err.Context["key"])
	assert.Equal(t, "loud", err.Context["value"])
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))

	base := errors.New("root cause")
	wrapped := Wrap(base, ErrorTypeValidation, ErrCodeValidation, "invalid")
	require.NotNil(t, wrapped)
	assert.Equal(t, base, wrapped.Unwrap())
	assert.True(t, wrapped.Recoverable)

	inner := NewUnknownTypeError("Dial")
	outer := Wrap(inner, ErrorTypeInternal, ErrCodeInternalFailure, "layout build failed")
	assert.Equal(t, "Dial", outer.Class)
	assert.True(t, IsUnknownType(outer.Unwrap()))
}

func TestCollector(t *testing.T) {
	collector := NewCollector()
	assert.False(t, collector.HasErrors())

	collector.Add(BuildIssue{Path: "views[0]", Class: "Knob", Message: "rejected", Severity: ErrorSeverityWarning})
	assert.False(t, collector.HasErrors())
	assert.Equal(t, 1, collector.Len())

	collector.Add(BuildIssue{Path: "views[1]", Class: "Dial", Message: "unknown", Severity: ErrorSeverityError, Cause: NewUnknownTypeError("Dial")})
	assert.True(t, collector.HasErrors())

	issues := collector.Issues()
	require.Len(t, issues, 2)
	assert.False(t, issues[0].Timestamp.IsZero())
	assert.Contains(t, issues[1].Error(), "views[1]: Dial: error: unknown")
	assert.True(t, IsUnknownType(&issues[1]))

	assert.Len(t, collector.IssuesByClass("Knob"), 1)
	assert.Empty(t, collector.IssuesByClass("Slider"))

	collector.Clear()
	assert.Equal(t, 0, collector.Len())
}
