package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewDatabaseError("store entries", cause)

	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("entry end time precedes start time", nil)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.True(t, err.IsType(ErrorTypeValidation))
}

func TestNewFormatError(t *testing.T) {
	err := NewFormatError("pdf")

	assert.Equal(t, ErrorTypeFormat, err.Type)
	assert.Equal(t, "UNKNOWN_FORMAT", err.Code)
	assert.Contains(t, err.Error(), "pdf")
}

func TestNewEngineError_CarriesCause(t *testing.T) {
	cause := stderrors.New("executable file not found")
	err := NewEngineError("export 2026-01-12", cause)

	assert.Equal(t, ErrorTypeEngine, err.Type)
	assert.True(t, stderrors.Is(err, cause))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad timestamp", nil).
		WithContext("start", "20260112T140000Z").
		WithContext("end", "20260112T090000Z")

	start, ok := err.GetContext("start")
	require.True(t, ok)
	assert.Equal(t, "20260112T140000Z", start)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{name: "matching type", err: NewFormatError("pdf"), errorType: ErrorTypeFormat, expected: true},
		{name: "different type", err: NewFormatError("pdf"), errorType: ErrorTypeDatabase, expected: false},
		{name: "plain error", err: stderrors.New("boom"), errorType: ErrorTypeFormat, expected: false},
		{name: "nil error", err: nil, errorType: ErrorTypeFormat, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorType(tt.err, tt.errorType))
		})
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewDatabaseError("query", stderrors.New("locked"))
	wrapped := WrapError(inner, ErrorTypeDatabase, "search entries")

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeDatabase, appErr.Type)
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation message passes through",
			err:      NewValidationError("entry end time precedes start time", nil),
			expected: "entry end time precedes start time",
		},
		{
			name:     "database errors get a friendly message",
			err:      NewDatabaseError("store entries", stderrors.New("disk I/O error")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "engine errors get a friendly message",
			err:      NewEngineError("export 2026-01-12", stderrors.New("not found")),
			expected: "The time-tracking engine could not be reached. Is timewarrior installed?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "UNKNOWN_FORMAT", GetErrorCode(NewFormatError("pdf")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(stderrors.New("boom")))
}
