package wizard

import (
	"errors"
	"fmt"
)

// StateError represents a failure to apply an action to the draft.
type StateError struct {
	// Code identifies the error category.
	Code StateErrorCode

	// Message is a human-readable description.
	Message string

	// ActionKind identifies the offending action, when known.
	ActionKind string
}

// StateErrorCode categorizes state errors.
type StateErrorCode string

const (
	// ErrCodeNoDocument indicates an edit was dispatched before Init.
	ErrCodeNoDocument StateErrorCode = "NO_DOCUMENT"

	// ErrCodeUnknownAction indicates an unrecognized action kind.
	ErrCodeUnknownAction StateErrorCode = "UNKNOWN_ACTION"

	// ErrCodeBadPayload indicates an action payload that failed to decode.
	ErrCodeBadPayload StateErrorCode = "BAD_PAYLOAD"

	// ErrCodeTemplate indicates an Init against an unknown template.
	ErrCodeTemplate StateErrorCode = "TEMPLATE"
)

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.ActionKind != "" {
		return fmt.Sprintf("%s: %s (action=%s)", e.Code, e.Message, e.ActionKind)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNoDocument reports whether err is a dispatch-before-init error.
// Uses errors.As to handle wrapped errors.
func IsNoDocument(err error) bool {
	var se *StateError
	if errors.As(err, &se) {
		return se.Code == ErrCodeNoDocument
	}
	return false
}
