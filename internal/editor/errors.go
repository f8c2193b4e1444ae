package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceRequired indicates the session has no record service wired.
	ErrServiceRequired = errors.New("editor: record service is required")
	// ErrRegistryRequired indicates the session has no locale registry wired.
	ErrRegistryRequired = errors.New("editor: locale registry is required")
	// ErrTranslatorRequired indicates auto-translate was requested without an
	// orchestrator wired.
	ErrTranslatorRequired = errors.New("editor: translator is required")
	// ErrInvalidTransition rejects operations issued outside the states that
	// allow them.
	ErrInvalidTransition = errors.New("editor: invalid transition")
	// ErrNoRecordLoaded indicates the session has no record open.
	ErrNoRecordLoaded = errors.New("editor: no record loaded")
	// ErrTranslateBlocked indicates auto-translate gating failed: the default
	// locale has neither a saved translation nor non-empty draft content.
	ErrTranslateBlocked = errors.New("editor: auto-translate requires default-locale content")
)

// TransitionError reports the state an operation was rejected in.
type TransitionError struct {
	State State
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("editor: cannot %s while %s", e.Event, e.State)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
