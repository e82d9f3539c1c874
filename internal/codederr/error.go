package codederr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a coded error produced by a Registry.
type Error struct {
	Code   int
	Label  string
	Detail string

	registry *Registry
}

// Error renders "<code>: <label>; <detail>." or "<code>: <label>." when
// there is no detail.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail != "" {
		return fmt.Sprintf("%d: %s; %s.", e.Code, e.Label, e.Detail)
	}
	return fmt.Sprintf("%d: %s.", e.Code, e.Label)
}

// Suite returns the name of the registry the error belongs to.
func (e *Error) Suite() string {
	if e == nil || e.registry == nil {
		return ""
	}
	return e.registry.name
}

// Registry returns the registry the error was built from.
func (e *Error) Registry() *Registry {
	return e.registry
}

// IsWarning reports whether the error is in the warning class. Warnings may
// be logged and ignored; every other code must be handled.
func (e *Error) IsWarning() bool {
	return e != nil && e.registry != nil && e.Code == e.registry.min
}

// Is matches another *Error from the same registry with the same code,
// regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.registry == t.registry && e.Code == t.Code
}

// As unwraps err to a coded Error when possible.
func As(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// IsWarning reports whether err wraps a warning-class coded error.
func IsWarning(err error) bool {
	coded, ok := As(err)
	return ok && coded.IsWarning()
}
