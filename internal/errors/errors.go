// Package errors is the single error import for the module. Inspection
// helpers come from the standard library, while constructors and wrappers
// come from pkg/errors so every failure carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection, backed by the standard library.
var (
	// Is reports whether any error in err's chain matches target.
	Is = stderrors.Is
	// As finds the first error in err's chain assignable to target.
	As = stderrors.As
	// Unwrap returns the next error in the chain, or nil.
	Unwrap = stderrors.Unwrap
	// Join combines errors into one that unwraps to each of them.
	Join = stderrors.Join
)

// Construction and annotation, backed by pkg/errors.
var (
	// New returns an error with the given text and the caller's stack.
	New = pkgerrors.New
	// Errorf formats an error message and records the caller's stack.
	Errorf = pkgerrors.Errorf
	// Wrap adds a message and a stack to err. It returns nil for a nil err.
	Wrap = pkgerrors.Wrap
	// Wrapf is Wrap with a format string.
	Wrapf = pkgerrors.Wrapf
	// WithStack records the caller's stack on err without changing its text.
	WithStack = pkgerrors.WithStack
	// WithMessage prefixes err's text without recording a stack.
	WithMessage = pkgerrors.WithMessage
	// Cause walks Wrap layers back to the original error.
	Cause = pkgerrors.Cause
)
