// Package errors provides structured error handling for the Vista framework.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a view construction/configuration error.
	KindConfig
	// KindLifecycle indicates an invalid lifecycle transition.
	KindLifecycle
	// KindBinding indicates an option binding or keypath error.
	KindBinding
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindBinding:
		return "binding"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VistaError represents a structured error in the Vista framework.
type VistaError struct {
	// Op is the operation that failed (e.g., "view.Render").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// View is the name of the view involved, if applicable.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VistaError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VistaError) Unwrap() error {
	return e.Err
}

// ConfigError reports a required option that was absent at construction
// with no default to fall back on. Construction aborts when it is returned.
type ConfigError struct {
	// View is the view definition name.
	View string
	// Option is the name of the missing option.
	Option string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("view %q: required option %q has no value and no default", e.View, e.Option)
}

// LifecycleError reports a transition requested out of order, or any
// transition requested after a view was destroyed. The operation is a
// no-op beyond returning the error.
type LifecycleError struct {
	// View is the view name.
	View string
	// Op is the transition that was requested (e.g., "render", "appear").
	Op string
	// Phase is a human-readable description of the phase the view was in.
	Phase string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("view %q: cannot %s while %s", e.View, e.Op, e.Phase)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "binding.ReleaseAll").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Vista framework.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *VistaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
