// Package errors provides structured error handling for the motion library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration problem (motion.yaml).
	KindConfig
	// KindCallback indicates a failure inside a lifecycle callback.
	KindCallback
	// KindRender indicates a rendering error in a host surface.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion library.
type MotionError struct {
	// Op is the operation that failed (e.g., "config.RegisterPresets").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Preset is the effect preset name, if applicable.
	Preset string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Preset != "" {
		return fmt.Sprintf("%s [%s] preset=%s: %v", e.Op, e.Kind, e.Preset, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "term.Panel.frame").
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

// CallbackError represents a failure inside a user-supplied lifecycle
// callback. Callbacks are isolated so a throwing callback cannot corrupt
// the controller state machine.
type CallbackError struct {
	// Hook is the callback name (OnEnter, OnEntered, OnExit, OnExited).
	Hook string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CallbackError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s callback: %v", e.Hook, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s callback: %v", e.Hook, e.Err)
	}
	return fmt.Sprintf("unknown error in %s callback", e.Hook)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the motion library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleCallbackError is called when a lifecycle callback fails.
	HandleCallbackError(err *CallbackError)
}
