package swtimer

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrPreconditionViolation is the root of all violation errors reported to
// a ViolationHandler. Test with errors.Is.
var ErrPreconditionViolation = errors.New("software timer: precondition violation")

// ViolationHandler receives precondition violations (nil clock function,
// nil timer, package-level use before Init). The err always wraps
// ErrPreconditionViolation.
//
// If the handler returns (instead of panicking), the violating operation
// becomes a no-op: queries return zero values and Set leaves the timer
// untouched.
type ViolationHandler func(err error)

// PanicHandler panics with the violation error. This is the default,
// matching an abort-on-assert debug build.
func PanicHandler(err error) {
	panic(err)
}

// NoopHandler ignores the violation. Equivalent to a build with assertions
// compiled out: the violating operation silently does nothing.
func NoopHandler(err error) {}

// NewSlogHandler returns a handler that logs the violation at Error level
// and continues. If logger is nil, slog.Default() is used.
func NewSlogHandler(logger *slog.Logger) ViolationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error) {
		logger.Error("software timer precondition violation", "err", err)
	}
}

// violationHandler is the process-wide handler used by the default clock
// binding and by any Clock constructed without WithViolationHandler.
var violationHandler ViolationHandler = PanicHandler

// SetViolationHandler replaces the process-wide violation handler.
// Passing nil restores PanicHandler. Like Init, this is a setup-time
// operation and is not safe to call concurrently with timer queries.
func SetViolationHandler(h ViolationHandler) {
	if h == nil {
		h = PanicHandler
	}
	violationHandler = h
}

// violationErr builds the error reported for a violated operation.
func violationErr(op, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrPreconditionViolation, op, detail)
}
