// Package errors provides error annotation on top of the standard library.
//
// Errors wrapped with [Wrap] carry [slog.Attr] annotations and the call site
// where the wrapping happened. [SlogError] turns any error into a single
// structured attribute suitable for logger.LogAttrs.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// maxStackFrames bounds the stack captured at wrap time.
const maxStackFrames = 16

// annotatedError is an error with slog annotations and a captured call site.
type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	stack []string
}

// NewSentinel creates a sentinel error meant to be declared at package level
// and matched with [Is]. It carries no annotations and no stack.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message and optional [slog.Attr]. The call site of
// Wrap is recorded so that [SlogError] can point at the origin of the failure.
//
// A nil err is tolerated so that callers don't have to guard against it. The
// resulting error then only carries the message.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		err:   err,
		attrs: attrs,
		stack: captureStack(),
	}
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	if inner := e.err.Error(); inner != "" {
		return e.msg + ": " + inner
	}
	return e.msg
}

// Unwrap exposes the wrapped error for [Is] and [As].
func (e *annotatedError) Unwrap() error {
	return e.err
}

// DecoratePanic converts a recovered panic value into an error that carries
// the panicking goroutine's stack. Returns nil when recovered is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:   fmt.Sprintf("panic: %v", recovered),
		err:   nil,
		attrs: nil,
		stack: captureStack(),
	}
}

// SlogError flattens err into a single grouped [slog.Attr] with the message,
// all annotations gathered from the wrap chain, and the deepest recorded
// call site.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	if annotations := collectAnnotations(err); len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}

	if stack := deepestStack(err); len(stack) > 0 {
		attrs = append(attrs, slog.String("source", strings.Join(stack, " <- ")))
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// collectAnnotations walks the wrap chain and gathers annotations outside-in.
func collectAnnotations(err error) []slog.Attr {
	var attrs []slog.Attr
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			break
		}
		attrs = append(attrs, annotated.attrs...)
		err = annotated.Unwrap()
	}
	return attrs
}

// deepestStack returns the stack of the innermost annotated error, which is
// closest to the original failure.
func deepestStack(err error) []string {
	var stack []string
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			break
		}
		if len(annotated.stack) > 0 {
			stack = annotated.stack
		}
		err = annotated.Unwrap()
	}
	return stack
}

// captureStack records file:line pairs of the current stack, skipping frames
// from this package and the runtime so that logs point at caller code.
func captureStack() []string {
	pcs := make([]uintptr, maxStackFrames)
	// Skip runtime.Callers and captureStack itself. The frame filter below
	// removes the exported entry points of this package.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	var stack []string
	for {
		frame, more := frames.Next()
		if frame.File != "" && !isInternalFrame(frame) {
			stack = append(stack, fmt.Sprintf("%s:%d", trimPath(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return stack
}

// isInternalFrame reports whether the frame belongs to this package or the runtime.
func isInternalFrame(frame runtime.Frame) bool {
	return strings.HasSuffix(frame.File, "annotatederror.go") ||
		strings.HasPrefix(frame.Function, "runtime.") ||
		strings.HasPrefix(frame.Function, "testing.")
}

// trimPath shortens an absolute file path to its last two elements.
func trimPath(path string) string {
	parts := strings.Split(path, "/")
	const keep = 2
	if len(parts) <= keep {
		return path
	}
	return strings.Join(parts[len(parts)-keep:], "/")
}

// Re-exports so that callers don't need to import both error packages.

// New returns an error with the given message. See [errors.New].
func New(msg string) error { return errors.New(msg) }

// Is reports whether any error in err's chain matches target. See [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target. See [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap returns the result of calling Unwrap on err. See [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join wraps the given errors into one. See [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
