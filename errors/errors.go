package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which direction of a codec the error occurred in.
type Phase string

const (
	PhaseEncode Phase = "encode" // bytes to encoded form
	PhaseDecode Phase = "decode" // encoded form to bytes
)

// Kind categorizes the error.
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"    // decode input violates the codec grammar
	KindOutputTooSmall Kind = "output_too_small" // output region insufficient for the result
)

// Sentinels for errors.Is kind matching.
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrOutputTooSmall = &Error{Kind: KindOutputTooSmall}
)

// Error is the structured error type used throughout the library.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Codec  string
	Detail string
	Offset int // byte offset into the input, -1 when unknown
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Codec != "" {
		b.WriteString(" in ")
		b.WriteString(e.Codec)
	}
	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on Kind, and on Phase when the target specifies one. This
// makes the exported sentinels usable with the standard errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return t.Kind != "" || t.Phase != ""
}

// Builder constructs structured errors fluently.
type Builder struct {
	err *Error
}

// New starts building an error with the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: &Error{Phase: phase, Kind: kind, Offset: -1}}
}

// Codec sets the codec name ("base64", "hex", "varint").
func (b *Builder) Codec(name string) *Builder {
	b.err.Codec = name
	return b
}

// Offset sets the byte offset into the input where the error was detected.
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Detail sets a formatted detail message.
func (b *Builder) Detail(format string, args ...any) *Builder {
	if len(args) == 0 {
		b.err.Detail = format
	} else {
		b.err.Detail = fmt.Sprintf(format, args...)
	}
	return b
}

// Cause records an underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return b.err
}

// InvalidInput builds a KindInvalidInput error for the given codec and
// input offset (pass -1 when the offset is unknown).
func InvalidInput(phase Phase, codec string, offset int, format string, args ...any) *Error {
	return New(phase, KindInvalidInput).Codec(codec).Offset(offset).Detail(format, args...).Build()
}

// OutputTooSmall builds a KindOutputTooSmall error describing how much
// output space was needed versus available.
func OutputTooSmall(phase Phase, codec string, need, have int) *Error {
	return New(phase, KindOutputTooSmall).Codec(codec).
		Detail("need %d output bytes, have %d", need, have).Build()
}
