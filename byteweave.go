package byteweave

import (
	"github.com/byteweave/byteweave/errors"
)

// Status is the outcome code shared by every codec operation.
type Status uint8

const (
	// StatusOK means the entire input was consumed and the entire
	// transformed output was produced within the given output region.
	StatusOK Status = iota

	// StatusInvalidInput means the decode input violates the codec's
	// grammar: an out-of-alphabet symbol, malformed padding, an odd hex
	// length, a non-multiple-of-8 varint encode input, or a malformed or
	// overflowing varint group.
	StatusInvalidInput

	// StatusOutputTooSmall means the output region cannot hold the result.
	// Recoverable: retry with a larger region (text codecs start over, the
	// varint codec resumes after the consumed prefix).
	StatusOutputTooSmall
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusOutputTooSmall:
		return "output_too_small"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the defined status codes.
func (s Status) IsValid() bool {
	return s <= StatusOutputTooSmall
}

// Result is the uniform outcome of every encode and decode operation.
//
// Consumed and Produced bound what happened even on failure: Consumed
// never exceeds the input length and Produced never exceeds the output
// length. Unless a codec documents a usable prefix (the varint codec
// does), a non-OK Result means the operation failed as a whole and the
// counters describe only what was safely completed.
type Result struct {
	Consumed int
	Produced int
	Status   Status
}

// OK reports full success.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Err converts a failed Result into a structured error for the given
// phase and codec name. It returns nil when the Result is OK.
func (r Result) Err(phase errors.Phase, codec string) error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusInvalidInput:
		return errors.New(phase, errors.KindInvalidInput).
			Codec(codec).
			Detail("consumed %d, produced %d", r.Consumed, r.Produced).
			Build()
	case StatusOutputTooSmall:
		return errors.New(phase, errors.KindOutputTooSmall).
			Codec(codec).
			Detail("consumed %d, produced %d", r.Consumed, r.Produced).
			Build()
	default:
		return errors.New(phase, errors.KindInvalidInput).
			Codec(codec).
			Detail("unknown status %d", uint8(r.Status)).
			Build()
	}
}
