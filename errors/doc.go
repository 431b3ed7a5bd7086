// Package errors provides structured error types for the byteweave library.
//
// The codecs themselves report outcomes through byteweave.Result values and
// never return errors; this package exists for the layers above them (the
// allocating convenience helpers and the CLI) that prefer error plumbing.
//
// Errors are categorized by Phase (encode or decode) and Kind (which
// contract was violated). The Error type carries the codec name, an
// optional byte offset into the input, and a free-form detail.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidInput).
//		Codec("base64").
//		Offset(17).
//		Detail("byte 0x%02x not in alphabet", b).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseDecode, "hex", 3, "odd input length")
//	err := errors.OutputTooSmall(errors.PhaseEncode, "base64", 8, 4)
//
// All errors implement the standard error interface. Kind matching works
// with the standard errors.Is via the exported sentinels:
//
//	if errors.Is(err, bwerrors.ErrInvalidInput) { ... }
package errors
