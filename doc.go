// Package byteweave provides allocation-free binary codecs between raw
// bytes and alternate encodings: Base64 text, hexadecimal text, and
// varint compact integer encoding.
//
// Callers supply pre-allocated input and output regions; the codecs never
// allocate and never panic on malformed input. Every operation reports its
// outcome through a Result value describing exactly how much input was
// read, how much output was written, and why the operation stopped.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	byteweave/           Root package with the shared Result and Status types
//	├── base64/          Base64 codec (standard and URL-safe alphabets)
//	├── hexcodec/        Hexadecimal codec (case-selectable encode)
//	├── varint/          LEB128-style varint codec for packed uint64s
//	├── errors/          Structured error types for callers wanting error values
//	└── cmd/byteweave/   Command-line encoder/decoder and interactive inspector
//
// No codec package depends on another; all three depend only on this root
// package.
//
// # Quick Start
//
// Encode bytes as Base64 into a caller-owned buffer:
//
//	src := []byte("Man")
//	dst := make([]byte, base64.EncodedLen(len(src), false))
//	res := base64.Encode(dst, src, false)
//	if res.OK() {
//	    fmt.Println(string(dst[:res.Produced])) // "TWFu"
//	}
//
// # Buffer Contract
//
// Input regions are read-only for the duration of the call and never
// retained. Output regions are written within bounds only: Consumed never
// exceeds len(input) and Produced never exceeds len(output), success or
// failure.
//
// The text codecs (base64, hexcodec) are atomic: on any failure they
// report Consumed == 0 and Produced == 0 and the output region is left
// untouched. The varint codec is resumable at integer boundaries: on
// failure, integers fully processed before the failure point are retained
// and reflected in the counters, so a caller can grow the output region
// and continue from the consumed prefix.
//
// # Error Handling
//
// Failures are values, not panics. Status is a closed set:
//
//	StatusOK             full success
//	StatusInvalidInput   decode input violates the codec grammar
//	StatusOutputTooSmall output region cannot hold the result
//
// Result.Err converts a failed Result into a structured error from the
// errors package for callers that prefer error plumbing.
//
// # Concurrency
//
// All operations are synchronous and pure with respect to process state.
// Any number of calls may run concurrently from separate goroutines as
// long as no two calls share an output region. Input and output regions of
// a single call must not overlap; in-place transformation is not
// supported.
package byteweave
