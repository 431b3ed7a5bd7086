// Package base64 implements allocation-free Base64 encoding and decoding
// between caller-owned byte regions.
//
// Two alphabets are supported, selected per call:
//
//   - standard (RFC 4648 section 4): "+", "/", mandatory "=" padding
//   - URL-safe (RFC 4648 section 5): "-", "_", strictly unpadded
//
// # Sizing
//
// Encode produces exactly EncodedLen(len(src), urlsafe) bytes:
// 4*ceil(n/3) for the padded standard form, ceil(4n/3) for the unpadded
// URL-safe form. DecodedLen reports the exact decoded size of an input.
//
// # Atomicity
//
// Both directions are atomic. An undersized output region yields
// StatusOutputTooSmall with Consumed == 0 and Produced == 0 and the output
// untouched; a caller cannot safely resume mid-group, so no partial text
// is ever observable. Decoding validates the entire input before writing
// the first byte and rejects it as a whole on the first out-of-alphabet
// symbol or structural violation.
//
// # Strictness
//
// Decoding is strict: padding may appear only as the last one or two bytes
// of standard input, URL-safe input must not contain padding at all, and
// the unused trailing bits of a final partial group must be zero.
package base64
