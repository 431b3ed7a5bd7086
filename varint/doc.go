// Package varint implements an allocation-free LEB128-style codec for
// unsigned 64-bit integers between caller-owned byte regions.
//
// Each integer is encoded as 1 to 10 bytes: the low seven bits of every
// byte carry value bits, least-significant group first, and the high bit
// marks continuation. Ten bytes occur only for values using the top bit
// of the 64-bit range.
//
// The packed forms, Encode and Decode, transform between a contiguous
// sequence of fixed-width 8-byte little-endian integers and the
// concatenation of their varint encodings. Unlike the text codecs they
// are resumable: every integer's encoding is self-contained, so on
// failure the Result counters reflect the whole-integer prefix already
// processed and a caller may retry from there with more output space.
//
// The single-value primitives Len, Put, and Read operate on one integer
// at a time and are what the packed forms are built from.
package varint
