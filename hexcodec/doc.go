// Package hexcodec implements allocation-free hexadecimal encoding and
// decoding between caller-owned byte regions.
//
// Encode maps each input byte to two digit characters, lowercase by
// default or uppercase on request. Decode is case-insensitive regardless
// of the case used to encode. Both directions are atomic: any failure
// reports zero consumed and zero produced with the output region
// untouched.
package hexcodec
