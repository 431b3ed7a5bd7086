package varint

import (
	"encoding/binary"

	"github.com/byteweave/byteweave"
)

// MaxLen is the maximum encoded length of a single uint64.
const MaxLen = 10

// Len returns the number of bytes Put uses to encode v.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Put writes the varint encoding of v to the start of dst and returns
// the number of bytes written. It returns false when dst is too short;
// bytes up to len(dst) may have been clobbered in that case.
func Put(dst []byte, v uint64) (int, bool) {
	i := 0
	for v >= 0x80 {
		if i >= len(dst) {
			return 0, false
		}
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	if i >= len(dst) {
		return 0, false
	}
	dst[i] = byte(v)
	return i + 1, true
}

// Read decodes a single varint group from the start of src. It returns
// the value, the number of bytes consumed, and a status:
// StatusInvalidInput when src ends mid-group or the group's bits would
// overflow 64 bits.
func Read(src []byte) (uint64, int, byteweave.Status) {
	var v uint64
	var shift uint
	for i := 0; i < len(src); i++ {
		b := src[i]
		if i == MaxLen-1 && b > 1 {
			// The tenth byte may carry only the single remaining value
			// bit; anything above 1 means overflow or an 11th byte.
			return 0, 0, byteweave.StatusInvalidInput
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, byteweave.StatusOK
		}
		shift += 7
	}
	// Continuation bit set on the final available byte.
	return 0, 0, byteweave.StatusInvalidInput
}

// EncodedLen returns the exact number of bytes Encode produces for src,
// a packed sequence of 8-byte little-endian integers. The second return
// is false when len(src) is not a multiple of 8.
func EncodedLen(src []byte) (int, bool) {
	if len(src)%8 != 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(src); i += 8 {
		n += Len(binary.LittleEndian.Uint64(src[i:]))
	}
	return n, true
}

// Encode interprets src as a contiguous sequence of 8-byte little-endian
// unsigned integers and writes their concatenated varint encodings into
// dst. A src length that is not a multiple of 8 fails atomically with
// StatusInvalidInput.
//
// When dst cannot hold the next integer's encoding the call fails with
// StatusOutputTooSmall, retaining everything written for prior integers:
// Consumed counts the whole integers encoded and Produced their exact
// encoded length, so the caller may resume from src[Consumed:] into a
// fresh region.
func Encode(dst, src []byte) byteweave.Result {
	if len(src)%8 != 0 {
		return byteweave.Result{Status: byteweave.StatusInvalidInput}
	}

	var consumed, produced int
	for consumed < len(src) {
		v := binary.LittleEndian.Uint64(src[consumed:])
		n, ok := Put(dst[produced:], v)
		if !ok {
			return byteweave.Result{Consumed: consumed, Produced: produced,
				Status: byteweave.StatusOutputTooSmall}
		}
		consumed += 8
		produced += n
	}

	return byteweave.Result{Consumed: consumed, Produced: produced, Status: byteweave.StatusOK}
}

// Decode reads consecutive varint groups from src and writes each decoded
// integer as 8 little-endian bytes into dst.
//
// A malformed group (longer than 10 bytes, overflowing 64 bits, or cut
// off by the end of src) fails with StatusInvalidInput; dst running out
// of room fails with StatusOutputTooSmall. Either way the integers fully
// decoded before the failure are retained and reflected in the counters.
func Decode(dst, src []byte) byteweave.Result {
	var consumed, produced int
	for consumed < len(src) {
		v, n, status := Read(src[consumed:])
		if status != byteweave.StatusOK {
			return byteweave.Result{Consumed: consumed, Produced: produced, Status: status}
		}
		if len(dst)-produced < 8 {
			return byteweave.Result{Consumed: consumed, Produced: produced,
				Status: byteweave.StatusOutputTooSmall}
		}
		binary.LittleEndian.PutUint64(dst[produced:], v)
		consumed += n
		produced += 8
	}

	return byteweave.Result{Consumed: consumed, Produced: produced, Status: byteweave.StatusOK}
}
