package hexcodec

import (
	"github.com/byteweave/byteweave"
	"github.com/byteweave/byteweave/errors"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"

	badDigit = 0xff
)

// Accepts both cases on decode.
var reverse = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = badDigit
	}
	for i := 0; i < 16; i++ {
		t[lowerDigits[i]] = byte(i)
		t[upperDigits[i]] = byte(i)
	}
	return t
}()

// EncodedLen returns the exact number of bytes Encode produces for n
// input bytes: always 2n.
func EncodedLen(n int) int {
	return 2 * n
}

// DecodedLen returns the exact number of bytes Decode produces for an
// n-byte input. The second return is false when n is odd.
func DecodedLen(n int) (int, bool) {
	if n%2 != 0 {
		return 0, false
	}
	return n / 2, true
}

// Encode writes the hexadecimal encoding of src into dst. If dst is
// shorter than 2*len(src) the call fails atomically with
// StatusOutputTooSmall and dst untouched.
func Encode(dst, src []byte, uppercase bool) byteweave.Result {
	need := EncodedLen(len(src))
	if len(dst) < need {
		return byteweave.Result{Status: byteweave.StatusOutputTooSmall}
	}

	digits := lowerDigits
	if uppercase {
		digits = upperDigits
	}
	for i, b := range src {
		dst[2*i+0] = digits[b>>4]
		dst[2*i+1] = digits[b&0x0f]
	}

	return byteweave.Result{Consumed: len(src), Produced: need, Status: byteweave.StatusOK}
}

// Decode writes the bytes encoded by the hexadecimal input src into dst.
// Input of odd length or containing a non-digit byte fails atomically
// with StatusInvalidInput; the whole input is validated before the first
// output byte is written.
func Decode(dst, src []byte) byteweave.Result {
	if len(src)%2 != 0 {
		return byteweave.Result{Status: byteweave.StatusInvalidInput}
	}
	for i := 0; i < len(src); i++ {
		if reverse[src[i]] == badDigit {
			return byteweave.Result{Status: byteweave.StatusInvalidInput}
		}
	}

	out := len(src) / 2
	if len(dst) < out {
		return byteweave.Result{Status: byteweave.StatusOutputTooSmall}
	}

	for i := 0; i < out; i++ {
		dst[i] = reverse[src[2*i]]<<4 | reverse[src[2*i+1]]
	}

	return byteweave.Result{Consumed: len(src), Produced: out, Status: byteweave.StatusOK}
}

// EncodeToString returns the hexadecimal encoding of src. Convenience
// wrapper; unlike Encode it allocates.
func EncodeToString(src []byte, uppercase bool) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src, uppercase)
	return string(dst)
}

// DecodeString decodes the hexadecimal string s into a freshly allocated
// buffer. Convenience wrapper; failures surface as structured errors.
func DecodeString(s string) ([]byte, error) {
	out, ok := DecodedLen(len(s))
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseDecode, "hex", -1,
			"odd input length %d", len(s))
	}
	dst := make([]byte, out)
	if res := Decode(dst, []byte(s)); !res.OK() {
		return nil, res.Err(errors.PhaseDecode, "hex")
	}
	return dst, nil
}
