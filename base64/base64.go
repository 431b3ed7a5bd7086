package base64

import (
	"github.com/byteweave/byteweave"
	"github.com/byteweave/byteweave/errors"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padByte = '='
	badSym  = 0xff
)

var (
	stdReverse = reverseTable(stdAlphabet)
	urlReverse = reverseTable(urlAlphabet)
)

func reverseTable(alphabet string) [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = badSym
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}

// EncodedLen returns the exact number of bytes Encode produces for n
// input bytes.
func EncodedLen(n int, urlsafe bool) int {
	if urlsafe {
		return (n*4 + 2) / 3
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the exact number of bytes Decode produces for src.
// The second return is false when the input length (and, for the standard
// form, its padding tail) cannot belong to any valid encoding; symbol
// validation beyond that is left to Decode.
func DecodedLen(src []byte, urlsafe bool) (int, bool) {
	n := len(src)
	if n == 0 {
		return 0, true
	}
	if urlsafe {
		switch n % 4 {
		case 0:
			return n / 4 * 3, true
		case 2:
			return n/4*3 + 1, true
		case 3:
			return n/4*3 + 2, true
		default: // a single leftover symbol cannot encode a byte
			return 0, false
		}
	}
	if n%4 != 0 {
		return 0, false
	}
	pad := 0
	if src[n-1] == padByte {
		pad++
		if src[n-2] == padByte {
			pad++
			if src[n-3] == padByte {
				return 0, false
			}
		}
	}
	return n/4*3 - pad, true
}

// Encode writes the Base64 encoding of src into dst and returns the
// operation Result. If dst is shorter than EncodedLen(len(src), urlsafe)
// the call fails atomically with StatusOutputTooSmall and dst untouched.
func Encode(dst, src []byte, urlsafe bool) byteweave.Result {
	need := EncodedLen(len(src), urlsafe)
	if len(dst) < need {
		return byteweave.Result{Status: byteweave.StatusOutputTooSmall}
	}

	alpha := stdAlphabet
	if urlsafe {
		alpha = urlAlphabet
	}

	si, di := 0, 0
	for si+3 <= len(src) {
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di+0] = alpha[v>>18&0x3f]
		dst[di+1] = alpha[v>>12&0x3f]
		dst[di+2] = alpha[v>>6&0x3f]
		dst[di+3] = alpha[v&0x3f]
		si += 3
		di += 4
	}

	switch len(src) - si {
	case 1:
		v := uint32(src[si]) << 16
		dst[di+0] = alpha[v>>18&0x3f]
		dst[di+1] = alpha[v>>12&0x3f]
		di += 2
		if !urlsafe {
			dst[di+0] = padByte
			dst[di+1] = padByte
			di += 2
		}
	case 2:
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8
		dst[di+0] = alpha[v>>18&0x3f]
		dst[di+1] = alpha[v>>12&0x3f]
		dst[di+2] = alpha[v>>6&0x3f]
		di += 3
		if !urlsafe {
			dst[di] = padByte
			di++
		}
	}

	return byteweave.Result{Consumed: len(src), Produced: di, Status: byteweave.StatusOK}
}

// Decode writes the bytes encoded by the Base64 input src into dst and
// returns the operation Result. The whole input is validated before the
// first output byte is written; on StatusInvalidInput or
// StatusOutputTooSmall nothing has been written and both counters are
// zero.
func Decode(dst, src []byte, urlsafe bool) byteweave.Result {
	if urlsafe {
		return decodeURL(dst, src)
	}
	return decodeStd(dst, src)
}

func decodeStd(dst, src []byte) byteweave.Result {
	fail := byteweave.Result{Status: byteweave.StatusInvalidInput}

	n := len(src)
	if n == 0 {
		return byteweave.Result{Status: byteweave.StatusOK}
	}
	if n%4 != 0 {
		return fail
	}

	// Validation pass. Padding is legal only as the last one or two bytes
	// of the input; everything else must be an alphabet symbol.
	pad := 0
	for i := 0; i < n; i++ {
		b := src[i]
		if b == padByte {
			if i < n-2 {
				return fail
			}
			pad++
			continue
		}
		if pad > 0 { // symbol after padding
			return fail
		}
		if stdReverse[b] == badSym {
			return fail
		}
	}
	// Unused trailing bits of a short final group must be zero.
	if pad == 1 && stdReverse[src[n-2]]&0x03 != 0 {
		return fail
	}
	if pad == 2 && stdReverse[src[n-3]]&0x0f != 0 {
		return fail
	}

	out := n/4*3 - pad
	if len(dst) < out {
		return byteweave.Result{Status: byteweave.StatusOutputTooSmall}
	}

	full := n
	if pad > 0 {
		full = n - 4
	}
	si, di := 0, 0
	for si < full {
		v := uint32(stdReverse[src[si]])<<18 |
			uint32(stdReverse[src[si+1]])<<12 |
			uint32(stdReverse[src[si+2]])<<6 |
			uint32(stdReverse[src[si+3]])
		dst[di+0] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		si += 4
		di += 3
	}
	switch pad {
	case 1:
		v := uint32(stdReverse[src[si]])<<12 |
			uint32(stdReverse[src[si+1]])<<6 |
			uint32(stdReverse[src[si+2]])
		dst[di+0] = byte(v >> 10)
		dst[di+1] = byte(v >> 2)
		di += 2
	case 2:
		v := uint32(stdReverse[src[si]])<<6 | uint32(stdReverse[src[si+1]])
		dst[di] = byte(v >> 4)
		di++
	}

	return byteweave.Result{Consumed: n, Produced: di, Status: byteweave.StatusOK}
}

func decodeURL(dst, src []byte) byteweave.Result {
	fail := byteweave.Result{Status: byteweave.StatusInvalidInput}

	n := len(src)
	if n == 0 {
		return byteweave.Result{Status: byteweave.StatusOK}
	}
	rem := n % 4
	if rem == 1 {
		return fail
	}
	// The URL-safe form is strictly unpadded, so '=' fails the alphabet
	// check like any other foreign byte.
	for i := 0; i < n; i++ {
		if urlReverse[src[i]] == badSym {
			return fail
		}
	}
	switch rem {
	case 2:
		if urlReverse[src[n-1]]&0x0f != 0 {
			return fail
		}
	case 3:
		if urlReverse[src[n-1]]&0x03 != 0 {
			return fail
		}
	}

	out := n / 4 * 3
	switch rem {
	case 2:
		out++
	case 3:
		out += 2
	}
	if len(dst) < out {
		return byteweave.Result{Status: byteweave.StatusOutputTooSmall}
	}

	full := n - rem
	si, di := 0, 0
	for si < full {
		v := uint32(urlReverse[src[si]])<<18 |
			uint32(urlReverse[src[si+1]])<<12 |
			uint32(urlReverse[src[si+2]])<<6 |
			uint32(urlReverse[src[si+3]])
		dst[di+0] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		si += 4
		di += 3
	}
	switch rem {
	case 2:
		v := uint32(urlReverse[src[si]])<<6 | uint32(urlReverse[src[si+1]])
		dst[di] = byte(v >> 4)
		di++
	case 3:
		v := uint32(urlReverse[src[si]])<<12 |
			uint32(urlReverse[src[si+1]])<<6 |
			uint32(urlReverse[src[si+2]])
		dst[di+0] = byte(v >> 10)
		dst[di+1] = byte(v >> 2)
		di += 2
	}

	return byteweave.Result{Consumed: n, Produced: di, Status: byteweave.StatusOK}
}

// EncodeToString returns the Base64 encoding of src. Convenience wrapper;
// unlike Encode it allocates.
func EncodeToString(src []byte, urlsafe bool) string {
	dst := make([]byte, EncodedLen(len(src), urlsafe))
	Encode(dst, src, urlsafe)
	return string(dst)
}

// DecodeString decodes the Base64 string s into a freshly allocated
// buffer. Convenience wrapper; failures surface as structured errors.
func DecodeString(s string, urlsafe bool) ([]byte, error) {
	src := []byte(s)
	out, ok := DecodedLen(src, urlsafe)
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseDecode, "base64", -1,
			"input length %d does not fit the encoding grammar", len(src))
	}
	dst := make([]byte, out)
	if res := Decode(dst, src, urlsafe); !res.OK() {
		return nil, res.Err(errors.PhaseDecode, "base64")
	}
	return dst, nil
}
