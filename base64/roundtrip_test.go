package base64_test

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"

	"github.com/byteweave/byteweave/base64"
)

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "data")
		urlsafe := rapid.Bool().Draw(t, "urlsafe")

		enc := make([]byte, base64.EncodedLen(len(data), urlsafe))
		res := base64.Encode(enc, data, urlsafe)
		if !res.OK() {
			t.Fatalf("encode: status %v", res.Status)
		}
		if res.Produced != len(enc) {
			t.Fatalf("encode produced %d, want exactly %d", res.Produced, len(enc))
		}

		wantLen, ok := base64.DecodedLen(enc, urlsafe)
		if !ok || wantLen != len(data) {
			t.Fatalf("DecodedLen = (%d, %v), want (%d, true)", wantLen, ok, len(data))
		}

		dec := make([]byte, wantLen)
		res = base64.Decode(dec, enc, urlsafe)
		if !res.OK() {
			t.Fatalf("decode: status %v", res.Status)
		}
		if res.Consumed != len(enc) || res.Produced != len(data) {
			t.Fatalf("decode counters: %+v", res)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("round-trip mismatch: got %x, want %x", dec, data)
		}
	})
}

// Identical inputs and flags must produce identical outputs; the codec
// holds no state between calls.
func TestDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "data")
		urlsafe := rapid.Bool().Draw(t, "urlsafe")

		a := make([]byte, base64.EncodedLen(len(data), urlsafe))
		b := make([]byte, base64.EncodedLen(len(data), urlsafe))
		ra := base64.Encode(a, data, urlsafe)
		rb := base64.Encode(b, data, urlsafe)
		if ra != rb || !bytes.Equal(a, b) {
			t.Fatalf("encode is not deterministic: %+v vs %+v", ra, rb)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	src := bytes.Repeat([]byte("abcdefgh"), 512)
	dst := make([]byte, base64.EncodedLen(len(src), false))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base64.Encode(dst, src, false)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := bytes.Repeat([]byte("abcdefgh"), 512)
	enc := make([]byte, base64.EncodedLen(len(src), false))
	base64.Encode(enc, src, false)
	dst := make([]byte, len(src))
	b.SetBytes(int64(len(enc)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base64.Decode(dst, enc, false)
	}
}
