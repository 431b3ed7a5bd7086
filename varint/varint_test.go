package varint_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/byteweave/byteweave"
	"github.com/byteweave/byteweave/varint"
)

func packLE(vals ...uint64) []byte {
	out := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[8*i:], v)
	}
	return out
}

func TestPutVectors(t *testing.T) {
	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{1<<63 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{1 << 63, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
		{^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		if got := varint.Len(tt.value); got != len(tt.encoded) {
			t.Errorf("Len(%d) = %d, want %d", tt.value, got, len(tt.encoded))
		}

		dst := make([]byte, varint.MaxLen)
		n, ok := varint.Put(dst, tt.value)
		if !ok {
			t.Fatalf("Put(%d): buffer too short", tt.value)
		}
		if !bytes.Equal(dst[:n], tt.encoded) {
			t.Errorf("Put(%d) = %x, want %x", tt.value, dst[:n], tt.encoded)
		}

		// Cross-check against the standard library's uvarint format.
		std := make([]byte, binary.MaxVarintLen64)
		sn := binary.PutUvarint(std, tt.value)
		if !bytes.Equal(dst[:n], std[:sn]) {
			t.Errorf("Put(%d) = %x, stdlib writes %x", tt.value, dst[:n], std[:sn])
		}

		got, rn, status := varint.Read(tt.encoded)
		if status != byteweave.StatusOK {
			t.Fatalf("Read(%x): status %v", tt.encoded, status)
		}
		if got != tt.value || rn != len(tt.encoded) {
			t.Errorf("Read(%x) = (%d, %d), want (%d, %d)",
				tt.encoded, got, rn, tt.value, len(tt.encoded))
		}
	}
}

func TestPutTooShort(t *testing.T) {
	dst := make([]byte, 1)
	if _, ok := varint.Put(dst, 300); ok {
		t.Error("Put(300) into 1 byte should fail")
	}
	if _, ok := varint.Put(nil, 0); ok {
		t.Error("Put(0) into empty buffer should fail")
	}
}

func TestReadRejects(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"mid-group end", []byte{0x80}},
		{"mid-group end long", []byte{0xff, 0xff, 0xff}},
		{"eleventh byte needed", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
		{"tenth byte overflows", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, status := varint.Read(tt.in)
			if status != byteweave.StatusInvalidInput {
				t.Fatalf("Read(%x): status %v, want invalid_input", tt.in, status)
			}
			if n != 0 {
				t.Errorf("Read(%x): n = %d, want 0", tt.in, n)
			}
		})
	}
}

func TestEncodeDecodePacked(t *testing.T) {
	vals := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1, ^uint64(0)}
	src := packLE(vals...)

	need, ok := varint.EncodedLen(src)
	if !ok {
		t.Fatal("EncodedLen rejected a multiple-of-8 input")
	}

	enc := make([]byte, need)
	res := varint.Encode(enc, src)
	if !res.OK() {
		t.Fatalf("Encode: status %v", res.Status)
	}
	if res.Consumed != len(src) || res.Produced != need {
		t.Fatalf("Encode counters: %+v, want consumed=%d produced=%d", res, len(src), need)
	}

	dec := make([]byte, len(src))
	res = varint.Decode(dec, enc)
	if !res.OK() {
		t.Fatalf("Decode: status %v", res.Status)
	}
	if res.Consumed != len(enc) || res.Produced != len(src) {
		t.Fatalf("Decode counters: %+v", res)
	}
	if diff := cmp.Diff(src, dec); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRejectsRaggedInput(t *testing.T) {
	res := varint.Encode(make([]byte, 32), make([]byte, 7))
	if res.Status != byteweave.StatusInvalidInput {
		t.Fatalf("status = %v, want invalid_input", res.Status)
	}
	if res.Consumed != 0 || res.Produced != 0 {
		t.Errorf("consumed=%d produced=%d, want 0/0", res.Consumed, res.Produced)
	}

	if _, ok := varint.EncodedLen(make([]byte, 9)); ok {
		t.Error("EncodedLen should reject a 9-byte input")
	}
}

// Encoding [v0, v1, v2] into a region sized for v0 and v1 only must
// retain the two whole encodings and report the resumable prefix.
func TestEncodeResumable(t *testing.T) {
	v0, v1, v2 := uint64(300), uint64(7), uint64(1<<40)
	src := packLE(v0, v1, v2)

	prefix := varint.Len(v0) + varint.Len(v1)
	dst := make([]byte, prefix)

	res := varint.Encode(dst, src)
	if res.Status != byteweave.StatusOutputTooSmall {
		t.Fatalf("status = %v, want output_too_small", res.Status)
	}
	if res.Consumed != 16 {
		t.Errorf("consumed = %d, want 16 (two whole integers)", res.Consumed)
	}
	if res.Produced != prefix {
		t.Errorf("produced = %d, want %d", res.Produced, prefix)
	}

	// The retained prefix is decodable on its own.
	dec := make([]byte, 16)
	dres := varint.Decode(dec, dst[:res.Produced])
	if !dres.OK() {
		t.Fatalf("decode of retained prefix: status %v", dres.Status)
	}
	if !bytes.Equal(dec, packLE(v0, v1)) {
		t.Errorf("retained prefix decodes to %x, want %x", dec, packLE(v0, v1))
	}

	// Resuming from the consumed offset completes the sequence.
	rest := make([]byte, varint.Len(v2))
	rres := varint.Encode(rest, src[res.Consumed:])
	if !rres.OK() {
		t.Fatalf("resumed encode: status %v", rres.Status)
	}
}

func TestDecodePrefixRetention(t *testing.T) {
	t.Run("invalid tail group", func(t *testing.T) {
		enc := []byte{0x01, 0xac, 0x02, 0x80} // 1, 300, then a cut-off group
		dst := make([]byte, 32)

		res := varint.Decode(dst, enc)
		if res.Status != byteweave.StatusInvalidInput {
			t.Fatalf("status = %v, want invalid_input", res.Status)
		}
		if res.Consumed != 3 || res.Produced != 16 {
			t.Errorf("consumed=%d produced=%d, want 3/16", res.Consumed, res.Produced)
		}
		if !bytes.Equal(dst[:16], packLE(1, 300)) {
			t.Errorf("retained prefix = %x, want %x", dst[:16], packLE(1, 300))
		}
	})

	t.Run("output too small", func(t *testing.T) {
		enc := []byte{0x01, 0xac, 0x02} // 1, 300
		dst := make([]byte, 8)          // room for one integer

		res := varint.Decode(dst, enc)
		if res.Status != byteweave.StatusOutputTooSmall {
			t.Fatalf("status = %v, want output_too_small", res.Status)
		}
		if res.Consumed != 1 || res.Produced != 8 {
			t.Errorf("consumed=%d produced=%d, want 1/8", res.Consumed, res.Produced)
		}

		// Resume after the consumed prefix.
		res = varint.Decode(dst, enc[res.Consumed:])
		if !res.OK() {
			t.Fatalf("resumed decode: status %v", res.Status)
		}
		if got := binary.LittleEndian.Uint64(dst); got != 300 {
			t.Errorf("resumed decode = %d, want 300", got)
		}
	})
}

func TestDecodeEmpty(t *testing.T) {
	res := varint.Decode(nil, nil)
	if !res.OK() || res.Consumed != 0 || res.Produced != 0 {
		t.Fatalf("Decode(nil, nil) = %+v, want ok 0/0", res)
	}
}
