package base64_test

import (
	"fmt"

	"github.com/byteweave/byteweave/base64"
)

func ExampleEncode() {
	src := []byte("Man")
	dst := make([]byte, base64.EncodedLen(len(src), false))

	res := base64.Encode(dst, src, false)
	fmt.Println(res.Status, string(dst[:res.Produced]))
	// Output: ok TWFu
}

func ExampleEncode_urlsafe() {
	src := []byte{0xfb, 0xff}
	dst := make([]byte, base64.EncodedLen(len(src), true))

	res := base64.Encode(dst, src, true)
	fmt.Println(res.Status, string(dst[:res.Produced]))
	// Output: ok -_8
}

func ExampleDecode() {
	src := []byte("TWFu")
	dst := make([]byte, 3)

	res := base64.Decode(dst, src, false)
	fmt.Println(res.Status, string(dst[:res.Produced]))
	// Output: ok Man
}

func ExampleDecodeString() {
	got, err := base64.DecodeString("ab=c", false)
	fmt.Println(got, err)
	// Output: [] [decode] invalid_input in base64: consumed 0, produced 0
}
