// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"testing"

	"code.hybscloud.com/endian"
)

func TestCastRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x0102030405060708, 0xFFFFFFFFFFFFFFFF} {
		x := endian.BigOf(v)
		y := endian.Cast[endian.Little](x)
		if got := y.Value(); got != v {
			t.Fatalf("after cast to little, Value() = %#x, want %#x", got, v)
		}
		z := endian.Cast[endian.Big](y)
		if z != x {
			t.Fatalf("cast round trip of %#x not bit-identical", v)
		}
	}
}

func TestCastToOppositeOrderReversesBytes(t *testing.T) {
	x := endian.BigOf(uint32(0x11223344))
	y := endian.Cast[endian.Little](x)
	if got, want := y.Raw(), endian.ReverseBytes(x.Raw()); got != want {
		t.Fatalf("little raw = %#x, want byte reverse %#x", got, want)
	}
	// Involution: two reversals restore the original physical form.
	if back := endian.Cast[endian.Big](y); back.Raw() != x.Raw() {
		t.Fatalf("double byteswap did not restore raw form")
	}
}

func TestCastToSameOrderIsIdentity(t *testing.T) {
	x := endian.LittleOf(int16(-2))
	if got := endian.Cast[endian.Little](x); got != x {
		t.Fatalf("same-order cast changed the value")
	}
}

func TestReverseBytesInvolution(t *testing.T) {
	if got := endian.ReverseBytes(uint8(0xAB)); got != 0xAB {
		t.Fatalf("single-byte reverse changed value: %#x", got)
	}
	if got := endian.ReverseBytes(uint16(0x0102)); got != 0x0201 {
		t.Fatalf("ReverseBytes(0x0102) = %#x", got)
	}
	if got := endian.ReverseBytes(uint32(0x01020304)); got != 0x04030201 {
		t.Fatalf("ReverseBytes(0x01020304) = %#x", got)
	}
	if got := endian.ReverseBytes(int64(0x0102030405060708)); got != 0x0807060504030201 {
		t.Fatalf("ReverseBytes 64-bit = %#x", got)
	}
	for _, v := range []int32{0, -1, 0x12345678, -0x12345678} {
		if got := endian.ReverseBytes(endian.ReverseBytes(v)); got != v {
			t.Fatalf("double reverse of %#x = %#x", v, got)
		}
	}
}

func TestWideningPreservesValue(t *testing.T) {
	// 2-byte to 4-byte, both orders of the source.
	big16 := endian.BigOf(uint16(0x1234))
	lil16 := endian.LittleOf(uint16(0x1234))

	fromBig := endian.BigOf(endian.Uint32From(big16.Value()))
	fromLil := endian.BigOf(endian.Uint32From(lil16.Value()))
	if fromBig.Value() != 0x1234 || fromLil.Value() != 0x1234 {
		t.Fatalf("widened values = %#x, %#x, want 0x1234", fromBig.Value(), fromLil.Value())
	}

	if got := endian.Int64From(int32(-5)); got != -5 {
		t.Fatalf("Int64From(-5) = %d", got)
	}
	if got := endian.Int32From(uint16(0xFFFF)); got != 0xFFFF {
		t.Fatalf("Int32From(0xFFFF) = %d", got)
	}
	if got := endian.Uint64From(uint8(200)); got != 200 {
		t.Fatalf("Uint64From(200) = %d", got)
	}
	// The rejected direction does not compile:
	//	endian.Uint16From(uint32(1))  // uint32 does not satisfy FitsUint16
	//	endian.Int32From(uint32(1))   // uint32 does not satisfy FitsInt32
}

func TestNarrowCastTruncates(t *testing.T) {
	if got := endian.NarrowCast[uint16](uint32(0x12345678)); got != 0x5678 {
		t.Fatalf("NarrowCast to uint16 = %#x, want 0x5678", got)
	}
	if got := endian.NarrowCast[int8](int32(-300)); got != -44 {
		t.Fatalf("NarrowCast to int8 = %d, want -44", got)
	}
	if got := endian.NarrowCast[uint8](int16(-1)); got != 0xFF {
		t.Fatalf("NarrowCast uint8(int16(-1)) = %#x, want 0xFF", got)
	}
}

func TestNarrowCastIntScenario(t *testing.T) {
	// 4-byte down to 2-byte must go through the explicit narrowing path
	// and truncate exactly like a raw scalar conversion.
	x := endian.BigOf(uint32(0x12345678))
	y := endian.NarrowCastInt[uint16](x)
	if got := y.Value(); got != 0x5678 {
		t.Fatalf("NarrowCastInt value = %#x, want 0x5678", got)
	}

	// Same-kind instantiation truncates nothing: it is a pure re-tag.
	z := endian.NarrowCastInt[uint32](x)
	if got := z.Value(); got != 0x12345678 {
		t.Fatalf("same-kind NarrowCastInt value = %#x", got)
	}
}

func TestHtonNtoh(t *testing.T) {
	x := endian.Hton(uint16(0x1234))
	if x != endian.BigOf(uint16(0x1234)) {
		t.Fatalf("Hton result differs from big-endian wrap")
	}
	if got := endian.Ntoh(x); got != 0x1234 {
		t.Fatalf("Ntoh = %#x", got)
	}
}
