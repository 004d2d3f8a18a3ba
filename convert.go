// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Conversion rules.
//
// Re-tagging the byte order never changes the numeric value and is
// always available through Cast. Changing the scalar kind is gated at
// compile time: the Fits* constraints below enumerate, per destination
// kind, exactly the source kinds whose every value the destination can
// represent, and the *From constructors accept nothing else. A call
// that would truncate or change sign domain does not compile. The only
// lossy paths are NarrowCast and NarrowCastInt, named so the loss is
// visible at the call site.

// Cast re-tags x with byte order To, preserving its numeric value.
//
// Casting to the opposite order reverses the stored bytes; casting
// twice returns the original storage bit for bit.
func Cast[To Order, T Scalar, From Order](x Int[T, From]) Int[T, To] {
	return New[T, To](x.Value())
}

// Lossless source sets per destination kind.
type (
	FitsInt16  interface{ ~int8 | ~int16 | ~uint8 }
	FitsInt32  interface{ ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 }
	FitsInt64  interface{ ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 }
	FitsUint16 interface{ ~uint8 | ~uint16 }
	FitsUint32 interface{ ~uint8 | ~uint16 | ~uint32 }
	FitsUint64 interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }
)

// Lossless scalar widening. Each accepts only sources every value of
// which is representable in the named destination kind.

func Int16From[F FitsInt16](v F) int16    { return int16(v) }
func Int32From[F FitsInt32](v F) int32    { return int32(v) }
func Int64From[F FitsInt64](v F) int64    { return int64(v) }
func Uint16From[F FitsUint16](v F) uint16 { return uint16(v) }
func Uint32From[F FitsUint32](v F) uint32 { return uint32(v) }
func Uint64From[F FitsUint64](v F) uint64 { return uint64(v) }

// NarrowCast converts v to kind To by plain truncating conversion, with
// no range checking. It is the explicit opt-in for conversions the
// *From constructors reject; the loss is the caller's intent.
func NarrowCast[To Scalar, From Scalar](v From) To { return To(v) }

// NarrowCastInt decodes x, truncates its numeric value to kind To, and
// wraps the result in the machine byte order. Instantiated with To
// equal to x's own kind it truncates nothing and is a pure re-tag.
func NarrowCastInt[To Scalar, From Scalar, E Order](x Int[From, E]) Int[To, Native] {
	return NativeOf(NarrowCast[To](x.Value()))
}
