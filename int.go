// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package endian provides fixed-width integers tagged with a byte order.
//
// Semantics and design:
//   - Type-level order: Int[T, E] pairs one scalar of kind T with the
//     byte-order tag E (Big or Little; Native aliases the machine's
//     order per build). The tag is a phantom type parameter: an
//     Int[T, E] has exactly the size and alignment of T, so arrays of
//     tagged integers overlay wire and disk buffers byte for byte.
//   - Physical storage: the stored scalar is kept in the declared
//     order. Value, Big, and Little decode on demand and never mutate;
//     Raw and RawBytes expose the stored form, which is already in the
//     declared order; do not re-swap it.
//   - Numeric behavior: arithmetic decodes to the native value, applies
//     ordinary Go integer semantics (wraparound included), and yields a
//     plain untagged scalar; transient results are not wire fields.
//     Bitwise operations between two same-order values work on the raw
//     bits directly and keep the tag, since AND/OR/XOR/NOT commute with
//     any byte permutation.
//   - Conversions: re-tagging the order is always legal and
//     value-preserving (Cast). Changing the scalar kind is compile-time
//     checked: the *From constructors accept only lossless sources, and
//     lossy conversions exist solely behind NarrowCast/NarrowCastInt.
//     Nothing in this package fails at runtime.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Scalar is the constraint for the wrappable integer kinds. Only the
// fixed-width kinds qualify; int, uint, and uintptr change size across
// ports, which would break the storage-layout contract.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int is a scalar of kind T stored in byte order E.
//
// The zero value is numeric zero; zero encodes identically in every
// order, so Int values are ready to use without construction.
type Int[T Scalar, E Order] struct {
	raw T
}

// Per-order aliases, for signatures that fix the order up front.
type (
	BigInt[T Scalar]    = Int[T, Big]
	LittleInt[T Scalar] = Int[T, Little]
	NativeInt[T Scalar] = Int[T, Native]
)

// New wraps v, encoding it in byte order E.
func New[T Scalar, E Order](v T) Int[T, E] {
	var x Int[T, E]
	x.Set(v)
	return x
}

// BigOf wraps v in big-endian storage.
func BigOf[T Scalar](v T) Int[T, Big] { return New[T, Big](v) }

// LittleOf wraps v in little-endian storage.
func LittleOf[T Scalar](v T) Int[T, Little] { return New[T, Little](v) }

// NativeOf wraps v in the machine byte order.
func NativeOf[T Scalar](v T) Int[T, Native] { return New[T, Native](v) }

// Set stores the numeric value v, re-encoding into the declared order.
func (x *Int[T, E]) Set(v T) {
	if native[E]() {
		x.raw = v
	} else {
		x.raw = ReverseBytes(v)
	}
}

// Value returns the numeric value, decoded to the machine byte order.
func (x Int[T, E]) Value() T {
	if native[E]() {
		return x.raw
	}
	return ReverseBytes(x.raw)
}

// Big returns the scalar whose bits are the big-endian encoding of x.
func (x Int[T, E]) Big() T {
	if ByteOrder[E]() == binary.BigEndian {
		return x.raw
	}
	return ReverseBytes(x.raw)
}

// Little returns the scalar whose bits are the little-endian encoding of x.
func (x Int[T, E]) Little() T {
	if ByteOrder[E]() == binary.LittleEndian {
		return x.raw
	}
	return ReverseBytes(x.raw)
}

// Raw returns the stored scalar in the declared order, undecoded.
func (x Int[T, E]) Raw() T { return x.raw }

// SetRaw stores v as-is. v must already be encoded in the declared order.
func (x *Int[T, E]) SetRaw(v T) { x.raw = v }

// Ptr returns a pointer to the stored scalar of a native-order value.
//
// It is deliberately not defined for foreign-order values: ordinary
// arithmetic through such a pointer would read and write the wrong
// bytes, so on a little-endian build Ptr of an Int[T, Big] does not
// compile, and vice versa. Use RawBytes for order-independent access.
func Ptr[T Scalar](x *Int[T, Native]) *T { return &x.raw }

// RawBytes exposes the stored bytes of x, aliasing its memory. The
// bytes are already in the declared order; do not re-swap them.
// Writes through the slice change x.
func RawBytes[T Scalar, E Order](x *Int[T, E]) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&x.raw)), unsafe.Sizeof(x.raw))
}

// IsZero reports whether x is numerically zero. Zero has the same
// encoding in every order, so this tests the raw bits directly.
func (x Int[T, E]) IsZero() bool { return x.raw == 0 }

func (x Int[T, E]) String() string { return fmt.Sprintf("%d", x.Value()) }

// Arithmetic. Results are plain untagged scalars in the machine order,
// with ordinary Go wraparound; none of these mutate x.

func (x Int[T, E]) Add(v T) T { return x.Value() + v }
func (x Int[T, E]) Sub(v T) T { return x.Value() - v }
func (x Int[T, E]) Mul(v T) T { return x.Value() * v }
func (x Int[T, E]) Div(v T) T { return x.Value() / v }
func (x Int[T, E]) Mod(v T) T { return x.Value() % v }

func (x Int[T, E]) Shl(n uint) T { return x.Value() << n }
func (x Int[T, E]) Shr(n uint) T { return x.Value() >> n }

// Neg returns the negated numeric value. Negation is not
// order-preserving, so the result is untagged like the rest of the
// arithmetic set.
func (x Int[T, E]) Neg() T { return -x.Value() }

// Bitwise operations between two values of the same order act on the
// raw storage directly and keep the tag; no decode is needed because
// both sides share the declared order.

func (x Int[T, E]) And(y Int[T, E]) Int[T, E] { x.raw &= y.raw; return x }
func (x Int[T, E]) Or(y Int[T, E]) Int[T, E]  { x.raw |= y.raw; return x }
func (x Int[T, E]) Xor(y Int[T, E]) Int[T, E] { x.raw ^= y.raw; return x }

// Not complements every stored bit. Complement commutes with byte
// permutation, so the result keeps the declared order.
func (x Int[T, E]) Not() Int[T, E] { x.raw = ^x.raw; return x }

// Compound assignment. The arithmetic forms decode, operate, and
// re-encode; the bitwise forms update the raw storage in place.

func (x *Int[T, E]) AddAssign(v T) { x.Set(x.Value() + v) }
func (x *Int[T, E]) SubAssign(v T) { x.Set(x.Value() - v) }
func (x *Int[T, E]) MulAssign(v T) { x.Set(x.Value() * v) }
func (x *Int[T, E]) DivAssign(v T) { x.Set(x.Value() / v) }
func (x *Int[T, E]) ModAssign(v T) { x.Set(x.Value() % v) }

func (x *Int[T, E]) ShlAssign(n uint) { x.Set(x.Value() << n) }
func (x *Int[T, E]) ShrAssign(n uint) { x.Set(x.Value() >> n) }

func (x *Int[T, E]) AndAssign(y Int[T, E]) { x.raw &= y.raw }
func (x *Int[T, E]) OrAssign(y Int[T, E])  { x.raw |= y.raw }
func (x *Int[T, E]) XorAssign(y Int[T, E]) { x.raw ^= y.raw }

// Inc adds one to x in place and returns the updated numeric value.
func (x *Int[T, E]) Inc() T {
	v := x.Value() + 1
	x.Set(v)
	return v
}

// Dec subtracts one from x in place and returns the updated numeric value.
func (x *Int[T, E]) Dec() T {
	v := x.Value() - 1
	x.Set(v)
	return v
}
