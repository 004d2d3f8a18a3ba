// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"io"
	"runtime"
	"unsafe"
)

// Wire codec. One tagged integer moves as exactly its storage bytes, in
// the declared order; there is no header, padding, or length prefix.

func sizeOf[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

func putScalar[T Scalar](ord binary.ByteOrder, b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		ord.PutUint16(b, uint16(v))
	case 4:
		ord.PutUint32(b, uint32(v))
	default:
		ord.PutUint64(b, uint64(v))
	}
}

func getScalar[T Scalar](ord binary.ByteOrder, b []byte) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		return T(b[0])
	case 2:
		return T(ord.Uint16(b))
	case 4:
		return T(ord.Uint32(b))
	default:
		return T(ord.Uint64(b))
	}
}

// Put encodes x at the front of b and returns the number of bytes
// written. It returns io.ErrShortBuffer when b cannot hold the value.
func Put[T Scalar, E Order](b []byte, x Int[T, E]) (int, error) {
	n := sizeOf[T]()
	if len(b) < n {
		return 0, io.ErrShortBuffer
	}
	putScalar(ByteOrder[E](), b, x.Value())
	return n, nil
}

// Append appends the encoding of x to b and returns the extended slice.
func Append[T Scalar, E Order](b []byte, x Int[T, E]) []byte {
	var scratch [8]byte
	n := sizeOf[T]()
	putScalar(ByteOrder[E](), scratch[:], x.Value())
	return append(b, scratch[:n]...)
}

// Get decodes one tagged integer from the front of b and returns it
// with the number of bytes consumed. It returns io.ErrUnexpectedEOF
// when b holds fewer bytes than the value needs.
func Get[T Scalar, E Order](b []byte) (Int[T, E], int, error) {
	var x Int[T, E]
	n := sizeOf[T]()
	if len(b) < n {
		return x, 0, io.ErrUnexpectedEOF
	}
	x.Set(getScalar[T](ByteOrder[E](), b))
	return x, n, nil
}

// Read reads one tagged integer from r.
//
// Non-blocking semantics: ErrWouldBlock from r before the first byte of
// the field is returned as-is, governed by the retry policy (see
// WithRetryDelay). Once the field is partially read, Read keeps retrying
// through would-block until the field completes, so a field is never
// torn across calls. Errors other than would-block pass through
// unchanged, except that a completed field takes precedence: when the
// last bytes arrive together with an error, the field is decoded and
// returned with a nil error, as io.ReadFull does. A clean EOF at the
// field boundary is io.EOF; EOF inside a field is io.ErrUnexpectedEOF.
func Read[T Scalar, E Order](r io.Reader, opts ...Option) (Int[T, E], error) {
	var x Int[T, E]
	if r == nil {
		return x, ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	var buf [8]byte
	n := sizeOf[T]()
	got := 0
	for got < n {
		rn, err := r.Read(buf[got:n])
		// Guard against broken Readers that violate the io.Reader
		// contract by returning (0, nil) on a non-empty buffer.
		if rn == 0 && err == nil {
			return x, io.ErrNoProgress
		}
		got += rn
		if got == n {
			// Field complete; a trailing error does not invalidate
			// bytes already delivered (io.Reader contract).
			break
		}
		if err == nil {
			continue
		}
		if err == io.EOF {
			if got == 0 {
				return x, io.EOF
			}
			return x, io.ErrUnexpectedEOF
		}
		if err == ErrWouldBlock {
			if got > 0 {
				// Mid-field: finish the field rather than tear it.
				runtime.Gosched()
				continue
			}
			if o.waitOnce() {
				continue
			}
		}
		return x, err
	}
	x.Set(getScalar[T](ByteOrder[E](), buf[:n]))
	return x, nil
}

// Write writes one tagged integer to w.
//
// Non-blocking semantics mirror Read: ErrWouldBlock before the first
// byte follows the retry policy; once the field is partially written,
// Write keeps retrying until the field completes. Other errors pass
// through unchanged, except that a fully written field is reported as
// success even when the writer attaches an error to the final call;
// failing it would invite a duplicate re-send of bytes the transport
// already accepted.
func Write[T Scalar, E Order](w io.Writer, x Int[T, E], opts ...Option) error {
	if w == nil {
		return ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	var buf [8]byte
	n := sizeOf[T]()
	putScalar(ByteOrder[E](), buf[:], x.Value())
	off := 0
	for off < n {
		wn, err := w.Write(buf[off:n])
		// Guard against broken Writers returning (0, nil).
		if wn == 0 && err == nil {
			return io.ErrShortWrite
		}
		off += wn
		if off == n {
			// Field fully accepted by the transport.
			break
		}
		if err == nil {
			continue
		}
		if err == ErrWouldBlock {
			if off > 0 {
				runtime.Gosched()
				continue
			}
			if o.waitOnce() {
				continue
			}
		}
		return err
	}
	return nil
}

// SliceBytes reinterprets s as its raw storage bytes without copying.
// The bytes alias s and are already in the declared order; this is the
// bulk-overlay path for writing whole arrays to wire or disk.
func SliceBytes[T Scalar, E Order](s []Int[T, E]) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sizeOf[T]())
}

// SliceOf reinterprets b as a slice of tagged integers without copying.
// The result aliases b. It returns ErrInvalidArgument when len(b) is
// not a multiple of the scalar width or b is misaligned for it.
func SliceOf[T Scalar, E Order](b []byte) ([]Int[T, E], error) {
	n := sizeOf[T]()
	if len(b)%n != 0 {
		return nil, ErrInvalidArgument
	}
	if len(b) == 0 {
		return nil, nil
	}
	var x Int[T, E]
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(x) != 0 {
		return nil, ErrInvalidArgument
	}
	return unsafe.Slice((*Int[T, E])(unsafe.Pointer(&b[0])), len(b)/n), nil
}
