// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"math/bits"
	"unsafe"
)

// ReverseBytes returns v with its byte order reversed. Single-byte
// kinds are returned unchanged; applying it twice is the identity.
//
// The width switch is resolved per instantiation, so each concrete kind
// compiles down to the matching math/bits primitive.
func ReverseBytes[T Scalar](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}
