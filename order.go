// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"

	"code.hybscloud.com/endian/internal/bo"
)

// Big and Little are the two byte-order tags. They are type-level
// markers only: an Int[T, Big] and an Int[T, Little] are distinct types
// with identical storage size, and neither tag occupies any memory.
type (
	Big    struct{}
	Little struct{}
)

// Order is the constraint satisfied by exactly the two byte-order tags.
// The unexported method seals the set: no other package can introduce a
// third order, which keeps the decode paths a two-way branch.
type Order interface {
	Big | Little
	byteOrder() binary.ByteOrder
}

func (Big) byteOrder() binary.ByteOrder    { return binary.BigEndian }
func (Little) byteOrder() binary.ByteOrder { return binary.LittleEndian }

// ByteOrder returns the encoding/binary byte order for the tag E.
func ByteOrder[E Order]() binary.ByteOrder {
	var e E
	return e.byteOrder()
}

// native reports whether the tag E matches the machine byte order.
func native[E Order]() bool {
	var e E
	return e.byteOrder() == bo.Native()
}
