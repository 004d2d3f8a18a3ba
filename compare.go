// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "cmp"

// Equal reports whether a and b hold the same numeric value, across any
// pair of byte orders. For two values of one instantiated type, == is
// equivalent: equal raw bits under a shared tag mean equal values.
func Equal[T Scalar, E1 Order, E2 Order](a Int[T, E1], b Int[T, E2]) bool {
	return a.Value() == b.Value()
}

// Compare orders a and b by numeric value, returning -1, 0, or +1. The
// order is the total order of the underlying kind, independent of how
// either side is stored.
func Compare[T Scalar, E1 Order, E2 Order](a Int[T, E1], b Int[T, E2]) int {
	return cmp.Compare(a.Value(), b.Value())
}
