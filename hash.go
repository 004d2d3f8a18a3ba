// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "hash/maphash"

// Hash returns a seed-dependent hash of x for use in seeded hash
// containers.
//
// The hash is computed from the decoded numeric value, not the raw
// storage, so two values that compare Equal hash identically even when
// their byte-order tags and physical bits differ. Plain Go maps do not
// need this: Int is comparable, and within one instantiated type the
// built-in map hashing already agrees with ==.
func Hash[T Scalar, E Order](seed maphash.Seed, x Int[T, E]) uint64 {
	return maphash.Comparable(seed, uint64(x.Value()))
}
