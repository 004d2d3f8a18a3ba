//go:build !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Native is the machine byte order on little-endian Go ports. It is an
// ordinary alias: Int[T, Native] and Int[T, Little] are the same type
// here, and code written against Native ports cleanly to big-endian
// machines, where the alias resolves the other way.
type Native = Little
