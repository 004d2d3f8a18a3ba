// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Network byte order is big-endian; these helpers give protocol code
// the traditional hton/ntoh spelling for header fields.

// Network aliases the big-endian tag for wire-protocol signatures.
type Network = Big

// Hton wraps a host-order scalar as a network-order field.
func Hton[T Scalar](v T) Int[T, Network] { return BigOf(v) }

// Ntoh unwraps a network-order field to a host-order scalar.
func Ntoh[T Scalar](x Int[T, Network]) T { return x.Value() }
