//go:build s390x || ppc64 || mips || mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Native is the machine byte order on big-endian Go ports.
type Native = Big
