// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides native byte order selection.
//
// Implementation is architecture-specific via build tags where commonly
// known, and falls back to a portable runtime detection elsewhere. The
// build-tag lists must stay in sync with the Native order alias in the
// root package, which resolves the same question at the type level.
package bo
