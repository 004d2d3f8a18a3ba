// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports a nil reader/writer or a byte slice
	// whose length or alignment cannot carry the requested kind.
	ErrInvalidArgument = errors.New("endian: invalid argument")
)

// Semantic control-flow errors surfaced by Read and Write, provided as
// package-level aliases so callers can reference them without importing
// iox directly.
var (
	// ErrWouldBlock means “no further progress without waiting”.
	//
	// It is an expected, non-failure signal for non-blocking I/O.
	// Caller action: stop the current attempt and retry later, or
	// configure WithRetryDelay to emulate cooperative blocking.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means “this completion is usable and more completions
	// will follow”. It is not io.EOF and not “try later”.
	ErrMore = iox.ErrMore
)
