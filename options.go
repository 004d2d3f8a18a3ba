// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"runtime"
	"time"
)

// Options configures how Read and Write treat a non-blocking transport.
type Options struct {
	// RetryDelay controls handling of iox.ErrWouldBlock from the
	// underlying reader or writer:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	RetryDelay: -1, // default: nonblock
}

type Option func(*Options)

// WithRetryDelay sets the retry/wait policy used when the underlying
// transport returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on iox.ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return iox.ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

// waitOnce reports whether the caller should retry.
func (o *Options) waitOnce() bool {
	if o.RetryDelay < 0 {
		return false
	}
	if o.RetryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(o.RetryDelay)
	return true
}
