// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"testing"
	"time"

	"code.hybscloud.com/endian"
)

func TestOptionHelpersSetRetryPolicy(t *testing.T) {
	var o endian.Options
	endian.WithRetryDelay(5 * time.Millisecond)(&o)
	if o.RetryDelay != 5*time.Millisecond {
		t.Fatalf("RetryDelay = %v", o.RetryDelay)
	}
	endian.WithBlock()(&o)
	if o.RetryDelay != 0 {
		t.Fatalf("WithBlock: RetryDelay = %v", o.RetryDelay)
	}
	endian.WithNonblock()(&o)
	if o.RetryDelay >= 0 {
		t.Fatalf("WithNonblock: RetryDelay = %v", o.RetryDelay)
	}
}

func TestOptionsComposeLastWins(t *testing.T) {
	var o endian.Options
	endian.WithBlock()(&o)
	endian.WithRetryDelay(time.Second)(&o)
	if o.RetryDelay != time.Second {
		t.Fatalf("compose: RetryDelay = %v", o.RetryDelay)
	}
}
