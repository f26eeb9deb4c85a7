// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger sets the logger used to report degraded numerical
// precision, such as quadrature that did not converge. By default
// nothing is logged.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func diag() *zerolog.Logger {
	return logger.Load()
}
