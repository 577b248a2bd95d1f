//go:build !linux && !netbsd && !dragonfly && !freebsd && !windows

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"os"
)

// Darwin and the remaining platforms expose the executable path through the
// runtime, which already queried the OS at startup. It is wrapped in the
// sized query contract so the growth logic is shared. The OS is not asked
// again per buffer: the "too small" signal and required size come from
// copySized comparing the runtime's answer against buf.
func platformResolver() Resolver {
	return NewSizedQueryResolver(func(buf []byte) (int, int, error) {
		p, err := os.Executable()
		if err != nil {
			return 0, 0, err
		}
		return copySized(buf, p)
	})
}
