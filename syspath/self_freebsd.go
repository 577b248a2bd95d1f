//go:build freebsd

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"golang.org/x/sys/unix"
)

// kern.proc.pathname with a pid of -1 names the calling process.
func platformResolver() Resolver {
	return NewKernelQueryResolver(func() ([]byte, error) {
		return unix.SysctlRaw(`kern.proc.pathname`, -1)
	})
}
