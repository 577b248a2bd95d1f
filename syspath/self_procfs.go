//go:build netbsd || dragonfly

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"errors"
	"runtime"

	"golang.org/x/sys/unix"
)

func platformResolver() Resolver {
	link := `/proc/curproc/exe`
	if runtime.GOOS == `dragonfly` {
		link = `/proc/curproc/file`
	}
	return NewProcLinkResolver(func(buf []byte) (n int, err error) {
		if n, err = unix.Readlink(link, buf); errors.Is(err, unix.ENAMETOOLONG) {
			err = ErrTruncated
		}
		return
	})
}
