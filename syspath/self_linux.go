//go:build linux

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

	"golang.org/x/sys/unix"
)

const procSelfLink = `/proc/self/exe`

func platformResolver() Resolver {
	return NewProcLinkResolver(func(buf []byte) (int, error) {
		return readProcLink(procSelfLink, buf)
	})
}

func readProcLink(link string, buf []byte) (n int, err error) {
	if n, err = unix.Readlink(link, buf); errors.Is(err, unix.ENAMETOOLONG) {
		err = ErrTruncated
	}
	return
}
