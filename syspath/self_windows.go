//go:build windows

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

	"golang.org/x/sys/windows"
)

func platformResolver() Resolver {
	return NewModuleHandleResolver(func(buf []uint16) (int, error) {
		// a zero handle means the module that created the process
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			err = ErrTruncated
		}
		return int(n), err
	})
}
