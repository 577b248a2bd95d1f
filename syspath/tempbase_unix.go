//go:build !windows

/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

const temporaryBaseFallBack string = `/tmp`

// DefaultTempBase is the base used when neither temp environment variable is set.
func DefaultTempBase() string {
	return temporaryBaseFallBack
}
