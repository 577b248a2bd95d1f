/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

// copySized copies s into buf following the sized query contract: when buf
// cannot hold s and its terminating NUL, nothing is written and the required
// size is reported alongside ErrTruncated.
func copySized(buf []byte, s string) (int, int, error) {
	if need := len(s) + 1; need > len(buf) {
		return 0, need, ErrTruncated
	}
	n := copy(buf, s)
	buf[n] = 0
	return n, 0, nil
}
