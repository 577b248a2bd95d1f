/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

//go:build !windows

package syspath

// pseudoEntries are the self and parent markers readdir(3) reports for every
// directory. Go's reader drops them, so they are put back.
func pseudoEntries(string) []string {
	return []string{`.`, `..`}
}
