/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

//go:build windows

package syspath

import (
	"path/filepath"
)

// pseudoEntries are the self and parent markers FindFirstFile reports. Volume
// roots have neither.
func pseudoEntries(path string) []string {
	if c := filepath.Clean(path); filepath.Dir(c) == c {
		return nil
	}
	return []string{`.`, `..`}
}
