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
	"os"
	"path/filepath"
)

const (
	temporaryBaseFallBack string = `C:\Windows\Temp`
)

var tempBase string = temporaryBaseFallBack

func init() {
	// SystemRoot is typically C:\Windows
	if sr := os.Getenv("SystemRoot"); sr != "" {
		tempBase = filepath.Join(filepath.Clean(sr), `Temp`)
	}
}

// DefaultTempBase is the base used when neither temp environment variable is set.
func DefaultTempBase() string {
	return tempBase
}
