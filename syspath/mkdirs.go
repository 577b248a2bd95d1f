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
	"io/fs"
	"os"

	"github.com/gravwell/syspath/log"
)

// MakeDirectories creates every directory named along path, left to right.
// Empty segments are skipped. Creation failures, including directories that
// already exist, are logged and never returned; callers that need a guarantee
// should follow up with Exists. Rerunning over the same path is safe.
func MakeDirectories(path string) {
	segs := Split(path)
	for i, seg := range segs {
		if seg == `` {
			continue
		}
		dir := Join(segs, 0, i+1)
		if err := os.Mkdir(dir, DirPerm); err != nil {
			if errors.Is(err, fs.ErrExist) {
				logger().Debug("directory already exists", log.KV("path", dir))
			} else {
				logger().Error("failed creating directory", log.KV("path", dir), log.KVErr(err))
			}
			continue
		}
		logger().Debug("created directory", log.KV("path", dir))
	}
}
