/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"slices"
	"strings"

	"github.com/gravwell/syspath/log"
)

// Exists reports whether path names an existing file or directory. A path
// ending in a separator is treated as a directory and only its parent
// listing is consulted. The answer reflects a single scan of the parent
// directory.
func Exists(path string) bool {
	if path == `` {
		return false
	}
	dir := parentDir(path)
	names, notFound := ReadFilesNoThrow(dir)
	if notFound {
		logger().Debug("directory doesn't exist", log.KV("path", dir))
		return false
	}

	name := Base(path)
	if name == `` {
		logger().Debug("directory path exists", log.KV("path", path))
		return true
	}
	if !slices.Contains(names, name) {
		logger().Debug("file itself doesn't exist", log.KV("path", path))
		return false
	}
	return true
}

// parentDir is Dirname with the single segment cases pinned to a directory
// that can be listed: the root for absolute paths, the working directory
// otherwise.
func parentDir(path string) string {
	dir := Dirname(path)
	if dir != `` {
		return dir
	}
	if strings.HasPrefix(path, Separator) {
		return Separator
	}
	return `.`
}
