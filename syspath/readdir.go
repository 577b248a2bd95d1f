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

	perr "github.com/jmgilman/go/errors"

	"github.com/gravwell/syspath/log"
)

// ReadFilesErr lists the entry names of the directory at path in a single
// scan. The self and parent markers are included wherever the platform
// reports them. A directory that cannot be opened because it does not exist
// yields a CodeNotFound error; any other failure is CodeInternal.
func ReadFilesErr(path string) ([]string, error) {
	d, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.Wrapf(err, perr.CodeNotFound, "directory %q does not exist", path)
		}
		return nil, perr.Wrapf(err, perr.CodeInternal, "could not open directory %q", path)
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeInternal, "could not read directory %q", path)
	}
	if names = append(pseudoEntries(path), names...); names == nil {
		names = []string{}
	}
	return names, nil
}

// ReadFiles returns the entry names of the directory at path. The process is
// terminated if the directory cannot be read.
func ReadFiles(path string) []string {
	names, err := ReadFilesErr(path)
	if err != nil {
		Fatal("could not open directory", log.KV("path", path), log.KVErr(err))
		return nil
	}
	return names
}

// ReadFilesNoThrow returns the entry names of the directory at path. When the
// directory cannot be read the listing is empty and notFound is true.
func ReadFilesNoThrow(path string) (names []string, notFound bool) {
	var err error
	if names, err = ReadFilesErr(path); err != nil {
		logger().Debug("directory could not be read", log.KV("path", path), log.KVErr(err))
		return []string{}, true
	}
	return names, false
}
