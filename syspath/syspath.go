/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package syspath manipulates, resolves, and enumerates filesystem paths so
// that callers never have to carry per-platform logic of their own.
//
// Failures follow one of two policies. Operations without a useful recovery
// path (ReadFiles, FindSelfDirectory) terminate the process through Fatal with
// a diagnostic naming the offending path. Operations the caller can recover
// from (ReadFilesNoThrow, MakeDirectories, Exists) degrade to an empty result,
// a false flag, or a log message.
package syspath

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/crewjam/rfc5424"
	"github.com/gravwell/syspath/log"
)

// Separator is the platform path separator.
const Separator = string(os.PathSeparator)

// DirPerm is the mode handed to mkdir when materializing directories.
const DirPerm os.FileMode = 0700

var (
	lgr atomic.Value

	// exit and fatalOut are swapped out by tests so that fatal paths can be
	// observed without killing the test binary.
	exit               = os.Exit
	fatalOut io.Writer = os.Stderr
)

type loggerBox struct {
	l log.Logger
}

func init() {
	lgr.Store(loggerBox{l: log.NoLogger()})
}

// SetLogger installs the logger used by every operation in this package.
// A nil logger discards output.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NoLogger()
	}
	lgr.Store(loggerBox{l: l})
}

func logger() log.Logger {
	return lgr.Load().(loggerBox).l
}

// Fatal logs msg at critical level, writes a plain diagnostic to stderr, and
// terminates the process with exit status 1.
func Fatal(msg string, sds ...rfc5424.SDParam) {
	logger().Critical(msg, sds...)
	var sb strings.Builder
	sb.WriteString(msg)
	for _, sd := range sds {
		fmt.Fprintf(&sb, " %s=%q", sd.Name, sd.Value)
	}
	fmt.Fprintln(fatalOut, sb.String())
	exit(1)
}
