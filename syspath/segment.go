/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"strings"

	"github.com/gravwell/syspath/log"
)

// Split cuts path at every separator. The remainder after the last separator
// is always included, so an absolute path starts with an empty segment, a
// path ending in a separator ends with one, and "" yields [""].
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Join concatenates segs[begin:end]. The first segment is emitted verbatim,
// even when empty, which is how the leading separator of an absolute path
// survives. Every later non-empty segment is prefixed with the separator and
// empty interior segments are dropped.
func Join(segs []string, begin, end int) string {
	if begin < 0 || end > len(segs) || begin > end {
		Fatal("invalid segment range",
			log.KV("begin", begin), log.KV("end", end), log.KV("segments", len(segs)))
		return ``
	}
	if begin == end {
		return ``
	}
	var sb strings.Builder
	sb.WriteString(segs[begin])
	for _, s := range segs[begin+1 : end] {
		if s == `` {
			continue
		}
		sb.WriteString(Separator)
		sb.WriteString(s)
	}
	return sb.String()
}

// Dirname returns path without its last segment.
func Dirname(path string) string {
	segs := Split(path)
	if len(segs) == 0 {
		Fatal("path has no segments", log.KV("path", path))
		return ``
	}
	return Join(segs, 0, len(segs)-1)
}

// Append strips every trailing separator from left and joins right onto it
// with exactly one separator. Separators elsewhere are left alone.
func Append(left, right string) string {
	return strings.TrimRight(left, Separator) + Separator + right
}

// Base returns the last segment of path, which is empty when path ends in a
// separator.
func Base(path string) string {
	segs := Split(path)
	return segs[len(segs)-1]
}
