/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"unicode/utf16"

	perr "github.com/jmgilman/go/errors"

	"github.com/gravwell/syspath/log"
)

// Strategy identifies how a Resolver asks the OS for the running executable.
type Strategy int

const (
	// StrategyProcLink reads a per-process symbolic link such as /proc/self/exe.
	StrategyProcLink Strategy = iota + 1
	// StrategySizedQuery asks the OS for the path with a caller supplied
	// buffer size; the OS reports the size it needs when the buffer is short.
	StrategySizedQuery
	// StrategyModuleHandle asks the OS for the file name of the module that
	// started the current process.
	StrategyModuleHandle
	// StrategyKernelQuery reads the path out of the kernel process table
	// with a fixed system query identifier.
	StrategyKernelQuery
)

const (
	initialSelfPathBuffer = 1024
	// MaxSelfPathBuffer caps buffer growth, in elements, while resolving the
	// executable path.
	MaxSelfPathBuffer  = 1 << 20
	maxResolveAttempts = 16
)

var (
	// ErrTruncated is returned by resolver primitives whose output did not fit.
	ErrTruncated        = errors.New("result truncated")
	ErrBufferLimit      = errors.New("path buffer limit exceeded")
	ErrTooManyAttempts  = errors.New("too many resolution attempts")
	ErrEmptyPath        = errors.New("OS returned an empty executable path")
	ErrUnknownStrategy  = errors.New("unknown self-location strategy")
	ErrMissingPrimitive = errors.New("resolver has no primitive for its strategy")
)

func (s Strategy) String() string {
	switch s {
	case StrategyProcLink:
		return `proc-link`
	case StrategySizedQuery:
		return `sized-query`
	case StrategyModuleHandle:
		return `module-handle`
	case StrategyKernelQuery:
		return `kernel-query`
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ProcLinkFunc behaves like readlink(2) on a fixed link: it writes the target
// into buf and returns the number of bytes written. Silent truncation is
// detected when the result fills the buffer.
type ProcLinkFunc func(buf []byte) (int, error)

// SizedQueryFunc writes the path into buf. When buf is too small it returns
// ErrTruncated along with the size it needs.
type SizedQueryFunc func(buf []byte) (n int, need int, err error)

// ModuleHandleFunc writes the UTF-16 path of the current module into buf and
// returns the number of elements written. A result that fills the buffer, or
// ErrTruncated, means the path was cut short.
type ModuleHandleFunc func(buf []uint16) (int, error)

// KernelQueryFunc returns the NUL terminated path in one shot, sized by the OS.
type KernelQueryFunc func() ([]byte, error)

// Resolver locates the running executable with exactly one Strategy.
type Resolver struct {
	strategy Strategy
	procLink ProcLinkFunc
	sized    SizedQueryFunc
	module   ModuleHandleFunc
	kernel   KernelQueryFunc
}

// NewProcLinkResolver resolves through a readlink style primitive.
func NewProcLinkResolver(f ProcLinkFunc) Resolver {
	return Resolver{strategy: StrategyProcLink, procLink: f}
}

// NewSizedQueryResolver resolves through a primitive that reports the size it needs.
func NewSizedQueryResolver(f SizedQueryFunc) Resolver {
	return Resolver{strategy: StrategySizedQuery, sized: f}
}

// NewModuleHandleResolver resolves through a UTF-16 module file name query.
func NewModuleHandleResolver(f ModuleHandleFunc) Resolver {
	return Resolver{strategy: StrategyModuleHandle, module: f}
}

// NewKernelQueryResolver resolves through a one shot kernel process query.
func NewKernelQueryResolver(f KernelQueryFunc) Resolver {
	return Resolver{strategy: StrategyKernelQuery, kernel: f}
}

var defaultResolverOnce = sync.OnceValue(platformResolver)

// DefaultResolver returns the resolver for the platform this binary was built
// for. It is selected once per process.
func DefaultResolver() Resolver {
	return defaultResolverOnce()
}

// Strategy reports which OS primitive r uses.
func (r Resolver) Strategy() Strategy {
	return r.strategy
}

// Executable returns the full path of the running executable.
func (r Resolver) Executable() (p string, err error) {
	switch r.strategy {
	case StrategyProcLink:
		p, err = r.resolveProcLink()
	case StrategySizedQuery:
		p, err = r.resolveSizedQuery()
	case StrategyModuleHandle:
		p, err = r.resolveModuleHandle()
	case StrategyKernelQuery:
		p, err = r.resolveKernelQuery()
	default:
		err = ErrUnknownStrategy
	}
	if err == nil && p == `` {
		err = ErrEmptyPath
	}
	if err != nil {
		return ``, perr.WithContext(
			perr.Wrapf(err, perr.CodeExecutionFailed, "could not resolve executable path"),
			"strategy", r.strategy.String())
	}
	return p, nil
}

// SelfDirectory returns the directory holding the running executable.
func (r Resolver) SelfDirectory() (string, error) {
	p, err := r.Executable()
	if err != nil {
		return ``, err
	}
	return Dirname(p), nil
}

// FindSelfDirectory returns the directory holding the running executable.
// The process is terminated if the OS cannot tell us.
func FindSelfDirectory() string {
	return findSelfDirectory(DefaultResolver())
}

func findSelfDirectory(r Resolver) string {
	dir, err := r.SelfDirectory()
	if err != nil {
		Fatal("could not find self directory", log.KV("strategy", r.strategy), log.KVErr(err))
		return ``
	}
	logger().Debug("found self directory", log.KV("strategy", r.strategy), log.KV("path", dir))
	return dir
}

func (r Resolver) resolveProcLink() (string, error) {
	if r.procLink == nil {
		return ``, ErrMissingPrimitive
	}
	buf, err := fillGrowing(func(buf []byte) (int, int, error) {
		n, err := r.procLink(buf)
		if err == nil && n >= len(buf) {
			err = ErrTruncated
		}
		return n, 0, err
	})
	return string(buf), err
}

func (r Resolver) resolveSizedQuery() (string, error) {
	if r.sized == nil {
		return ``, ErrMissingPrimitive
	}
	buf, err := fillGrowing(func(buf []byte) (int, int, error) {
		return r.sized(buf)
	})
	if err != nil {
		return ``, err
	}
	// the OS may hand back a NUL terminated string
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

func (r Resolver) resolveModuleHandle() (string, error) {
	if r.module == nil {
		return ``, ErrMissingPrimitive
	}
	buf, err := fillGrowing(func(buf []uint16) (int, int, error) {
		n, err := r.module(buf)
		if err == nil && n >= len(buf) {
			err = ErrTruncated
		}
		return n, 0, err
	})
	if err != nil {
		return ``, err
	}
	return string(utf16.Decode(buf)), nil
}

func (r Resolver) resolveKernelQuery() (string, error) {
	if r.kernel == nil {
		return ``, ErrMissingPrimitive
	}
	b, err := r.kernel()
	if err != nil {
		return ``, err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

// fillFunc writes into buf and returns how many elements it used. A
// truncated result is signalled with ErrTruncated, optionally along with the
// size the caller should retry with.
type fillFunc[T any] func(buf []T) (n int, need int, err error)

// fillGrowing calls fill with a growing buffer until the result fits, the
// buffer limit is reached, or the attempt budget runs out.
func fillGrowing[T any](fill fillFunc[T]) ([]T, error) {
	gb := newGrowBuffer[T](initialSelfPathBuffer, MaxSelfPathBuffer)
	for i := 0; i < maxResolveAttempts; i++ {
		n, need, err := fill(gb.Buf())
		if err == nil {
			if n < 0 || n > len(gb.Buf()) {
				return nil, fmt.Errorf("primitive reported %d elements for a %d element buffer", n, len(gb.Buf()))
			}
			return gb.Buf()[:n], nil
		} else if !errors.Is(err, ErrTruncated) {
			return nil, err
		}
		if err = gb.Grow(need); err != nil {
			return nil, err
		}
	}
	return nil, ErrTooManyAttempts
}

// growBuffer owns the scratch buffer handed to OS primitives. Growing
// replaces the buffer wholesale, callers never hold on to an old one.
type growBuffer[T any] struct {
	buf   []T
	limit int
}

func newGrowBuffer[T any](initial, limit int) *growBuffer[T] {
	if initial > limit {
		initial = limit
	}
	return &growBuffer[T]{
		buf:   make([]T, initial),
		limit: limit,
	}
}

func (g *growBuffer[T]) Buf() []T {
	return g.buf
}

// Grow at least doubles the buffer, or grows it to need when that is larger.
func (g *growBuffer[T]) Grow(need int) error {
	sz := len(g.buf) * 2
	if sz == 0 {
		sz = 1
	}
	if need > sz {
		sz = need
	}
	if len(g.buf) >= g.limit || sz > g.limit {
		return fmt.Errorf("%d elements requested, limit is %d: %w", sz, g.limit, ErrBufferLimit)
	}
	g.buf = make([]T, sz)
	return nil
}
