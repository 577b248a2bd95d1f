/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package syspath

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gravwell/syspath/log"
)

// Environment variables consulted for the temporary base, in priority order,
// and the prefix placed ahead of the time hint.
const (
	DefaultPrimaryTempEnv   = `TMP`
	DefaultSecondaryTempEnv = `TEMP`
	DefaultTempPrefix       = `syspath`
)

// TempConfig controls how temporary directory names are generated. Zero
// fields take their defaults.
type TempConfig struct {
	PrimaryEnv   string
	SecondaryEnv string
	DefaultBase  string
	Prefix       string

	Getenv func(string) string
	Clock  func() time.Time
	// Entropy returns a non-negative random value. It is handed the clock
	// reading for the current name so implementations can reseed from it.
	Entropy func(now time.Time) int64
}

// TempNamer produces plausibly unique temporary directory names. It never
// touches the filesystem.
type TempNamer struct {
	cfg TempConfig
}

// NewTempNamer fills the zero fields of cfg with their defaults.
func NewTempNamer(cfg TempConfig) *TempNamer {
	if cfg.PrimaryEnv == `` {
		cfg.PrimaryEnv = DefaultPrimaryTempEnv
	}
	if cfg.SecondaryEnv == `` {
		cfg.SecondaryEnv = DefaultSecondaryTempEnv
	}
	if cfg.DefaultBase == `` {
		cfg.DefaultBase = DefaultTempBase()
	}
	if cfg.Prefix == `` {
		cfg.Prefix = DefaultTempPrefix
	}
	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Entropy == nil {
		cfg.Entropy = ClockSeededEntropy
	}
	return &TempNamer{cfg: cfg}
}

// Base returns the first non-empty environment variable, or the default base.
func (tn *TempNamer) Base() string {
	if v := tn.cfg.Getenv(tn.cfg.PrimaryEnv); v != `` {
		return v
	}
	if v := tn.cfg.Getenv(tn.cfg.SecondaryEnv); v != `` {
		return v
	}
	return tn.cfg.DefaultBase
}

// Name returns a candidate path of the form
// <base>/<prefix>.<hour>.<minute>.<second>.<random> using local time.
func (tn *TempNamer) Name() string {
	now := tn.cfg.Clock()
	local := now.Local()
	n := tn.cfg.Entropy(now)
	name := fmt.Sprintf("%s.%d.%d.%d.%d", tn.cfg.Prefix, local.Hour(), local.Minute(), local.Second(), n)
	p := Append(tn.Base(), name)
	logger().Debug("generated temporary directory name", log.KV("path", p))
	return p
}

// ClockSeededEntropy draws one value from a generator reseeded from now.
// Two calls with the same clock reading return the same value.
func ClockSeededEntropy(now time.Time) int64 {
	seed := uint64(now.UnixNano())
	return int64(rand.New(rand.NewPCG(seed, seed>>32)).Int32())
}

// MakeTemporaryDirectoryName returns a temporary directory name built from
// TMP, TEMP, or the platform default base.
func MakeTemporaryDirectoryName() string {
	return NewTempNamer(TempConfig{}).Name()
}
