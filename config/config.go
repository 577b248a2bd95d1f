/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package config loads the ini style configuration for the syspath tool.
//
// An example configuration:
//
//	[Global]
//	Log-Level=INFO
//	Log-File=/var/log/syspath.log
//
//	[TempName]
//	Primary-Env=TMP
//	Secondary-Env=TEMP
//	Default-Base=/tmp
//	Prefix=syspath
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gravwell/gcfg"
	perr "github.com/jmgilman/go/errors"

	"github.com/gravwell/syspath/log"
	"github.com/gravwell/syspath/syspath"
)

const (
	maxConfigSize int64 = 1024 * 1024 * 2 // 2MB, plenty for a handful of keys

	defaultLogLevel = `ERROR`
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileLarge = errors.New("config file is too large")
	ErrInvalidEnvName  = errors.New("environment variable name is invalid")
	ErrInvalidPrefix   = errors.New("temporary name prefix may not contain a path separator")
)

// Config is the full tool configuration.
type Config struct {
	Global   GlobalConfig
	TempName TempNameConfig
}

// GlobalConfig is the [Global] section.
type GlobalConfig struct {
	Log_Level string
	Log_File  string
}

// TempNameConfig is the [TempName] section. Empty values use the defaults.
type TempNameConfig struct {
	Primary_Env   string
	Secondary_Env string
	Default_Base  string
	Prefix        string
}

// Default returns a configuration with every field populated.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			Log_Level: defaultLogLevel,
		},
		TempName: TempNameConfig{
			Primary_Env:   syspath.DefaultPrimaryTempEnv,
			Secondary_Env: syspath.DefaultSecondaryTempEnv,
			Default_Base:  syspath.DefaultTempBase(),
			Prefix:        syspath.DefaultTempPrefix,
		},
	}
}

// LoadConfigFile reads and verifies the config at path. Values that are not
// present keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	if !syspath.Exists(path) {
		return nil, perr.Wrapf(ErrConfigNotFound, perr.CodeNotFound, "%q", path)
	}
	fin, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeInvalidConfig, "could not open config %q", path)
	}
	defer fin.Close()
	fi, err := fin.Stat()
	if err != nil {
		return nil, err
	} else if fi.Size() > maxConfigSize {
		return nil, perr.Wrapf(ErrConfigFileLarge, perr.CodeInvalidConfig, "%q is %d bytes", path, fi.Size())
	}
	bts := make([]byte, fi.Size())
	if _, err = io.ReadFull(fin, bts); err != nil {
		return nil, err
	}
	return LoadConfigBytes(bts)
}

// LoadConfigBytes parses and verifies a config held in memory.
func LoadConfigBytes(bts []byte) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, string(bts)); err != nil {
		return nil, perr.Wrap(err, perr.CodeInvalidConfig, "could not parse config")
	}
	if err := c.Verify(); err != nil {
		return nil, perr.Wrap(err, perr.CodeInvalidConfig, "invalid config")
	}
	return c, nil
}

// Verify normalizes and checks the config.
func (c *Config) Verify() error {
	c.Global.Log_Level = strings.TrimSpace(c.Global.Log_Level)
	if c.Global.Log_Level == `` {
		c.Global.Log_Level = defaultLogLevel
	}
	if _, err := log.LevelFromString(c.Global.Log_Level); err != nil {
		return err
	}
	c.Global.Log_File = strings.TrimSpace(c.Global.Log_File)

	tn := &c.TempName
	for _, v := range []*string{&tn.Primary_Env, &tn.Secondary_Env} {
		*v = strings.TrimSpace(*v)
		if strings.ContainsAny(*v, "= \t") {
			return fmt.Errorf("%q: %w", *v, ErrInvalidEnvName)
		}
	}
	if strings.Contains(tn.Prefix, syspath.Separator) {
		return fmt.Errorf("%q: %w", tn.Prefix, ErrInvalidPrefix)
	}
	return nil
}

// LogLevel returns the parsed global log level.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.LevelFromString(c.Global.Log_Level)
	if err != nil {
		return log.ERROR
	}
	return lvl
}

// TempConfig converts the [TempName] section for syspath.NewTempNamer.
// Empty values fall back to the syspath defaults.
func (c *Config) TempConfig() syspath.TempConfig {
	return syspath.TempConfig{
		PrimaryEnv:   c.TempName.Primary_Env,
		SecondaryEnv: c.TempName.Secondary_Env,
		DefaultBase:  c.TempName.Default_Base,
		Prefix:       c.TempName.Prefix,
	}
}
