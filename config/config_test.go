/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perr "github.com/jmgilman/go/errors"

	"github.com/gravwell/syspath/log"
	"github.com/gravwell/syspath/syspath"
)

const fullConfig = `
[Global]
Log-Level=debug
Log-File=/var/log/syspath.log

[TempName]
Primary-Env=SIM_SCRATCH
Secondary-Env=TMPDIR
Default-Base=/scratch
Prefix=sim
`

const partialConfig = `
[TempName]
Prefix=run
`

func TestLoadConfigBytes(t *testing.T) {
	c, err := LoadConfigBytes([]byte(fullConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel() != log.DEBUG {
		t.Fatalf("bad log level %v", c.LogLevel())
	}
	if c.Global.Log_File != `/var/log/syspath.log` {
		t.Fatalf("bad log file %q", c.Global.Log_File)
	}
	tc := c.TempConfig()
	if tc.PrimaryEnv != `SIM_SCRATCH` || tc.SecondaryEnv != `TMPDIR` || tc.DefaultBase != `/scratch` || tc.Prefix != `sim` {
		t.Fatalf("bad temp config %+v", tc)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfigBytes([]byte(partialConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel() != log.ERROR {
		t.Fatalf("bad default log level %v", c.LogLevel())
	}
	tc := c.TempConfig()
	if tc.PrimaryEnv != syspath.DefaultPrimaryTempEnv || tc.SecondaryEnv != syspath.DefaultSecondaryTempEnv {
		t.Fatalf("env defaults lost: %+v", tc)
	}
	if tc.DefaultBase != syspath.DefaultTempBase() || tc.Prefix != `run` {
		t.Fatalf("bad temp config %+v", tc)
	}

	if c, err = LoadConfigBytes(nil); err != nil {
		t.Fatal(err)
	} else if c.TempName.Prefix != syspath.DefaultTempPrefix {
		t.Fatalf("bad default prefix %q", c.TempName.Prefix)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		`bad level`:    "[Global]\nLog-Level=chatty\n",
		`bad env`:      "[TempName]\nPrimary-Env=A=B\n",
		`bad prefix`:   "[TempName]\nPrefix=a" + syspath.Separator + "b\n",
		`bad section`:  "[Nope]\nthing=1\n",
		`bad variable`: "[Global]\nColour=blue\n",
	}
	for name, cfg := range tests {
		_, err := LoadConfigBytes([]byte(cfg))
		if err == nil {
			t.Errorf("%s: expected an error", name)
		} else if code := perr.GetCode(err); code != perr.CodeInvalidConfig {
			t.Errorf("%s: expected %s, got %s", name, perr.CodeInvalidConfig, code)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, `syspath.conf`)
	if _, err := LoadConfigFile(pth); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
	if err := os.WriteFile(pth, []byte(fullConfig), 0640); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfigFile(pth)
	if err != nil {
		t.Fatal(err)
	}
	if c.TempName.Prefix != `sim` {
		t.Fatalf("bad prefix %q", c.TempName.Prefix)
	}
}
