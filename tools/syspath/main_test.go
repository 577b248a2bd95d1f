/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/syspath/syspath"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{out: &out}
	t.Cleanup(a.close)
	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{`--` + flagLogLevel, `OFF`}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestExistsCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, `exists`, dir)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, `exists`, filepath.Join(dir, `nope`))
	assert.True(t, errors.Is(err, errMissing))
	assert.Equal(t, "false\n", out)
}

func TestMkdirsAndLs(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, `mkdirs`, filepath.Join(dir, `a`, `b`), filepath.Join(dir, `c`))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, `notes.txt`), nil, 0640))

	out, err := run(t, `ls`, dir)
	require.NoError(t, err)
	assert.Equal(t, "a\nc\nnotes.txt\n", out)

	out, err = run(t, `ls`, `--`+flagAll, dir)
	require.NoError(t, err)
	assert.Equal(t, ".\n..\na\nc\nnotes.txt\n", out)

	out, err = run(t, `ls`, `--`+flagMatch, `*.txt`, dir)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt\n", out)

	_, err = run(t, `ls`, `--`+flagMatch, `[`, dir)
	assert.Error(t, err)

	out, err = run(t, `ls`, filepath.Join(dir, `missing`))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSegmentCommands(t *testing.T) {
	sep := syspath.Separator
	out, err := run(t, `split`, sep+`a`+sep+`b`)
	require.NoError(t, err)
	assert.Equal(t, "\"\"\n\"a\"\n\"b\"\n", out)

	out, err = run(t, `dirname`, sep+`a`+sep+`b`)
	require.NoError(t, err)
	assert.Equal(t, sep+"a\n", out)

	out, err = run(t, `append`, `a`+sep+sep, `b`)
	require.NoError(t, err)
	assert.Equal(t, `a`+sep+"b\n", out)

	_, err = run(t, `append`, `a`)
	assert.Error(t, err)
}

func TestTempNameCommand(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, `syspath.conf`)
	cfg := "[TempName]\nPrimary-Env=SYSPATH_TEST_NOT_SET\nSecondary-Env=SYSPATH_TEST_NOT_SET_EITHER\n" +
		"Default-Base=" + base + "\nPrefix=clitest\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0640))

	out, err := run(t, `--`+flagConfig, cfgPath, `tempname`, `--`+flagCreate)
	require.NoError(t, err)
	name := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(name, syspath.Append(base, `clitest.`)), name)
	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, `--`+flagConfig, filepath.Join(t.TempDir(), `nope.conf`), `dirname`, `a`)
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, `dirname`, `--`+flagLogLevel, `LOUD`, `a`)
	assert.Error(t, err)
}

func TestSelfCommand(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	out, err := run(t, `self`, `--`+flagExe)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(exe), filepath.Base(strings.TrimSpace(out)))

	out, err = run(t, `self`)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestScenarioCommand(t *testing.T) {
	pth := filepath.Join(t.TempDir(), `ns_config.csv`)
	require.NoError(t, os.WriteFile(pth, []byte("mgc1:5ms,ied1\n"), 0640))

	out, err := run(t, `scenario`, pth)
	require.NoError(t, err)
	assert.Equal(t, "mgc1 5ms 1000Mbps\n\tied1 0ms 1000Mbps\n", out)

	_, err = run(t, `scenario`, pth+`.missing`)
	assert.Error(t, err)
}
