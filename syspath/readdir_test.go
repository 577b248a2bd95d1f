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
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	perr "github.com/jmgilman/go/errors"
)

const readFilesHelperEnv = `SYSPATH_READFILES_HELPER_DIR`

func populate(t *testing.T, dir string, files, dirs []string) {
	t.Helper()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(f), 0640); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range dirs {
		if err := os.Mkdir(filepath.Join(dir, d), 0750); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, []string{`a.txt`, `b.csv`}, []string{`sub`})

	got := ReadFiles(dir)
	slices.Sort(got)
	if want := []string{`.`, `..`, `a.txt`, `b.csv`, `sub`}; !slices.Equal(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReadFilesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	names, notFound := ReadFilesNoThrow(dir)
	if notFound {
		t.Fatal("existing directory reported as missing")
	}
	if want := pseudoEntries(dir); names == nil || !slices.Equal(names, want) {
		t.Fatalf("expected only %q, got %#v", want, names)
	}
}

func TestReadFilesPseudoEntries(t *testing.T) {
	if Separator != `/` {
		t.Skip("readdir markers are checked on unix-likes")
	}
	dir := t.TempDir()
	populate(t, dir, []string{`x`}, []string{`sub`})
	for _, pth := range []string{dir, filepath.Join(dir, `sub`), `/`} {
		names := ReadFiles(pth)
		if !slices.Contains(names, `.`) || !slices.Contains(names, `..`) {
			t.Fatalf("%s: markers missing from %q", pth, names)
		}
	}
}

func TestReadFilesNoThrowMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), `nope`)
	names, notFound := ReadFilesNoThrow(missing)
	if !notFound {
		t.Fatal("missing directory not flagged")
	}
	if len(names) != 0 {
		t.Fatalf("expected empty listing, got %q", names)
	}
}

func TestReadFilesErrCodes(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFilesErr(filepath.Join(dir, `nope`))
	if err == nil {
		t.Fatal("expected an error")
	} else if code := perr.GetCode(err); code != perr.CodeNotFound {
		t.Fatalf("expected %s, got %s", perr.CodeNotFound, code)
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause lost: %v", err)
	}

	// a regular file is not a directory
	populate(t, dir, []string{`plain`}, nil)
	if _, err = ReadFilesErr(filepath.Join(dir, `plain`)); err == nil {
		t.Fatal("listing a regular file should fail")
	} else if code := perr.GetCode(err); code != perr.CodeInternal {
		t.Fatalf("expected %s, got %s", perr.CodeInternal, code)
	}
}

func TestReadFilesMissingIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), `nope`)
	diag := expectFatal(t, func() { ReadFiles(missing) })
	if !strings.Contains(diag, missing) {
		t.Fatalf("diagnostic %q does not name %q", diag, missing)
	}
}

// TestReadFilesMissingExits runs ReadFiles in a child test binary and checks
// that the child really terminates.
func TestReadFilesMissingExits(t *testing.T) {
	if dir := os.Getenv(readFilesHelperEnv); dir != `` {
		exit = os.Exit
		ReadFiles(dir)
		return
	}
	missing := filepath.Join(t.TempDir(), `nope`)
	cmd := exec.Command(os.Args[0], `-test.run=^TestReadFilesMissingExits$`)
	cmd.Env = append(os.Environ(), readFilesHelperEnv+`=`+missing)
	out, err := cmd.CombinedOutput()
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected the child to exit with an error, got %v\n%s", err, out)
	}
	if ee.ExitCode() != 1 {
		t.Fatalf("bad exit code %d\n%s", ee.ExitCode(), out)
	}
	if !strings.Contains(string(out), `could not open directory`) {
		t.Fatalf("missing diagnostic in %q", out)
	}
}
