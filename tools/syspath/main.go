/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// syspath is a small command line front end over the syspath package. It is
// handy for checking how paths resolve on a given platform and for validating
// scenario files before a run.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravwell/syspath/config"
	"github.com/gravwell/syspath/log"
	"github.com/gravwell/syspath/syspath"
)

const appName = `syspath`

const (
	flagConfig   = `config`
	flagLogLevel = `log-level`
)

// errMissing makes the process exit non-zero without printing anything more.
var errMissing = errors.New("path does not exist")

type app struct {
	out     io.Writer
	cfg     *config.Config
	lg      *log.StreamLogger
	logFile *os.File
}

func main() {
	a := &app{out: os.Stdout}
	err := newRootCmd(a).Execute()
	a.close()
	if errors.Is(err, errMissing) {
		os.Exit(1)
	} else if err != nil {
		fatalf("%v\n", err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	const (
		use   = appName
		short = "inspect and manipulate filesystem paths"
		long  = "syspath exposes path splitting, directory enumeration, " +
			"self location, temporary naming, and directory creation " +
			"from the command line."
	)
	root := &cobra.Command{
		Use:               use,
		Short:             short,
		Long:              long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.PersistentFlags().String(flagConfig, ``, "path to an ini config file")
	root.PersistentFlags().String(flagLogLevel, ``, "log level override (OFF, DEBUG, INFO, WARN, ERROR, CRITICAL)")

	root.AddCommand(
		a.newSelfCmd(),
		a.newTempNameCmd(),
		a.newMkdirsCmd(),
		a.newExistsCmd(),
		a.newLsCmd(),
		a.newSplitCmd(),
		a.newDirnameCmd(),
		a.newAppendCmd(),
		a.newScenarioCmd(),
	)
	return root
}

// setup loads the config and installs the package logger before any command
// runs.
func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.cfg = config.Default()
	if pth, _ := cmd.Flags().GetString(flagConfig); pth != `` {
		if a.cfg, err = config.LoadConfigFile(pth); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stderr
	if a.cfg.Global.Log_File != `` {
		syspath.MakeDirectories(syspath.Dirname(a.cfg.Global.Log_File))
		if a.logFile, err = os.OpenFile(a.cfg.Global.Log_File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640); err != nil {
			return fmt.Errorf("failed to open log file %q: %w", a.cfg.Global.Log_File, err)
		}
		w = a.logFile
	}
	if a.lg, err = log.New(w, appName); err != nil {
		return err
	}
	if err = a.lg.SetLevel(a.cfg.LogLevel()); err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString(flagLogLevel); lvl != `` {
		if err = a.lg.SetLevelString(lvl); err != nil {
			return fmt.Errorf("%q: %w", lvl, err)
		}
	}
	syspath.SetLogger(a.lg)
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}
