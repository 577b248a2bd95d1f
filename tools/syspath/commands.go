/*************************************************************************
 * Copyright 2026 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package main

import (
	"fmt"
	"slices"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/gravwell/syspath/log"
	"github.com/gravwell/syspath/scenario"
	"github.com/gravwell/syspath/syspath"
)

const (
	flagExe    = `exe`
	flagCreate = `create`
	flagStrict = `strict`
	flagMatch  = `match`
	flagAll    = `all`
)

func (a *app) newSelfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "print the directory holding this executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := syspath.DefaultResolver()
			var pth string
			var err error
			if exe, _ := cmd.Flags().GetBool(flagExe); exe {
				pth, err = r.Executable()
			} else {
				pth, err = r.SelfDirectory()
			}
			if err != nil {
				return err
			}
			a.lg.Debug("resolved self location", log.KV("strategy", r.Strategy().String()), log.KV("path", pth))
			fmt.Fprintln(a.out, pth)
			return nil
		},
	}
	cmd.Flags().Bool(flagExe, false, "print the full executable path instead of its directory")
	return cmd
}

func (a *app) newTempNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempname",
		Short: "generate a temporary directory name",
		Long: "Generates a name under the temporary base directory. " +
			"Nothing is created unless --create is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := syspath.NewTempNamer(a.cfg.TempConfig()).Name()
			if create, _ := cmd.Flags().GetBool(flagCreate); create {
				syspath.MakeDirectories(name)
				if !syspath.Exists(name) {
					return fmt.Errorf("failed to create %q", name)
				}
			}
			fmt.Fprintln(a.out, name)
			return nil
		},
	}
	cmd.Flags().Bool(flagCreate, false, "create the directory after naming it")
	return cmd
}

func (a *app) newMkdirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdirs PATH...",
		Short: "create every directory along each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, pth := range args {
				syspath.MakeDirectories(pth)
				if !syspath.Exists(pth) {
					a.lg.Error("directory was not created", log.KV("path", pth))
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d paths could not be created", failed, len(args))
			}
			return nil
		},
	}
}

func (a *app) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "report whether a path exists, exiting 1 when it does not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := syspath.Exists(args[0])
			fmt.Fprintln(a.out, ok)
			if !ok {
				return errMissing
			}
			return nil
		},
	}
}

func (a *app) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls DIR",
		Short: "list directory entries",
		Long: "Lists the entries of a directory sorted by name. With --strict an " +
			"unreadable directory terminates the process; otherwise it lists nothing. " +
			"The . and .. markers are only shown with --all.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var g glob.Glob
			if pattern, _ := cmd.Flags().GetString(flagMatch); pattern != `` {
				var err error
				if g, err = glob.Compile(pattern); err != nil {
					return fmt.Errorf("invalid match pattern %q: %w", pattern, err)
				}
			}
			var names []string
			if strict, _ := cmd.Flags().GetBool(flagStrict); strict {
				names = syspath.ReadFiles(args[0])
			} else {
				var notFound bool
				if names, notFound = syspath.ReadFilesNoThrow(args[0]); notFound {
					a.lg.Warn("directory could not be read", log.KV("path", args[0]))
				}
			}
			all, _ := cmd.Flags().GetBool(flagAll)
			slices.Sort(names)
			for _, n := range names {
				if !all && (n == `.` || n == `..`) {
					continue
				}
				if g == nil || g.Match(n) {
					fmt.Fprintln(a.out, n)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagStrict, false, "terminate if the directory cannot be read")
	cmd.Flags().String(flagMatch, ``, "only print entries matching this glob")
	cmd.Flags().Bool(flagAll, false, "include the . and .. markers")
	return cmd
}

func (a *app) newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split PATH",
		Short: "print each path segment, quoted, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, seg := range syspath.Split(args[0]) {
				fmt.Fprintf(a.out, "%q\n", seg)
			}
			return nil
		},
	}
}

func (a *app) newDirnameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirname PATH",
		Short: "print a path with its last segment removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, syspath.Dirname(args[0]))
			return nil
		},
	}
}

func (a *app) newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append LEFT RIGHT",
		Short: "join two paths with exactly one separator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, syspath.Append(args[0], args[1]))
			return nil
		},
	}
}

func (a *app) newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario FILE",
		Short: "validate a scenario file and print its topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			a.lg.Info("loaded scenario", log.KV("path", args[0]),
				log.KV("controllers", len(s.Controllers)), log.KV("devices", s.Devices()))
			for _, c := range s.Controllers {
				fmt.Fprintf(a.out, "%s %s %s\n", c.Name, c.Latency, c.Bandwidth)
				for _, d := range c.Devices {
					fmt.Fprintf(a.out, "\t%s %s %s\n", d.Name, d.Latency, d.Bandwidth)
				}
			}
			return nil
		},
	}
}
