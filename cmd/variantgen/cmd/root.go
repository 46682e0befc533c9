// Copyright 2025 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the variantgen command.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cuelang.org/go/cue/errors"
	"github.com/spf13/cobra"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		c.setLogger()
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands.
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "variantgen",
		Short: "variantgen generates Go variant types.",
		Long: `variantgen reads a declaration file, written in CUE, JSON or YAML, and
generates a Go file declaring one type per variant in the file.

A declaration file looks like this:

	goPackage: "shapes"
	imports: ["time"]
	variants: Shape: alternatives: [
		{type: "Circle"},
		{type: "Rect"},
		{name: "Elapsed", type: "time.Duration"},
	]

For each variant V with an alternative named A, the generated type V has
the methods SetA, InitA, IsA and AsA, and the function MatchV calls one
function per alternative. The name of an alternative defaults to its type
name without package qualifier.

Use variantgen from a go:generate directive:

	//go:generate go run cuelabs.dev/go/variant/cmd/variantgen gen shapes.cue
`,
		SilenceUsage: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newGenCmd(c),
		newCheckCmd(c),
		newEnvCmd(c),
		newVersionCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the variantgen tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:])
	if err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	cmd, err := New(args)
	if err != nil {
		return err
	}
	return cmd.Run(ctx)
}

// Command wraps the active cobra command.
type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	logger *slog.Logger

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.OutOrStderr().Write(b)
}

// Stderr returns a writer that should be used for error messages.
// Writing to it makes variantgen exit with a non-zero status.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// Logger returns the logger for progress information. It discards
// everything unless --verbose is given.
func (c *Command) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

func (c *Command) setLogger() {
	if !flagVerbose.Bool(c) {
		return
	}
	c.logger = slog.New(slog.NewTextHandler(c.Command.OutOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Keep the output stable for scripts.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.New("terminating because of errors")

// Run executes the command selected by the arguments given to New.
func (c *Command) Run(ctx context.Context) (err error) {
	defer recoverError(&err)

	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

func recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
	case panicError:
		*err = e.Err
	default:
		panic(e)
	}
	// We use panic to escape, instead of os.Exit
}

// New creates the variantgen command for the given arguments.
func New(args []string) (cmd *Command, err error) {
	defer recoverError(&err)

	cmd = newRootCmd()
	cmd.root.SetArgs(args)
	return cmd, nil
}

type panicError struct {
	Err error
}

func exit() {
	panic(panicError{ErrPrintedError})
}
