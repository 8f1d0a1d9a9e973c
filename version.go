// version.go - automatic handling of --version and version.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"context"
	"fmt"

	"github.com/arglex/arglex/pkg/parser"
)

// VersionCommand implements the version command.
//
// The zero value is ready to use.
type VersionCommand[T ExecEnv] struct {
	// BriefDescriptionText is the optional brief description text.
	//
	// When unset, we use a reasonable default value.
	BriefDescriptionText string

	// ErrorHandling is the optional error handling strategy.
	//
	// When unset, we use [ContinueOnError].
	ErrorHandling ErrorHandling

	// HelpFlagValue is the optional help flag. When unset, we use "--help".
	HelpFlagValue string

	// Version is the optional version. When unsed, we use "dev".
	Version string
}

var _ Command[*StdlibExecEnv] = &VersionCommand[*StdlibExecEnv]{}

// BriefDescription implements [Command].
func (c *VersionCommand[T]) BriefDescription() string {
	output := "Print the program version and exit."
	if c.BriefDescriptionText != "" {
		output = c.BriefDescriptionText
	}
	return output
}

// HelpFlag implements [Command].
func (c *VersionCommand[T]) HelpFlag() string {
	output := "--help"
	if c.HelpFlagValue != "" {
		output = c.HelpFlagValue
	}
	return output
}

// PrintVersion prints the version to the stdout.
func (c *VersionCommand[T]) PrintVersion(env T) error {
	version := "dev"
	if c.Version != "" {
		version = c.Version
	}
	_, err := fmt.Fprintf(env.Stdout(), "%s\n", version)
	return err
}

// Run implements [Command].
func (c *VersionCommand[T]) Run(ctx context.Context, args *CommandArgs[T]) error {
	// A version command declares no options and no positionals, so the
	// parser's own end-of-parse check rejects every word we're given.
	spec, err := NewCommandSpec(args.CommandName).Build()
	if err != nil {
		return err
	}
	if _, err := parser.New(spec).Parse(args.Args); err != nil {
		return c.handleError(args.Env, err)
	}

	// Print the version to the standard output.
	return c.PrintVersion(args.Env)
}

// handleError applies c.ErrorHandling to a parse failure: ExitOnError
// calls env.Exit(2) without printing anything, PanicOnError panics, and
// otherwise the error is returned.
func (c *VersionCommand[T]) handleError(env T, err error) error {
	switch c.ErrorHandling {
	case ExitOnError:
		env.Exit(2)
		return err
	case PanicOnError:
		panic(err)
	default:
		return err
	}
}

// SupportsSubcommands implements [Command].
func (c *VersionCommand[T]) SupportsSubcommands() bool {
	return false
}
