// main.go - Main for the minirbmk example
// SPDX-License-Identifier: GPL-3.0-or-later

// The minirbmk command shows how to write an [arglex] based
// command line tool using nested subcommands.
package main

import "github.com/arglex/arglex"

// configurable for testing
var (
	// env is the execution environment to use
	env = arglex.NewStdlibExecEnv()
)

func main() {
	// Define the overall suite version
	const version = "0.1.0"

	// Create the curl leaf command
	curlCmd := &arglex.LeafCommand[*arglex.StdlibExecEnv]{
		BriefDescriptionText: "Utility to transfer URLs.",
		RunFunc:              curlMain,
	}

	// Create the dig leaf command
	digCmd := &arglex.LeafCommand[*arglex.StdlibExecEnv]{
		BriefDescriptionText: "Utility to query the DNS.",
		RunFunc:              digMain,
	}

	// Create the 'git clone' leaf command
	gitCloneCmd := &arglex.LeafCommand[*arglex.StdlibExecEnv]{
		BriefDescriptionText: "Clone a repository.",
		RunFunc:              gitCloneMain,
	}

	// Create the 'git init' leaf command.
	gitInitCmd := &arglex.LeafCommand[*arglex.StdlibExecEnv]{
		BriefDescriptionText: "Init a repository.",
		RunFunc:              gitInitMain,
	}

	// Create the git subcommand
	gitCmd := &arglex.DispatcherCommand[*arglex.StdlibExecEnv]{
		BriefDescriptionText: "Utility to manage repositories.",
		Commands: map[string]arglex.Command[*arglex.StdlibExecEnv]{
			"clone": gitCloneCmd,
			"init":  gitInitCmd,
		},
		ErrorHandling: arglex.ExitOnError,
		Version:       version,
	}

	// Create the root command
	rootCmd := &arglex.RootCommand[*arglex.StdlibExecEnv]{
		// Use a dispatcher dispatching to `git`, `curl`, and `dig`.
		Command: &arglex.DispatcherCommand[*arglex.StdlibExecEnv]{

			// This text is printed when help is requested
			BriefDescriptionText: "A collection of UNIX command line tools.",

			// Configure the dispatcher to dispatch by name
			Commands: map[string]arglex.Command[*arglex.StdlibExecEnv]{
				"curl": curlCmd,
				"dig":  digCmd,
				"git":  gitCmd,
			},

			// Cause the dispatcher to call [os.Exit] on error
			ErrorHandling: arglex.ExitOnError,

			// Automatically define --version and the version subcommand
			Version: version,
		},

		// Automatic signals handling: SIGINT and SIGTERM will
		// cancel the context passed to leaf commands.
		AutoCancel: true,
	}

	// Execute the root command
	rootCmd.Main(env)
}
