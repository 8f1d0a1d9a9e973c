// synopsis.go - a minimal usage synopsis line, kept separate from full
// usage-message rendering (out of scope, see dispatcher.go's formatUsage
// for the teacher's fuller equivalent) but handy for error-hint text like
// errorInvalidFlags's "Try '<cmd> --help'" line.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"fmt"
	"strings"
)

// Synopsis renders a one-line "Usage: ..." synopsis for cmd: its name,
// "[OPTIONS]" if it declares any non-hidden option, each positional's
// label (bracketed unless Required), and "COMMAND [ARGS]..." if it has
// subcommands.
// It does not recurse into subcommands or render per-option help text;
// that remains out of scope per SPEC_FULL.md's usage-rendering non-goal.
func Synopsis(cmd *CommandSpec) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s", cmd.Name)

	for _, opt := range cmd.optionList {
		if !opt.Hidden {
			fmt.Fprintf(&sb, " [OPTIONS]")
			break
		}
	}

	for _, pos := range cmd.positionals {
		if pos.Hidden {
			continue
		}
		label := pos.Label()
		if pos.IsMultiValue() {
			label += "..."
		}
		if pos.Required {
			fmt.Fprintf(&sb, " %s", label)
		} else {
			fmt.Fprintf(&sb, " [%s]", label)
		}
	}

	if len(cmd.subcommandList) > 0 {
		fmt.Fprintf(&sb, " COMMAND [ARGS]...")
	}

	return sb.String()
}
