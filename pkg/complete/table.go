// table.go - static per-command candidate sets for an offline bash/zsh
// generator, the "recorded static completion tables" the back-end
// contract names. Grounded on pkg/nflag's usageView ([]LongShortFlag
// pairing over a FlagSet) generalized to a CommandSpec tree: a Table
// entry enumerates the same three candidate families per command
// (subcommands, long/short option names, positional choice values)
// instead of one FlagSet's flags.
// SPDX-License-Identifier: GPL-3.0-or-later
package complete

import "github.com/arglex/arglex"

// CommandEntry is one command node's static candidate sets.
type CommandEntry struct {
	// Path is this command's dotted-name chain from the root, e.g.
	// ["sub1", "subsub1"] for a two-level nested subcommand.
	Path []string

	// Subcommands holds this command's immediate subcommand names
	// (primary names only, not aliases), in declaration order.
	Subcommands []string

	// LongOptions holds every long-style option name declared on this
	// command (its own options only, not inherited).
	LongOptions []string

	// ShortOptions holds every short-style option name declared on this
	// command.
	ShortOptions []string

	// Positionals holds one entry per declared positional parameter, in
	// declaration order.
	Positionals []PositionalEntry
}

// PositionalEntry describes one positional parameter's completion-time
// choice values, if any.
type PositionalEntry struct {
	// Label is the positional's display label.
	Label string

	// Choices is the positional's ChoiceValues, empty if unconstrained.
	Choices []string
}

// Table is a flattened, serializable view of a CommandSpec tree's
// completion candidates, keyed by command path. A bash/zsh generator
// walks Table instead of a live CommandSpec tree, so it can be produced
// once at build time and shipped as a data file alongside the generated
// script.
type Table struct {
	// Entries maps a command path (dotted, e.g. "sub1.subsub1"; the root
	// command's own path is "") to its CommandEntry.
	Entries map[string]CommandEntry
}

// BuildTable walks root's command tree and produces a Table covering
// every non-hidden command, option, and positional reachable from it.
func BuildTable(root *arglex.CommandSpec) *Table {
	t := &Table{Entries: make(map[string]CommandEntry)}
	buildTableEntry(t, root, nil)
	return t
}

func buildTableEntry(t *Table, cmd *arglex.CommandSpec, path []string) {
	entry := CommandEntry{Path: append([]string(nil), path...)}

	for _, name := range cmd.SubcommandNames() {
		sub, _ := cmd.LookupSubcommand(name)
		if sub == nil {
			continue
		}
		entry.Subcommands = append(entry.Subcommands, name)
	}

	for _, opt := range cmd.Options() {
		if opt.Hidden {
			continue
		}
		for _, name := range opt.Names {
			if arglex.IsShortName(name) {
				entry.ShortOptions = append(entry.ShortOptions, name)
			} else {
				entry.LongOptions = append(entry.LongOptions, name)
			}
		}
	}

	for _, pos := range cmd.Positionals() {
		if pos.Hidden {
			continue
		}
		entry.Positionals = append(entry.Positionals, PositionalEntry{
			Label:   pos.Label(),
			Choices: append([]string(nil), pos.ChoiceValues...),
		})
	}

	t.Entries[dottedPath(path)] = entry

	for _, name := range cmd.SubcommandNames() {
		sub, _ := cmd.LookupSubcommand(name)
		if sub == nil {
			continue
		}
		childPath := append(append([]string(nil), path...), name)
		buildTableEntry(t, sub, childPath)
	}
}

func dottedPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
