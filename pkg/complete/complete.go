// complete.go - the completion engine: walks a partial, possibly
// malformed argument vector against a CommandSpec tree without ever
// reporting an error (the same tolerance pkg/getopt's reorder/Long give a
// command line that does not yet fully parse), determines the cursor's
// context, and returns the completion candidates for it.
// SPDX-License-Identifier: GPL-3.0-or-later
package complete

import (
	"strings"

	"github.com/arglex/arglex"
)

// Result is what Complete returns for one cursor position.
type Result struct {
	// Candidates is the ordered sequence of completion suffixes: each
	// entry is the part of a matching base candidate that extends the
	// prefix already typed, per step 4 of the algorithm.
	Candidates []string

	// Filename is true when the cursor sits in the operand of an option
	// whose element type is file-typed: the caller should
	// fall back to its own filename completion (bash: compgen -f)
	// instead of using Candidates, which is left empty.
	Filename bool
}

// fileTypeName is the element Type spelling that signals filename
// completion instead of an enumerable candidate set.
const fileTypeName = "file"

// Complete computes the completion candidates for the word at
// args[argIndex], positionInArg characters into that word (0 <=
// positionInArg <= len(args[argIndex])). argIndex may equal len(args)
// for a cursor past the last word (an empty word under edit).
func Complete(root *arglex.CommandSpec, args []string, argIndex, positionInArg int) Result {
	cur, open, positionalCount := walk(root, args, argIndex)

	prefix := ""
	if argIndex >= 0 && argIndex < len(args) {
		word := args[argIndex]
		if positionInArg < 0 {
			positionInArg = 0
		}
		if positionInArg > len(word) {
			positionInArg = len(word)
		}
		prefix = word[:positionInArg]
	}

	var base []string
	if open != nil {
		switch {
		case len(open.ChoiceValues) > 0:
			base = append(base, open.ChoiceValues...)
		case strings.EqualFold(elementTypeName(open), fileTypeName):
			return Result{Filename: true}
		case open.IsBoolean():
			// a boolean's attached value isn't typically completed;
			// leave base empty.
		}
	} else {
		base = topLevelCandidates(cur, positionalCount)
	}

	return Result{Candidates: suffixes(base, prefix)}
}

// walk descends args[0:argIndex) through root exactly as the parser
// would, but never errors: an unmatched word is simply skipped rather
// than reported, and the walk stops at the deepest command successfully
// reached. It returns the command reached, the option whose arity
// window is still open at argIndex (nil if none), and how many
// positionals have been bound within that command's own index space
// (step 3's "whose index range contains the current positional count").
func walk(root *arglex.CommandSpec, args []string, argIndex int) (*arglex.CommandSpec, *arglex.ArgSpec, int) {
	if argIndex > len(args) {
		argIndex = len(args)
	}

	cur := root
	positionalCount := 0
	forcedPositional := false

	var open *arglex.ArgSpec
	openCount := 0

	i := 0
	for i < argIndex {
		word := args[i]
		pcfg := cur.ParserConfig

		switch {
		case forcedPositional:
			positionalCount++
			open = nil
			i++

		case pcfg.EndOfOptionsDelimiter != "" && word == pcfg.EndOfOptionsDelimiter:
			forcedPositional = true
			open = nil
			i++

		case looksLikeOption(cur, word):
			spec, attached, consumed := matchOption(cur, word)
			i += consumed
			if spec == nil || isZeroArity(spec) {
				open = nil
				continue
			}
			open = spec
			openCount = 0
			if attached {
				openCount++
			}
			// consume any further bare operands immediately following,
			// within the remaining slice up to argIndex, exactly as the
			// parser's operand window would.
			for i < argIndex && !windowClosed(spec, openCount) && !looksLikeOption(cur, args[i]) {
				openCount++
				i++
			}
			if windowClosed(spec, openCount) {
				open = nil
			}

		default:
			if sub, ok := cur.LookupSubcommand(word); ok && positionalCount == 0 {
				cur = sub
				positionalCount = 0
				forcedPositional = false
				open = nil
				i++
				continue
			}
			positionalCount++
			open = nil
			i++
			if pcfg.StopAtPositional {
				forcedPositional = true
			}
		}
	}

	return cur, open, positionalCount
}

// topLevelCandidates computes step 3's "top-level context" union:
// subcommand names, long option names, short option names, and
// positional choice values whose index range contains positionalCount.
func topLevelCandidates(cur *arglex.CommandSpec, positionalCount int) []string {
	var out []string
	out = append(out, cur.SubcommandNames()...)
	for _, opt := range cur.Options() {
		if opt.Hidden {
			continue
		}
		out = append(out, opt.Names...)
	}
	for _, pos := range cur.PositionalAt(positionalCount) {
		if pos.Hidden {
			continue
		}
		out = append(out, pos.ChoiceValues...)
	}
	return out
}

// suffixes returns, for each base candidate matching prefix, the part of
// the candidate beyond prefix. A non-matching candidate is dropped.
func suffixes(base []string, prefix string) []string {
	var out []string
	for _, candidate := range base {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, candidate[len(prefix):])
		}
	}
	return out
}

// looksLikeOption reports whether word begins with any prefix declared
// by cur's own options or any ancestor's, falling back to "-"/"--" when
// none are declared — the same scope pkg/parser's config.looksLikeOption
// uses, reimplemented here without erroring since completion must
// tolerate a word that turns out not to match any declared option.
func looksLikeOption(cur *arglex.CommandSpec, word string) bool {
	if word == "-" {
		return false // bare "-" is conventionally a positional (stdin marker)
	}
	for _, prefix := range prefixesInScope(cur) {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

func prefixesInScope(cur *arglex.CommandSpec) []string {
	seen := make(map[string]bool)
	var prefixes []string
	for c := cur; c != nil; c = c.Parent {
		for _, opt := range c.Options() {
			for _, name := range opt.Names {
				prefix := namePrefix(name)
				if prefix != "" && !seen[prefix] {
					seen[prefix] = true
					prefixes = append(prefixes, prefix)
				}
			}
		}
	}
	if len(prefixes) == 0 {
		return []string{"--", "-"}
	}
	return prefixes
}

func namePrefix(name string) string {
	if len(name) == 0 {
		return ""
	}
	if len(name) >= 2 && name[0] == '-' && name[1] == '-' {
		return "--"
	}
	return name[:1]
}

// matchOption resolves word to the option it names, tolerantly: an
// unrecognized short cluster or long name returns a nil spec rather than
// an error. attached reports whether word already carries its operand
// (a "--name=value" suffix, or a short cluster's trailing remainder);
// consumed is how many words of args this match occupies (always 1: the
// operand window is walked separately by the caller).
func matchOption(cur *arglex.CommandSpec, word string) (spec *arglex.ArgSpec, attached bool, consumed int) {
	prefix, name := splitPrefix(word, prefixesInScope(cur))

	if prefix == "-" && len(name) > 1 {
		// a short cluster: walk the letters, skipping zero-arity
		// options, and resolve the first letter that takes an operand,
		// since completion only cares about the window that letter
		// opens; the rest of the word, if any, is its attached value.
		for idx := 0; idx < len(name); idx++ {
			letter := string(name[idx])
			s, _, ok := cur.LookupOptionScoped("-" + letter)
			if !ok {
				return nil, false, 1
			}
			if isZeroArity(s) {
				continue
			}
			remainder := name[idx+1:]
			return s, remainder != "", 1
		}
		return nil, false, 1
	}

	lookupName := prefix + name
	hasAttached := false
	if idx := strings.Index(name, "="); idx >= 0 {
		lookupName = prefix + name[:idx]
		hasAttached = true
	}
	s, _, ok := cur.LookupOptionScoped(lookupName)
	if !ok {
		return nil, false, 1
	}
	return s, hasAttached, 1
}

func splitPrefix(word string, prefixes []string) (prefix, rest string) {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			return p, word[len(p):]
		}
	}
	return "", word
}

func isZeroArity(spec *arglex.ArgSpec) bool {
	return spec.Arity.Max == 0 && !spec.Arity.Variable
}

func windowClosed(spec *arglex.ArgSpec, count int) bool {
	if spec.Arity.Variable {
		return false
	}
	return count >= spec.Arity.Max
}

func elementTypeName(spec *arglex.ArgSpec) string {
	if len(spec.AuxiliaryTypes) == 1 {
		return spec.AuxiliaryTypes[0]
	}
	if strings.HasPrefix(spec.Type, "[]") {
		return spec.Type[2:]
	}
	return spec.Type
}
