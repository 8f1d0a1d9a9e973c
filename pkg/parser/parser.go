// parser.go - single-pass command line parser.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package parser implements the single-pass argument vector consumer:
recognizes options in short, clustered, and long-form styles against a
[arglex.CommandSpec] tree, enforces arity windows and requiredness,
performs type conversion through [convert.Registry], and produces a
[ParseResult].

# Supported styles

Options are recognized by the prefixes carried by their declared names:
a single hyphen for short-style names (subject to clustering, e.g.
"-abc" bundling three boolean short options or "-fvalue" attaching an
operand to the last one), "--" for long-style names (with an optional
"=value" suffix), and any other configured prefix such as "+" or "/"
(always long-style, never clustered).

# Algorithm

Parse walks the argument vector once. At each word it tries, in order:
the end-of-options delimiter, a recognized option prefix, a subcommand
name match (descending the command tree), and finally a positional
parameter. Matched options consume an arity-bounded window of
following words unless a value is already attached to the same token.
Matched positionals are bound by declaration-order index range. Once the
vector is exhausted, every required option and positional is checked and
a [arglex.MissingParameter] is raised for whatever is still missing,
unless a help flag was seen along the way.

This package is the direct generalization of the teacher's bundling and
attached-value logic in pkg/nparser: the same three-phase
config/operand/convert split, generalized from a fixed boolean/string
option-type enum to the richer per-spec arity and type model that
[arglex.CommandSpec] carries.
*/
package parser

import (
	"strings"

	"github.com/arglex/arglex"
	"github.com/arglex/arglex/pkg/convert"
)

// Parser consumes an argument vector against a CommandSpec tree.
//
// The zero value is not ready to use; construct with [New].
type Parser struct {
	// Root is the command tree's entry point.
	Root *arglex.CommandSpec

	// Converters overrides the process-wide default registry
	// (convert.Default) for every conversion this Parser performs. Set
	// it to use a registry with different exclusions, or to register
	// additional application-specific converters without mutating the
	// default.
	Converters *convert.Registry
}

// New constructs a Parser for the given command tree, using the
// process-wide default converter registry unless Converters is set
// afterward.
func New(root *arglex.CommandSpec) *Parser {
	return &Parser{Root: root}
}

// Parse consumes argv (which must NOT include the program name) against
// p.Root and returns a ParseResult.
//
// In strict mode (the matched command's ParserConfig.CollectErrors is
// false) the first error aborts and is returned directly alongside the
// partial ParseResult. In lenient mode every error is appended to
// ParseResult.Errors in encounter order and Parse itself returns a nil
// error; inspect ParseResult.Errors to learn whether parsing fully
// succeeded.
func (p *Parser) Parse(argv []string) (*ParseResult, error) {
	if p.Root.ParserConfig.ExpandAtFiles {
		expanded, err := expandAtFiles(argv)
		if err != nil {
			return nil, err
		}
		argv = expanded
	}

	result := newParseResult(p.Root)
	st := &state{
		p:      p,
		result: result,
		words:  argv,
		cur:    p.Root,
		cfg:    newConfig(p.Root),
	}

	if err := st.run(); err != nil {
		if !st.cur.ParserConfig.CollectErrors {
			return result, err
		}
		result.addError(err)
	}

	if reqErr := st.checkRequired(); reqErr != nil {
		if !st.cur.ParserConfig.CollectErrors {
			return result, reqErr
		}
		result.addError(reqErr)
	}

	if len(result.Unmatched) > 0 && !st.cur.ParserConfig.UnmatchedArgumentsAllowed {
		unmatchedErr := arglex.UnmatchedArgument{Words: append([]string(nil), result.Unmatched...)}
		if !st.cur.ParserConfig.CollectErrors {
			return result, unmatchedErr
		}
		result.addError(unmatchedErr)
	}

	return result, nil
}

// state carries the mutable position of one Parse invocation.
type state struct {
	p      *Parser
	result *ParseResult
	words  []string

	cur *arglex.CommandSpec
	cfg *config

	i                int
	positionalCount  int
	forcedPositional bool
	sawHelp          bool
}

func (st *state) run() error {
	for st.i < len(st.words) {
		word := st.words[st.i]
		pcfg := st.cur.ParserConfig

		switch {
		case st.forcedPositional:
			if err := st.handleErr(pcfg, st.consumePositional(word)); err != nil {
				return err
			}

		case pcfg.EndOfOptionsDelimiter != "" && word == pcfg.EndOfOptionsDelimiter:
			st.forcedPositional = true
			st.i++

		case st.cfg.looksLikeOption(word):
			if err := st.handleErr(pcfg, st.consumeOption(word)); err != nil {
				return err
			}

		case st.subcommandMatch(word):
			// handled inside subcommandMatch (advances st.i, descends)

		default:
			if err := st.handleErr(pcfg, st.consumePositional(word)); err != nil {
				return err
			}
			if pcfg.StopAtPositional {
				st.forcedPositional = true
			}
		}
	}
	return nil
}

// handleErr records err per pcfg.CollectErrors and returns it only when
// strict mode demands the caller abort immediately.
func (st *state) handleErr(pcfg arglex.ParserConfig, err error) error {
	if err == nil {
		return nil
	}
	if !pcfg.CollectErrors {
		return err
	}
	st.result.addError(err)
	return nil
}

func (st *state) subcommandMatch(word string) bool {
	if st.positionalCount > 0 {
		return false
	}
	sub, ok := st.cur.LookupSubcommand(word)
	if !ok {
		return false
	}
	st.result.Chain = append(st.result.Chain, sub)
	st.cur = sub
	st.cfg = newConfig(sub)
	st.i++
	st.positionalCount = 0
	st.forcedPositional = false
	return true
}

func (st *state) consumeOption(word string) error {
	prefix, name := splitPrefix(word, st.cfg.prefixes)
	separator := st.cur.ParserConfig.Separator
	if separator == "" {
		separator = "="
	}

	if prefix == "-" && len(name) > 1 {
		return st.consumeCluster(name)
	}

	lookupName := prefix + name
	var attached *string
	if idx := strings.Index(name, separator); idx >= 0 {
		value := name[idx+len(separator):]
		attached = &value
		lookupName = prefix + name[:idx]
	}

	spec, owner, ok := st.cur.LookupOptionScoped(lookupName)
	if !ok {
		st.result.Unmatched = append(st.result.Unmatched, word)
		st.i++
		return nil
	}
	st.i++
	return st.bindOption(spec, attached, owner.IsNegatedOptionName(lookupName))
}

// consumeCluster handles a word like "-abc" under the single-hyphen
// prefix: each byte resolves to a distinct short option until one with a
// non-zero arity is found, which then consumes the remainder of the
// cluster as its attached operand (or begins normal operand consumption
// if nothing remains).
func (st *state) consumeCluster(name string) error {
	st.i++
	for idx := 0; idx < len(name); idx++ {
		letter := string(name[idx])
		spec, _, ok := st.cur.LookupOptionScoped("-" + letter)
		if !ok {
			st.result.Unmatched = append(st.result.Unmatched, "-"+letter)
			continue
		}
		if spec.Arity.Max == 0 && !spec.Arity.Variable {
			if err := st.bindFlag(spec, nil, false); err != nil {
				return err
			}
			continue
		}
		remainder := name[idx+1:]
		if remainder == "" {
			return st.bindOption(spec, nil, false)
		}
		return st.bindOption(spec, &remainder, false)
	}
	return nil
}

func (st *state) bindOption(spec *arglex.ArgSpec, attached *string, negated bool) error {
	pcfg := st.cur.ParserConfig

	if st.result.Seen(spec) && !spec.IsMultiValue() && !pcfg.OverwrittenOptionsAllowed {
		return arglex.OverwrittenOption{Label: spec.Label()}
	}
	if spec.Help {
		st.sawHelp = true
	}
	if spec.Arity.Max == 0 && !spec.Arity.Variable {
		return st.bindFlag(spec, attached, negated)
	}

	captured, nextIdx, err := consumeOperandWindow(st.words, st.i, spec, st.cfg, pcfg, attached)
	st.i = nextIdx
	if err != nil {
		return err
	}
	return st.recordCaptured(spec, captured, pcfg)
}

// bindFlag records a zero-arity option's value. negated is set when word
// matched the auto-generated "--no-x" synonym of a boolean spec, which
// toggles the opposite way from "--x" (see build.go's negatedSynonyms).
func (st *state) bindFlag(spec *arglex.ArgSpec, attached *string, negated bool) error {
	if attached != nil {
		if !spec.IsBoolean() {
			return arglex.ParameterError{
				Label:   spec.Label(),
				Message: "'" + spec.Label() + "' should be specified without '" + *attached + "' parameter",
			}
		}
		value, err := st.p.convertScalar(spec, *attached, -1)
		if err != nil {
			return err
		}
		if negated {
			value = !value.(bool)
		}
		st.result.resetValues(spec)
		st.result.record(spec, *attached, value)
		return nil
	}
	if spec.IsBoolean() {
		st.result.resetValues(spec)
		if negated {
			st.result.record(spec, "false", false)
		} else {
			st.result.record(spec, "true", true)
		}
		return nil
	}
	st.result.markSeenNoValue(spec)
	return nil
}

func (st *state) recordCaptured(spec *arglex.ArgSpec, captured []string, pcfg arglex.ParserConfig) error {
	if !spec.IsMultiValue() {
		st.result.resetValues(spec)
	}
	index := len(st.result.raw[spec])
	for _, raw := range captured {
		pieces := []string{raw}
		if spec.IsMultiValue() {
			split, err := splitOperand(spec, raw, pcfg)
			if err != nil {
				return err
			}
			pieces = split
		}
		for _, piece := range pieces {
			if spec.IsMap() {
				entry, err := st.p.convertMapEntry(spec, piece, separatorOrDefault(pcfg.Separator), index)
				if err != nil {
					return err
				}
				st.result.record(spec, piece, entry)
			} else {
				if err := st.checkChoice(spec, piece, pcfg); err != nil {
					return err
				}
				value, err := st.p.convertScalar(spec, piece, index)
				if err != nil {
					return err
				}
				st.result.record(spec, piece, value)
			}
			index++
		}
	}
	return nil
}

func (st *state) checkChoice(spec *arglex.ArgSpec, raw string, pcfg arglex.ParserConfig) error {
	if len(spec.ChoiceValues) == 0 {
		return nil
	}
	caseInsensitive := pcfg.CaseInsensitiveEnumValuesAllowed || spec.CaseInsensitiveEnum
	for _, choice := range spec.ChoiceValues {
		if raw == choice || (caseInsensitive && strings.EqualFold(raw, choice)) {
			return nil
		}
	}
	return arglex.TypeConversion{
		Label: spec.Label(), IsPositional: spec.IsPositional(),
		Range: spec.Index.String(), Index: -1, Value: raw, Type: elementTypeName(spec),
	}
}

func (st *state) consumePositional(word string) error {
	specs := st.cur.PositionalAt(st.positionalCount)
	st.i++
	st.positionalCount++

	if len(specs) == 0 {
		st.result.Unmatched = append(st.result.Unmatched, word)
		return nil
	}
	spec := specs[0]

	if err := st.checkChoice(spec, word, st.cur.ParserConfig); err != nil {
		return err
	}
	index := len(st.result.raw[spec])
	value, err := st.p.convertScalar(spec, word, index)
	if err != nil {
		return err
	}
	st.result.record(spec, word, value)
	return nil
}

func (st *state) checkRequired() error {
	if st.sawHelp {
		return nil
	}
	var missing []string
	for _, cmd := range st.result.Chain {
		for _, opt := range cmd.Options() {
			if opt.Required && !st.result.Seen(opt) {
				missing = append(missing, opt.Label())
			}
		}
		for _, pos := range cmd.Positionals() {
			min := pos.Arity.Min
			if !pos.IsMultiValue() && min == 0 {
				min = 1
			}
			if st.result.Occurrences(pos) < min {
				missing = append(missing, pos.Label())
			}
		}
	}
	if len(missing) > 0 {
		return arglex.MissingParameter{Labels: missing}
	}
	return nil
}

// splitPrefix returns the longest matching prefix (prefixes is already
// sorted longest-first by newConfig) and the remainder of word.
func splitPrefix(word string, prefixes []string) (prefix, rest string) {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			return p, word[len(p):]
		}
	}
	return "", word
}

func separatorOrDefault(sep string) string {
	if sep == "" {
		return "="
	}
	return sep
}
