// result.go - the output of one parse invocation.
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import "github.com/arglex/arglex"

// MapEntry is one key/value pair captured by a map-typed ArgSpec,
// converted independently and kept in insertion order.
type MapEntry struct {
	Key   any
	Value any
}

// ParseResult holds everything produced by one Parser.Parse call: the
// matched command chain, the raw and converted values captured per
// ArgSpec, the unmatched-arguments list, and the ordered error list. It
// owns its own state; the CommandSpec tree it references stays
// immutable.
type ParseResult struct {
	// Chain is the matched command chain, root first, followed by any
	// subcommand specs entered.
	Chain []*arglex.CommandSpec

	// Unmatched is every word the parser could not consume, in
	// encounter order.
	Unmatched []string

	order     []*arglex.ArgSpec
	raw       map[*arglex.ArgSpec][]string
	converted map[*arglex.ArgSpec][]any
	seen      map[*arglex.ArgSpec]int // occurrence count, for OverwrittenOption
	errs      []error
}

func newParseResult(root *arglex.CommandSpec) *ParseResult {
	return &ParseResult{
		Chain:     []*arglex.CommandSpec{root},
		raw:       make(map[*arglex.ArgSpec][]string),
		converted: make(map[*arglex.ArgSpec][]any),
		seen:      make(map[*arglex.ArgSpec]int),
	}
}

// Errors returns every error accumulated in lenient (CollectErrors) mode,
// in encounter order. Always empty in strict mode, where the first error
// is instead returned directly from Parse.
func (r *ParseResult) Errors() []error {
	return append([]error(nil), r.errs...)
}

// RawValues returns the ordered raw string operands captured for spec.
func (r *ParseResult) RawValues(spec *arglex.ArgSpec) []string {
	return append([]string(nil), r.raw[spec]...)
}

// ConvertedValues returns the ordered, type-converted values captured for
// spec. A scalar target should read the last element; a multi-value
// target should read the whole slice.
func (r *ParseResult) ConvertedValues(spec *arglex.ArgSpec) []any {
	return append([]any(nil), r.converted[spec]...)
}

// Seen reports whether spec was matched at least once, with or without
// a captured value.
func (r *ParseResult) Seen(spec *arglex.ArgSpec) bool {
	return r.seen[spec] > 0
}

// Occurrences returns how many times spec was matched during this parse.
func (r *ParseResult) Occurrences(spec *arglex.ArgSpec) int {
	return r.seen[spec]
}

// Specs returns every ArgSpec that was matched at least once, in the
// order first encountered.
func (r *ParseResult) Specs() []*arglex.ArgSpec {
	return append([]*arglex.ArgSpec(nil), r.order...)
}

func (r *ParseResult) record(spec *arglex.ArgSpec, raw string, value any) {
	if _, ok := r.raw[spec]; !ok {
		r.order = append(r.order, spec)
	}
	r.raw[spec] = append(r.raw[spec], raw)
	r.converted[spec] = append(r.converted[spec], value)
	r.seen[spec]++
}

func (r *ParseResult) markSeenNoValue(spec *arglex.ArgSpec) {
	if _, ok := r.raw[spec]; !ok {
		r.order = append(r.order, spec)
		r.raw[spec] = nil
		r.converted[spec] = nil
	}
	r.seen[spec]++
}

func (r *ParseResult) resetValues(spec *arglex.ArgSpec) {
	r.raw[spec] = nil
	r.converted[spec] = nil
}

func (r *ParseResult) addError(err error) {
	r.errs = append(r.errs, err)
}
