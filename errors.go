// errors.go - error taxonomy shared by model construction and parsing.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"fmt"
	"strings"
)

// InitializationError reports that a CommandSpec failed to build: an
// option without names, a duplicate option name, an illegal arity or index
// range on a scalar spec, overlapping positional index ranges, or a
// duplicate subcommand name or alias. Raised only at model build time,
// never while parsing. A malformed textual range is reported by
// [ParseRange] as [ErrInvalidRange] instead.
type InitializationError struct {
	// Command names the CommandSpec under construction, if known.
	Command string

	// Reason is a short, human-readable explanation.
	Reason string
}

var _ error = InitializationError{}

// Error returns a string representation of this error.
func (err InitializationError) Error() string {
	if err.Command == "" {
		return fmt.Sprintf("invalid command specification: %s", err.Reason)
	}
	return fmt.Sprintf("invalid command specification for %q: %s", err.Command, err.Reason)
}

// MissingParameter reports that one or more required ArgSpecs were never
// satisfied: an absent required option, or an arity window closed below
// its minimum.
type MissingParameter struct {
	// Labels names the offending ArgSpecs, in the order they were
	// discovered to be missing.
	Labels []string
}

var _ error = MissingParameter{}

// Error returns a string representation of this error.
func (err MissingParameter) Error() string {
	switch len(err.Labels) {
	case 0:
		return "Missing required parameter"
	case 1:
		return fmt.Sprintf("Missing required parameter: %s", err.Labels[0])
	default:
		return fmt.Sprintf("Missing required parameters: %s", strings.Join(err.Labels, ", "))
	}
}

// UnmatchedArgument reports words the parser could not consume.
type UnmatchedArgument struct {
	// Words is the list of unconsumed tokens, in encounter order.
	Words []string
}

var _ error = UnmatchedArgument{}

// Error returns a string representation of this error.
func (err UnmatchedArgument) Error() string {
	return fmt.Sprintf("unmatched argument%s: %s", plural(len(err.Words)), strings.Join(err.Words, ", "))
}

// OverwrittenOption reports that a scalar option was repeated while
// overwrites were disallowed.
type OverwrittenOption struct {
	// Label names the offending option.
	Label string
}

var _ error = OverwrittenOption{}

// Error returns a string representation of this error.
func (err OverwrittenOption) Error() string {
	return fmt.Sprintf("option %q should not be specified more than once", err.Label)
}

// TypeConversion reports that a raw operand failed conversion for the
// target type of an ArgSpec.
type TypeConversion struct {
	// Label names the offending option or positional parameter.
	Label string

	// IsPositional is true when Label refers to a positional parameter.
	IsPositional bool

	// Index is set when the failing value belongs to a multi-value
	// ArgSpec; -1 means "not applicable".
	Index int

	// Range is the textual index range of the positional, when
	// IsPositional is true.
	Range string

	// Value is the raw string that failed to convert.
	Value string

	// Type is the human-readable target type name.
	Type string
}

var _ error = TypeConversion{}

// Error returns a string representation of this error.
func (err TypeConversion) Error() string {
	var b strings.Builder
	if err.IsPositional {
		fmt.Fprintf(&b, "Invalid value for positional parameter at index %s (%s): ", err.Range, err.Label)
	} else {
		fmt.Fprintf(&b, "Invalid value for option '%s': ", err.Label)
	}
	fmt.Fprintf(&b, "'%s' is not a %s", err.Value, err.Type)
	if err.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", err.Index)
	}
	return b.String()
}

// ParameterError is the generic parse-time violation bucket for anything
// not already covered by a more specific error type (e.g. a zero-arity
// option given an explicit non-boolean value).
type ParameterError struct {
	// Label names the offending ArgSpec, if any.
	Label string

	// Message is the full human-readable description.
	Message string
}

var _ error = ParameterError{}

// Error returns a string representation of this error.
func (err ParameterError) Error() string {
	return err.Message
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
