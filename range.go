// range.go - closed integer interval used for arity and positional index ranges.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a closed integer interval used both for an [ArgSpec]'s arity and
// for a [PositionalParamSpec]'s index. The textual form is "n" (a degenerate
// range), "m..n", or "m..*" (an unbounded range).
type Range struct {
	// Min is the inclusive lower bound.
	Min int

	// Max is the inclusive upper bound. When Variable is true, Max is
	// math.MaxInt and should be treated as unbounded.
	Max int

	// Variable is true when the range was declared with a "*" upper bound.
	Variable bool

	// Unspecified marks a [Range] as not given explicitly: CommandSpec
	// construction replaces such an arity with the inferred one (see
	// [InferArity]). No constructor in this package sets it.
	Unspecified bool

	// originalSpec is the textual form this [Range] was parsed from, kept
	// so that error messages and round-tripping can reproduce it exactly.
	originalSpec string
}

// ErrInvalidRange indicates that a textual range failed to parse.
type ErrInvalidRange struct {
	// Spec is the offending textual range.
	Spec string

	// Reason is a short, human-readable explanation.
	Reason string
}

var _ error = ErrInvalidRange{}

// Error returns a string representation of this error.
func (err ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range %q: %s", err.Spec, err.Reason)
}

// ParseRange parses a textual range into a [Range]. Accepted forms are
// "n", "m..n", and "m..*". Any negative bound or min > max is rejected
// with [ErrInvalidRange].
func ParseRange(spec string) (Range, error) {
	if spec == "" {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "empty range"}
	}

	if !strings.Contains(spec, "..") {
		n, err := strconv.Atoi(spec)
		if err != nil {
			return Range{}, ErrInvalidRange{Spec: spec, Reason: "not an integer"}
		}
		if n < 0 {
			return Range{}, ErrInvalidRange{Spec: spec, Reason: "negative bound"}
		}
		return Range{Min: n, Max: n, originalSpec: spec}, nil
	}

	parts := strings.SplitN(spec, "..", 2)
	if len(parts) != 2 {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "malformed m..n form"}
	}
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "non-integer lower bound"}
	}
	if lo < 0 {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "negative bound"}
	}
	if parts[1] == "*" {
		return Range{Min: lo, Max: math.MaxInt, Variable: true, originalSpec: spec}, nil
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "non-integer upper bound"}
	}
	if hi < 0 {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "negative bound"}
	}
	if lo > hi {
		return Range{}, ErrInvalidRange{Spec: spec, Reason: "min > max"}
	}
	return Range{Min: lo, Max: hi, originalSpec: spec}, nil
}

// MustParseRange is like [ParseRange] but panics on error. Intended for
// static ranges declared in Go source, not for user-facing input.
func MustParseRange(spec string) Range {
	r, err := ParseRange(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// FixedRange returns the degenerate range [n..n].
func FixedRange(n int) Range {
	return Range{Min: n, Max: n}
}

// BoundedRange returns the range [min..max].
func BoundedRange(min, max int) Range {
	return Range{Min: min, Max: max}
}

// VariableRange returns the unbounded range [min..*].
func VariableRange(min int) Range {
	return Range{Min: min, Max: math.MaxInt, Variable: true}
}

// String returns the textual form of this [Range], reconstructing it from
// (Min, Max, Variable) when it was not parsed from text.
func (r Range) String() string {
	if r.originalSpec != "" {
		return r.originalSpec
	}
	switch {
	case r.Variable:
		return fmt.Sprintf("%d..*", r.Min)
	case r.Min == r.Max:
		return strconv.Itoa(r.Min)
	default:
		return fmt.Sprintf("%d..%d", r.Min, r.Max)
	}
}

// Contains reports whether p falls within this [Range], inclusive.
func (r Range) Contains(p int) bool {
	return p >= r.Min && (r.Variable || p <= r.Max)
}

// Equal reports equality by (Min, Max) only, per spec.
func (r Range) Equal(other Range) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// IsFixed reports whether this [Range] has Min == Max (a single value).
func (r Range) IsFixed() bool {
	return !r.Variable && r.Min == r.Max
}

// ArityKind distinguishes the target shape an [ArgSpec] binds into.
type ArityKind int

const (
	// ArityKindScalar is a single-valued target (string, int, bool, ...).
	ArityKindScalar ArityKind = iota

	// ArityKindMulti is an array/collection/map-valued target.
	ArityKindMulti
)

// InferArity infers the [Range] arity for an [ArgSpec] lacking an explicit
// declaration, per spec.md §4.1:
//
//   - boolean-typed option -> 0
//   - any other scalar option -> 1
//   - array/collection option -> 1
//   - scalar positional -> 1
//   - array/collection positional -> 0..1
func InferArity(kind ArityKind, isPositional bool, isBoolean bool) Range {
	switch {
	case !isPositional && isBoolean:
		return FixedRange(0)
	case !isPositional && kind == ArityKindScalar:
		return FixedRange(1)
	case !isPositional && kind == ArityKindMulti:
		return FixedRange(1)
	case isPositional && kind == ArityKindScalar:
		return FixedRange(1)
	default: // isPositional && kind == ArityKindMulti
		return BoundedRange(0, 1)
	}
}
