// argspec.go - declarative description of a single option or positional
// parameter. Modeled as a tagged variant per §9 Design Notes: a shared
// body struct plus a Kind discriminator, not as inheritance.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"regexp"
	"strings"

	"github.com/arglex/arglex/pkg/convert"
)

// ShowDefault is a tri-state governing whether an ArgSpec's default value
// is shown in generated usage text.
type ShowDefault int

const (
	// ShowDefaultOnDemand shows the default only when the caller asks.
	ShowDefaultOnDemand ShowDefault = iota

	// ShowDefaultAlways always includes the default in usage text.
	ShowDefaultAlways

	// ShowDefaultNever never includes the default in usage text.
	ShowDefaultNever
)

// ArgKind discriminates the two variants of [ArgSpec].
type ArgKind int

const (
	// ArgKindOption is a named, prefix-recognized argument.
	ArgKindOption ArgKind = iota

	// ArgKindPositional is an unnamed, index-recognized argument.
	ArgKindPositional
)

// ArgSpec is the declarative specification of one argument: an option or a
// positional parameter. The two variants share this body; Kind says which
// one this value is, and only the fields documented for that Kind are
// meaningful (Names/index-range are the discriminating fields in practice).
type ArgSpec struct {
	// Kind says whether this is an option or a positional parameter.
	Kind ArgKind

	// Names holds option names (for ArgKindOption only); empty for
	// positionals. Every name must start with a recognized prefix: a
	// single hyphen (short-style, exactly two characters including the
	// prefix), two hyphens (long-style), or another configured prefix
	// such as "+" or "/" (treated as long-style for matching).
	Names []string

	// Index is the positional index range (ArgKindPositional only).
	// When left as the zero Range, it is assigned by declaration order
	// during CommandSpec construction: the i-th positional gets index
	// i if scalar, else i..*.
	Index Range

	// ParamLabel is the display name used in usage text and error
	// messages. If empty, one is synthesized from Names or Index.
	ParamLabel string

	// Type names the element type (e.g. "string", "int", "bool",
	// "File"). AuxiliaryTypes holds element or key/value types for
	// collection- and map-typed specs.
	Type           string
	AuxiliaryTypes []string

	// Arity is the operand-count range this spec consumes per
	// occurrence. The zero value means "unspecified"; callers should
	// use InferArity via CommandSpec construction to fill it in.
	Arity Range

	// Required marks a must-appear-somewhere constraint, independent of
	// Arity.Min > 0 (which is a must-appear-at-point-of-use constraint
	// once the option is given at all).
	Required bool

	// SplitRegex, if non-empty, is applied to each captured raw operand
	// to yield multiple values before type conversion. Recorded but
	// ignored at parse time for a scalar Type.
	SplitRegex string

	// ChoiceValues, if non-empty, restricts accepted raw values to this
	// ordered set (optionally derived from an enumerated Type).
	ChoiceValues []string

	// DefaultValue is the literal default, if any. Precedence against a
	// CommandSpec-level default provider is: this value, then the
	// provider, then the target's initial value.
	DefaultValue *string

	// ShowDefaultValue governs usage-text rendering of DefaultValue.
	ShowDefaultValue ShowDefault

	// Converter, if set, overrides registry lookup by Type for this
	// spec specifically.
	Converter convert.Converter

	// Hidden excludes this spec from usage text and completion
	// candidates, without affecting parsing.
	Hidden bool

	// CaseInsensitiveEnum mirrors the parser-wide
	// caseInsensitiveEnumValuesAllowed flag but may be set per-spec to
	// override it.
	CaseInsensitiveEnum bool

	// Help marks this option as a help flag: when seen during parsing,
	// it suppresses MissingParameter errors for the remainder of the
	// matched command chain (§4.3 "Requiredness").
	Help bool

	splitRegexCompiled *regexp.Regexp
}

// IsOption reports whether this ArgSpec is an option.
func (a *ArgSpec) IsOption() bool { return a.Kind == ArgKindOption }

// IsPositional reports whether this ArgSpec is a positional parameter.
func (a *ArgSpec) IsPositional() bool { return a.Kind == ArgKindPositional }

// IsMultiValue reports whether this ArgSpec's Type is a collection or map,
// as opposed to a scalar. Determined by the Type spelling ("[]T" or
// "map[K]V") or by AuxiliaryTypes being set; Arity alone never makes a
// scalar type multi-valued (arity > 1 on a scalar type is an
// InitializationError, see build.go).
func (a *ArgSpec) IsMultiValue() bool {
	if len(a.AuxiliaryTypes) > 0 {
		return true
	}
	return strings.HasPrefix(a.Type, "[]") || strings.HasPrefix(a.Type, "map[")
}

// IsBoolean reports whether this ArgSpec's Type is boolean.
func (a *ArgSpec) IsBoolean() bool {
	return strings.EqualFold(a.Type, "bool") || strings.EqualFold(a.Type, "boolean")
}

// IsMap reports whether this ArgSpec's Type is a map, i.e. it is spelled
// "map[K]V" or declares two AuxiliaryTypes (key, value).
func (a *ArgSpec) IsMap() bool {
	return strings.HasPrefix(a.Type, "map[") || len(a.AuxiliaryTypes) == 2
}

// Label returns the display label used in error messages: the first
// option name, or the synthesized/explicit ParamLabel for a positional.
func (a *ArgSpec) Label() string {
	if a.ParamLabel != "" {
		return a.ParamLabel
	}
	if a.IsOption() && len(a.Names) > 0 {
		return a.Names[0]
	}
	return a.synthesizeLabel()
}

func (a *ArgSpec) synthesizeLabel() string {
	if a.IsOption() {
		return "<option>"
	}
	switch {
	case a.Type != "":
		return strings.ToUpper(a.Type)
	default:
		return "ARG"
	}
}

// CompiledSplitRegex lazily compiles and caches SplitRegex. It returns nil,
// nil when SplitRegex is empty.
func (a *ArgSpec) CompiledSplitRegex() (*regexp.Regexp, error) {
	if a.SplitRegex == "" {
		return nil, nil
	}
	if a.splitRegexCompiled != nil {
		return a.splitRegexCompiled, nil
	}
	re, err := regexp.Compile(a.SplitRegex)
	if err != nil {
		return nil, err
	}
	a.splitRegexCompiled = re
	return re, nil
}

// IsShortName reports whether name is a short-style option name: a single
// hyphen prefix and exactly two characters total.
func IsShortName(name string) bool {
	return len(name) == 2 && strings.HasPrefix(name, "-") && !strings.HasPrefix(name, "--")
}

// IsLongName reports whether name is long-style for matching purposes: it
// is the negation of IsShortName, so a two-hyphen name, a name with
// another prefix such as "+" or "/", and any other non-short name all
// count as long-style. The prefix itself is not checked.
func IsLongName(name string) bool {
	return !IsShortName(name)
}

// OptionSpec is a convenience constructor returning an *ArgSpec configured
// as an option with the given names.
func OptionSpec(names ...string) *ArgSpec {
	return &ArgSpec{Kind: ArgKindOption, Names: append([]string(nil), names...)}
}

// PositionalParamSpec is a convenience constructor returning an *ArgSpec
// configured as a positional parameter at the given index range.
func PositionalParamSpec(index Range) *ArgSpec {
	return &ArgSpec{Kind: ArgKindPositional, Index: index}
}
