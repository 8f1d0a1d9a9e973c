// commandspec.go - a command node: owned options, positional list,
// subcommand map, parser configuration, mixins, default-value provider.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

// ParserConfig is the enumerated parser configuration of §6. Zero value
// is not usable directly as a parser's configuration; use
// DefaultParserConfig for GNU-ish defaults.
type ParserConfig struct {
	// Separator is the character between an option name and its
	// attached operand. Default "=".
	Separator string

	// EndOfOptionsDelimiter forces positional mode for every
	// subsequent word. Default "--".
	EndOfOptionsDelimiter string

	// StopAtPositional: after the first positional is consumed, treat
	// every remaining word as positional even if it looks like an
	// option.
	StopAtPositional bool

	// OverwrittenOptionsAllowed permits a scalar option to be given
	// more than once without error.
	OverwrittenOptionsAllowed bool

	// UnmatchedArgumentsAllowed suppresses the end-of-parse error for
	// non-empty unmatched word lists.
	UnmatchedArgumentsAllowed bool

	// ExpandAtFiles replaces any "@path" token with the
	// whitespace-tokenized contents of path before parsing begins.
	ExpandAtFiles bool

	// CaseInsensitiveEnumValuesAllowed compares enum conversion values
	// case-folded.
	CaseInsensitiveEnumValuesAllowed bool

	// TrimQuotes strips enclosing quotes from split values.
	TrimQuotes bool

	// SplitQuotedStrings applies the split regex through quoted
	// substrings instead of treating them atomically.
	SplitQuotedStrings bool

	// LimitSplit makes arity limit the number of post-split values,
	// not just the number of outer captured words.
	LimitSplit bool

	// AritySatisfiedByAttachedOptionParam lets a single attached
	// operand satisfy any arity whose minimum is <= 1, even when the
	// maximum is greater than 1 (commons-cli compatibility mode).
	AritySatisfiedByAttachedOptionParam bool

	// CollectErrors switches from strict (first error aborts) to
	// lenient (errors accumulate, parsing continues best-effort) mode.
	CollectErrors bool
}

// DefaultParserConfig returns the GNU-ish default configuration: "="
// separator, "--" end-of-options delimiter, strict mode, every other
// flag off.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		Separator:             "=",
		EndOfOptionsDelimiter: "--",
	}
}

// DefaultValueProviderFunc supplies a default value for an ArgSpec lacking
// one. Per §9, an error or a false second return is equivalent: the value
// is treated as absent and the next layer of precedence applies.
type DefaultValueProviderFunc func(spec *ArgSpec) (value string, ok bool)

// CommandSpec is a single node of the command tree: its own options,
// positional parameters, subcommands, parser configuration, mixins, and
// default-value provider. Built once via [NewCommandSpec] and immutable
// thereafter; concurrent parses against one CommandSpec are safe as long
// as each parse owns its own ParseResult.
type CommandSpec struct {
	// Name is this command's primary name.
	Name string

	// Aliases are additional names this command may be invoked by,
	// resolved at subcommand-match time exactly like Name.
	Aliases []string

	// Parent is a relation used only for scoped option lookup during
	// long-option resolution; it is never a lifetime root and must not
	// be used to reach child commands.
	Parent *CommandSpec

	options        map[string]*ArgSpec // every declared name -> its spec
	optionList     []*ArgSpec          // insertion order, one entry per spec
	positionals    []*ArgSpec          // declaration order
	subcommands    map[string]*CommandSpec
	subcommandList []string // insertion order of primary names
	aliasIndex     map[string]string // alias -> primary name
	mixins         map[string]*CommandSpec
	mixinOrder     []string
	negatedNames   map[string]bool // option name -> true for an auto-generated "--no-x" synonym

	// ParserConfig governs parsing while this command is the current
	// one. It is not inherited: Build does not copy it into subcommands,
	// and each subcommand is parsed under its own ParserConfig.
	ParserConfig ParserConfig

	// DefaultValueProvider supplies defaults for ArgSpecs lacking an
	// explicit DefaultValue.
	DefaultValueProvider DefaultValueProviderFunc
}

// Options returns this command's options in declaration order, mixin
// options first (in mixin order), then the command's own. Does not include
// subcommand or ancestor options.
func (c *CommandSpec) Options() []*ArgSpec {
	return append([]*ArgSpec(nil), c.optionList...)
}

// Positionals returns this command's positional parameters in declaration
// order.
func (c *CommandSpec) Positionals() []*ArgSpec {
	return append([]*ArgSpec(nil), c.positionals...)
}

// Subcommands returns the subcommand map. Callers must not mutate it;
// use the builder to add subcommands before Build.
func (c *CommandSpec) Subcommands() map[string]*CommandSpec {
	return c.subcommands
}

// SubcommandNames returns subcommand primary names in declaration order.
func (c *CommandSpec) SubcommandNames() []string {
	return append([]string(nil), c.subcommandList...)
}

// LookupOption finds an option by any of its declared names, searching
// this command only (not ancestors, not subcommands).
func (c *CommandSpec) LookupOption(name string) (*ArgSpec, bool) {
	spec, ok := c.options[name]
	return spec, ok
}

// LookupOptionScoped finds an option by name, searching this command and
// then each ancestor via Parent, preferring the nearest match. This is
// the "ancestor option lookup during long-option resolution" §9 names as
// the one site Parent is read.
func (c *CommandSpec) LookupOptionScoped(name string) (*ArgSpec, *CommandSpec, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if spec, ok := cur.options[name]; ok {
			return spec, cur, true
		}
	}
	return nil, nil, false
}

// IsNegatedOptionName reports whether name is the auto-generated
// "--no-x" synonym of a boolean option declared on this command, as
// opposed to one of its declared names. Callers resolve the owning
// command via LookupOptionScoped first.
func (c *CommandSpec) IsNegatedOptionName(name string) bool {
	return c.negatedNames[name]
}

// LookupSubcommand resolves name against this command's subcommand
// primary names and aliases.
func (c *CommandSpec) LookupSubcommand(name string) (*CommandSpec, bool) {
	if sub, ok := c.subcommands[name]; ok {
		return sub, true
	}
	if primary, ok := c.aliasIndex[name]; ok {
		sub, ok := c.subcommands[primary]
		return sub, ok
	}
	return nil, false
}

// PositionalAt returns every positional spec whose index range contains
// position p, per §3's "set of positional consumers for word at position
// p is those specs whose range contains p".
func (c *CommandSpec) PositionalAt(p int) []*ArgSpec {
	var out []*ArgSpec
	for _, spec := range c.positionals {
		if spec.Index.Contains(p) {
			out = append(out, spec)
		}
	}
	return out
}

// Mixins returns the mixin slot -> CommandSpec map.
func (c *CommandSpec) Mixins() map[string]*CommandSpec {
	return c.mixins
}
