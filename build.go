// build.go - the CommandSpec builder: programmatic construction with
// validate-at-build diagnostics, per §9 option (b) ("an explicit builder
// API used directly by the application author") since Go has no runtime
// annotation-reflection equivalent to the source's.
// SPDX-License-Identifier: GPL-3.0-or-later

package arglex

import (
	"fmt"
	"sort"
	"strings"
)

// CommandSpecBuilder accumulates options, positionals, subcommands, and
// mixins for one command node, then validates and freezes them into a
// *CommandSpec via Build.
//
// The zero value is not ready to use; create one with NewCommandSpec.
type CommandSpecBuilder struct {
	name         string
	aliases      []string
	options      []*ArgSpec
	positionals  []*ArgSpec
	subcommands  []*CommandSpec
	mixins       map[string]*CommandSpec
	mixinOrder   []string
	parserConfig *ParserConfig
	provider     DefaultValueProviderFunc
}

// NewCommandSpec starts building a CommandSpec named name.
func NewCommandSpec(name string) *CommandSpecBuilder {
	return &CommandSpecBuilder{name: name, mixins: make(map[string]*CommandSpec)}
}

// Aliases adds additional invocation names for this command.
func (b *CommandSpecBuilder) Aliases(aliases ...string) *CommandSpecBuilder {
	b.aliases = append(b.aliases, aliases...)
	return b
}

// AddOption registers an option ArgSpec. Panics if spec is nil or is not
// an option; construction-time user errors from malformed specs are
// instead surfaced by Build, since a *nil* or *wrong-kind* spec is a
// caller bug, not a user-facing schema mistake.
func (b *CommandSpecBuilder) AddOption(spec *ArgSpec) *CommandSpecBuilder {
	if spec == nil || !spec.IsOption() {
		panic("arglex: AddOption requires a non-nil option ArgSpec")
	}
	b.options = append(b.options, spec)
	return b
}

// AddPositional registers a positional ArgSpec.
func (b *CommandSpecBuilder) AddPositional(spec *ArgSpec) *CommandSpecBuilder {
	if spec == nil || !spec.IsPositional() {
		panic("arglex: AddPositional requires a non-nil positional ArgSpec")
	}
	b.positionals = append(b.positionals, spec)
	return b
}

// AddSubcommand registers a fully built subcommand. Its Parent is set to
// this command's freshly built spec at Build time.
func (b *CommandSpecBuilder) AddSubcommand(sub *CommandSpec) *CommandSpecBuilder {
	if sub == nil {
		panic("arglex: AddSubcommand requires a non-nil CommandSpec")
	}
	b.subcommands = append(b.subcommands, sub)
	return b
}

// AddMixin merges mixin's options and positionals into the host command
// at build time, recorded under the given slot name. A mixin appearing as
// a method/constructor parameter in the source (§9) becomes, here, a
// named sub-structure attached via this call.
func (b *CommandSpecBuilder) AddMixin(slot string, mixin *CommandSpec) *CommandSpecBuilder {
	if mixin == nil {
		panic("arglex: AddMixin requires a non-nil CommandSpec")
	}
	if _, exists := b.mixins[slot]; !exists {
		b.mixinOrder = append(b.mixinOrder, slot)
	}
	b.mixins[slot] = mixin
	return b
}

// WithParserConfig sets this command's parser configuration explicitly.
// If never called, Build uses DefaultParserConfig.
func (b *CommandSpecBuilder) WithParserConfig(cfg ParserConfig) *CommandSpecBuilder {
	b.parserConfig = &cfg
	return b
}

// WithDefaultValueProvider sets the default-value callback.
func (b *CommandSpecBuilder) WithDefaultValueProvider(fn DefaultValueProviderFunc) *CommandSpecBuilder {
	b.provider = fn
	return b
}

// Build validates every invariant from §3 and returns the immutable
// *CommandSpec, or an [InitializationError] naming the first (in
// deterministic order) violation found. It never panics on a user-schema
// mistake.
func (b *CommandSpecBuilder) Build() (*CommandSpec, error) {
	spec := &CommandSpec{
		Name:         b.name,
		Aliases:      append([]string(nil), b.aliases...),
		options:      make(map[string]*ArgSpec),
		subcommands:  make(map[string]*CommandSpec),
		aliasIndex:   make(map[string]string),
		mixins:       make(map[string]*CommandSpec),
		negatedNames: make(map[string]bool),
	}
	if b.parserConfig != nil {
		spec.ParserConfig = *b.parserConfig
	} else {
		spec.ParserConfig = DefaultParserConfig()
	}
	spec.DefaultValueProvider = b.provider

	// Merge mixin options/positionals first, in mixin-declaration
	// order, so that a host-declared option/positional with the same
	// name is reported as the conflicting one (it is seen second).
	var allOptions []*ArgSpec
	var allPositionals []*ArgSpec
	for _, slot := range b.mixinOrder {
		mixin := b.mixins[slot]
		spec.mixins[slot] = mixin
		allOptions = append(allOptions, mixin.optionList...)
		allPositionals = append(allPositionals, mixin.positionals...)
	}
	allOptions = append(allOptions, b.options...)
	allPositionals = append(allPositionals, b.positionals...)

	// Collect every declared option name up front, so that a synthesized
	// "--no-x" synonym never shadows a name declared later in the list.
	declared := make(map[string]bool)
	for _, opt := range allOptions {
		for _, name := range opt.Names {
			declared[name] = true
		}
	}

	// Validate and register options.
	for _, opt := range allOptions {
		if len(opt.Names) == 0 {
			return nil, InitializationError{Command: b.name, Reason: "option declares no names"}
		}
		for _, name := range opt.Names {
			if name == "" {
				return nil, InitializationError{Command: b.name, Reason: "option declares an empty name"}
			}
			if _, exists := spec.options[name]; exists {
				return nil, InitializationError{
					Command: b.name,
					Reason:  fmt.Sprintf("duplicate option name %q", name),
				}
			}
		}
		if opt.Arity.Unspecified || (opt.Arity == Range{}) {
			opt.Arity = InferArity(multiValueKind(opt), false, opt.IsBoolean())
		}
		if !opt.IsMultiValue() && !opt.Arity.Variable && opt.Arity.Max > 1 {
			return nil, InitializationError{
				Command: b.name,
				Reason:  fmt.Sprintf("option %q has scalar type %q but arity %s", opt.Names[0], opt.Type, opt.Arity),
			}
		}
		for _, name := range opt.Names {
			spec.options[name] = opt
		}
		if opt.IsBoolean() {
			for _, negated := range negatedSynonyms(opt.Names) {
				if _, exists := spec.options[negated]; exists || declared[negated] {
					continue // caller already declared this name; don't shadow it
				}
				spec.options[negated] = opt
				spec.negatedNames[negated] = true
				opt.Names = append(opt.Names, negated)
			}
		}
		spec.optionList = append(spec.optionList, opt)
	}

	// Validate and assign positional indices.
	nextIndex := 0
	for _, pos := range allPositionals {
		if pos.Index == (Range{}) {
			if pos.IsMultiValue() {
				pos.Index = VariableRange(nextIndex)
			} else {
				pos.Index = FixedRange(nextIndex)
			}
		}
		if !pos.IsMultiValue() && !pos.Index.Variable && pos.Index.Max > pos.Index.Min {
			return nil, InitializationError{
				Command: b.name,
				Reason:  fmt.Sprintf("positional %q has scalar type %q but index range %s", pos.Label(), pos.Type, pos.Index),
			}
		}
		for _, existing := range spec.positionals {
			if rangesOverlap(pos.Index, existing.Index) {
				return nil, InitializationError{
					Command: b.name,
					Reason:  fmt.Sprintf("positional index ranges %s and %s overlap", pos.Index, existing.Index),
				}
			}
		}
		if pos.Arity.Unspecified || (pos.Arity == Range{}) {
			pos.Arity = InferArity(multiValueKind(pos), true, pos.IsBoolean())
		}
		spec.positionals = append(spec.positionals, pos)
		if !pos.Index.Variable && pos.Index.Max+1 > nextIndex {
			nextIndex = pos.Index.Max + 1
		} else if pos.Index.Variable {
			nextIndex = pos.Index.Min + 1
		}
	}

	// Validate and register subcommands.
	for _, sub := range b.subcommands {
		if sub.Name == "" {
			return nil, InitializationError{Command: b.name, Reason: "subcommand declares no name"}
		}
		if _, exists := spec.subcommands[sub.Name]; exists {
			return nil, InitializationError{
				Command: b.name,
				Reason:  fmt.Sprintf("duplicate subcommand name %q", sub.Name),
			}
		}
		sub.Parent = spec
		spec.subcommands[sub.Name] = sub
		spec.subcommandList = append(spec.subcommandList, sub.Name)
		for _, alias := range sub.Aliases {
			if _, exists := spec.aliasIndex[alias]; exists {
				return nil, InitializationError{
					Command: b.name,
					Reason:  fmt.Sprintf("duplicate subcommand alias %q", alias),
				}
			}
			if _, exists := spec.subcommands[alias]; exists {
				return nil, InitializationError{
					Command: b.name,
					Reason:  fmt.Sprintf("subcommand alias %q collides with a subcommand name", alias),
				}
			}
			spec.aliasIndex[alias] = sub.Name
		}
	}

	return spec, nil
}

// negatedSynonyms returns the "--no-x" synonym for every long-style name
// ("--" prefix, not already itself a "--no-" name) in names, per the
// picocli-style negatable boolean option convention: "--flag" gains
// "--no-flag" automatically.
func negatedSynonyms(names []string) []string {
	var out []string
	for _, name := range names {
		if !strings.HasPrefix(name, "--") || strings.HasPrefix(name, "--no-") {
			continue
		}
		out = append(out, "--no-"+name[2:])
	}
	return out
}

func multiValueKind(spec *ArgSpec) ArityKind {
	if spec.IsMultiValue() {
		return ArityKindMulti
	}
	return ArityKindScalar
}

func rangesOverlap(a, b Range) bool {
	aMax, bMax := a.Max, b.Max
	if a.Variable {
		aMax = b.Min + 1<<30
	}
	if b.Variable {
		bMax = a.Min + 1<<30
	}
	return a.Min <= bMax && b.Min <= aMax
}

// sortedNames is a small helper kept for formatting diagnostics and usage
// text deterministically, the same concern the teacher's
// sortedSubcommandNames helper in dispatcher.go addresses.
func sortedNames(m map[string]*ArgSpec) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
