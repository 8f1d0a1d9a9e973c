// registry.go - the process-wide default converter map, keyed by type
// name, with exclusion-pattern filtering applied once at construction
// time (mirrors the teacher's config.go validate-at-construction idiom).
// SPDX-License-Identifier: GPL-3.0-or-later
package convert

import (
	"reflect"
	"regexp"
	"sync"
)

// Registry is a set of Converters keyed by type name. Register adds to or
// replaces entries in it after construction.
type Registry struct {
	byName map[string]Converter
}

// NewRegistry builds a Registry from the built-in converter set, dropping
// any whose TypeName matches one of the exclude regexes. An invalid regex
// in excludes is itself an error, matching the teacher's validate-once
// pattern of refusing to half-apply a malformed configuration.
func NewRegistry(excludes []string) (*Registry, error) {
	compiled := make([]*regexp.Regexp, 0, len(excludes))
	for _, pattern := range excludes {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}

	byName := make(map[string]Converter, len(builtins()))
	for _, c := range builtins() {
		excluded := false
		for _, re := range compiled {
			if re.MatchString(c.TypeName()) {
				excluded = true
				break
			}
		}
		if !excluded {
			byName[c.TypeName()] = c
		}
	}
	return &Registry{byName: byName}, nil
}

func builtins() []Converter {
	return []Converter{
		ScalarConverter{Name: "string", New: func() reflect.Value { var v string; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "bool", New: func() reflect.Value { var v bool; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "int", New: func() reflect.Value { var v int; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "int8", New: func() reflect.Value { var v int8; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "int16", New: func() reflect.Value { var v int16; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "int32", New: func() reflect.Value { var v int32; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "int64", New: func() reflect.Value { var v int64; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "uint", New: func() reflect.Value { var v uint; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "uint8", New: func() reflect.Value { var v uint8; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "uint16", New: func() reflect.Value { var v uint16; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "uint32", New: func() reflect.Value { var v uint32; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "uint64", New: func() reflect.Value { var v uint64; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "float32", New: func() reflect.Value { var v float32; return reflect.ValueOf(&v).Elem() }},
		ScalarConverter{Name: "float64", New: func() reflect.Value { var v float64; return reflect.ValueOf(&v).Elem() }},
		fileConverter(),
		urlConverter(),
		netAddressConverter(),
		patternConverter(),
		uuidConverter(),
		charsetConverter(),
		timeZoneConverter(),
		byteOrderConverter(),
		bigIntConverter(),
		bigFloatConverter(),
		hhmmssConverter(),
		dateTimeConverter("LocalDate", "2006-01-02"),
		dateTimeConverter("LocalDateTime", "2006-01-02T15:04:05"),
		dateTimeConverter("OffsetDateTime", "2006-01-02T15:04:05Z07:00"),
	}
}

// Lookup returns the converter registered for typeName, if any.
func (r *Registry) Lookup(typeName string) (Converter, bool) {
	c, ok := r.byName[typeName]
	return c, ok
}

// Register adds or replaces the converter for c.TypeName() in this
// registry. Intended for caller-supplied converters (e.g. a wider-syntax
// numeric converter opting into 0x/0o forms) and for adding a date/time
// converter with a layout the built-in set lacks.
func (r *Registry) Register(c Converter) {
	r.byName[c.TypeName()] = c
}

// Names returns every registered type name, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

var (
	// EnvLookup is the indirection used for the one-time, lazy read of
	// the ARGLEX_CONVERTERS_EXCLUDE environment variable. Tests may
	// replace it, the same concern the teacher's ExecEnv abstraction
	// exists to solve, without this package importing the root
	// arglex.ExecEnv type and creating an import cycle.
	EnvLookup func(key string) (string, bool) = defaultEnvLookup

	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the lazily-initialized, process-wide default Registry,
// seeded with ARGLEX_CONVERTERS_EXCLUDE (a comma-separated regex list)
// read through EnvLookup exactly once.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		var excludes []string
		if raw, ok := EnvLookup("ARGLEX_CONVERTERS_EXCLUDE"); ok && raw != "" {
			excludes = splitExcludes(raw)
		}
		defaultRegistry, defaultErr = NewRegistry(excludes)
	})
	return defaultRegistry, defaultErr
}

// ResetDefaultForTesting clears the memoized Default() registry so tests
// can re-exercise initialization under different EnvLookup values.
func ResetDefaultForTesting() {
	defaultOnce = sync.Once{}
	defaultRegistry, defaultErr = nil, nil
}

func splitExcludes(raw string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			if i > start {
				out = append(out, raw[start:i])
			}
			start = i + 1
		}
	}
	return out
}
