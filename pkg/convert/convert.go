// Package convert implements the pluggable type-converter registry: a
// process-wide default map of converters keyed by type name, with
// per-registry exclusion support and a per-argument override lookup.
// SPDX-License-Identifier: GPL-3.0-or-later
package convert

import (
	"fmt"
	"reflect"

	"github.com/alexflint/go-scalar"
)

// Converter converts a single raw string operand into a typed value, or
// fails. Implementations should be stateless and safe for concurrent use.
type Converter interface {
	// Convert parses raw and returns the typed value.
	Convert(raw string) (any, error)

	// TypeName is the human-readable name used in error messages
	// ("'aa' is not a <TypeName>") and in registry lookups.
	TypeName() string
}

// FuncConverter adapts a plain function plus a type name into a Converter.
type FuncConverter struct {
	Name string
	Fn   func(raw string) (any, error)
}

var _ Converter = FuncConverter{}

// Convert implements Converter.
func (c FuncConverter) Convert(raw string) (any, error) { return c.Fn(raw) }

// TypeName implements Converter.
func (c FuncConverter) TypeName() string { return c.Name }

// ConversionError reports that raw could not be converted to the named
// type. It carries no offending-spec context; callers (pkg/parser,
// the arglex root package) wrap it with TypeConversion for that.
type ConversionError struct {
	Raw  string
	Type string
	Err  error
}

var _ error = ConversionError{}

// Error returns a string representation of this error.
func (e ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("'%s' is not a %s: %v", e.Raw, e.Type, e.Err)
	}
	return fmt.Sprintf("'%s' is not a %s", e.Raw, e.Type)
}

// Unwrap returns the underlying conversion failure, if any.
func (e ConversionError) Unwrap() error { return e.Err }

// ScalarConverter wraps github.com/alexflint/go-scalar, which already
// handles every Go primitive, its boxed pointer form, string, bool, and
// any type implementing encoding.TextUnmarshaler or go-scalar's own
// Setter-style interfaces. It is the fallback converter for any type name
// matching a reflect.Kind the library understands.
type ScalarConverter struct {
	Name string
	New  func() reflect.Value
}

var _ Converter = ScalarConverter{}

// Convert implements Converter by delegating to scalar.ParseValue against
// a freshly allocated reflect.Value of the configured type.
func (c ScalarConverter) Convert(raw string) (any, error) {
	v := c.New()
	if err := scalar.ParseValue(v, raw); err != nil {
		return nil, ConversionError{Raw: raw, Type: c.Name, Err: err}
	}
	return v.Interface(), nil
}

// TypeName implements Converter.
func (c ScalarConverter) TypeName() string { return c.Name }

// ConvertInto is a convenience for callers that already hold a
// settable reflect.Value and want go-scalar's behavior directly, including
// its encoding.TextUnmarshaler support, without going through the named
// registry.
func ConvertInto(v reflect.Value, raw string) error {
	return scalar.ParseValue(v, raw)
}
