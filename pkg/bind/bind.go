// bind.go - applies a ParseResult's captured values to their Target,
// including the default-value precedence rule (literal, then provider,
// then the target's own initial value) and the multi-value
// replace/reuse rule of §4.4.
// SPDX-License-Identifier: GPL-3.0-or-later
package bind

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arglex/arglex"
	"github.com/arglex/arglex/pkg/convert"
	"github.com/arglex/arglex/pkg/parser"
)

// Binder applies bound values from a ParseResult to user targets.
//
// The zero value is ready to use; it falls back to convert.Default() for
// resolving default-value literals against a spec's element type.
type Binder struct {
	// Converters overrides convert.Default() for default-value
	// resolution. Leave nil to use the process-wide registry.
	Converters *convert.Registry
}

func (b *Binder) registry() (*convert.Registry, error) {
	if b.Converters != nil {
		return b.Converters, nil
	}
	return convert.Default()
}

// Bind applies spec's captured (or defaulted) values from result to
// target. provider supplies a command-level default when spec carries no
// literal DefaultValue; pass the owning CommandSpec's DefaultValueProvider.
//
// When neither a value was captured nor a default resolves, Bind is a
// no-op: the target keeps whatever initial value it already held, per
// §4.4's three-tier precedence (literal, provider, initial value).
func (b *Binder) Bind(spec *arglex.ArgSpec, provider arglex.DefaultValueProviderFunc, result *parser.ParseResult, target Target) error {
	values := result.ConvertedValues(spec)

	if len(values) == 0 {
		raw, ok := defaultRaw(spec, provider)
		if !ok {
			return nil
		}
		value, err := b.convertDefault(spec, raw)
		if err != nil {
			return nil // a bad provider/default is swallowed, per §4.4
		}
		values = []any{value}
	}

	switch target.Kind {
	case TargetKindField:
		return b.assignField(spec, target, values)
	case TargetKindSetter:
		return target.Setter.SetArg(spec.Label(), lastOrAll(spec, values))
	case TargetKindBuilderSlot:
		return target.Sink.SetSlot(target.Slot, lastOrAll(spec, values))
	default:
		return fmt.Errorf("bind: unknown target kind %d", target.Kind)
	}
}

// lastOrAll returns the single last value for a scalar spec, or the full
// ordered slice for a multi-value spec.
func lastOrAll(spec *arglex.ArgSpec, values []any) any {
	if !spec.IsMultiValue() {
		return values[len(values)-1]
	}
	return values
}

func defaultRaw(spec *arglex.ArgSpec, provider arglex.DefaultValueProviderFunc) (string, bool) {
	if spec.DefaultValue != nil {
		return *spec.DefaultValue, true
	}
	if provider != nil {
		if v, ok := provider(spec); ok {
			return v, true
		}
	}
	return "", false
}

// convertDefault converts a literal/provider-supplied default string
// against spec's element type, mirroring pkg/parser/convert.go's
// elementTypeName + registry lookup (small intentional duplication: this
// package must not import pkg/parser's unexported conversion helpers, and
// the logic is a few lines).
func (b *Binder) convertDefault(spec *arglex.ArgSpec, raw string) (any, error) {
	if spec.Converter != nil {
		return spec.Converter.Convert(raw)
	}
	reg, err := b.registry()
	if err != nil {
		return nil, err
	}
	typeName := elementTypeName(spec)
	conv, ok := reg.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("bind: no converter registered for type %q", typeName)
	}
	return conv.Convert(raw)
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

func (b *Binder) assignField(spec *arglex.ArgSpec, target Target, values []any) error {
	fv, err := resolveField(target.Root, target.Fields)
	if err != nil {
		return err
	}
	if !fv.CanSet() {
		return fmt.Errorf("bind: field %q is not settable", strings.Join(target.Fields, "."))
	}

	if !spec.IsMultiValue() {
		return assignScalar(fv, values[len(values)-1])
	}
	if spec.IsMap() {
		return assignMap(fv, values)
	}
	return assignSlice(fv, values)
}

func assignScalar(fv reflect.Value, value any) error {
	rv := reflect.ValueOf(value)
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	if !rv.Type().AssignableTo(fv.Type()) {
		if !rv.Type().ConvertibleTo(fv.Type()) {
			return fmt.Errorf("bind: cannot assign %s into %s", rv.Type(), fv.Type())
		}
		rv = rv.Convert(fv.Type())
	}
	fv.Set(rv)
	return nil
}

// assignSlice replaces the contents of a slice-valued field, reusing a
// pre-existing nonempty slice's reference (truncate-then-append, mirroring
// go-arg's setSlice) rather than allocating a fresh one when one is
// already present.
func assignSlice(fv reflect.Value, values []any) error {
	if fv.Kind() != reflect.Slice {
		return fmt.Errorf("bind: expected a slice field, got %s", fv.Kind())
	}
	elemType := fv.Type().Elem()

	if fv.IsNil() {
		fv.Set(reflect.MakeSlice(fv.Type(), 0, len(values)))
	} else {
		fv.SetLen(0)
	}
	for _, value := range values {
		rv := reflect.ValueOf(value)
		if !rv.Type().AssignableTo(elemType) {
			if !rv.Type().ConvertibleTo(elemType) {
				return fmt.Errorf("bind: cannot assign %s into slice of %s", rv.Type(), elemType)
			}
			rv = rv.Convert(elemType)
		}
		fv.Set(reflect.Append(fv, rv))
	}
	return nil
}

// assignMap replaces the contents of a map-valued field: reuses a
// pre-existing nonempty map's reference but clears every key first, then
// inserts each captured parser.MapEntry in capture order (Go's native map
// type itself carries no order guarantee on iteration).
func assignMap(fv reflect.Value, values []any) error {
	if fv.Kind() != reflect.Map {
		return fmt.Errorf("bind: expected a map field, got %s", fv.Kind())
	}
	keyType, valueType := fv.Type().Key(), fv.Type().Elem()

	if fv.IsNil() {
		fv.Set(reflect.MakeMapWithSize(fv.Type(), len(values)))
	} else {
		for _, key := range fv.MapKeys() {
			fv.SetMapIndex(key, reflect.Value{})
		}
	}
	for _, value := range values {
		entry, ok := value.(parser.MapEntry)
		if !ok {
			return fmt.Errorf("bind: expected a parser.MapEntry, got %T", value)
		}
		key := reflect.ValueOf(entry.Key)
		if !key.Type().AssignableTo(keyType) {
			key = key.Convert(keyType)
		}
		val := reflect.ValueOf(entry.Value)
		if !val.Type().AssignableTo(valueType) {
			val = val.Convert(valueType)
		}
		fv.SetMapIndex(key, val)
	}
	return nil
}
