// target.go - the three binding destinations named by §4.4: a field
// reference, a setter reference, or a slot in an immutable builder.
// Grounded on gyf304-go-arg's path (root index + field-name chain,
// resolved via reflect.Value.FieldByName); Setter and Builder targets are
// new relative to go-arg, which only supports fields.
// SPDX-License-Identifier: GPL-3.0-or-later
package bind

import (
	"fmt"
	"reflect"
)

// TargetKind discriminates the three variants of Target.
type TargetKind int

const (
	// TargetKindField assigns directly into a struct field, addressed by
	// a dotted path from a root pointer (mirrors go-arg's path).
	TargetKindField TargetKind = iota

	// TargetKindSetter invokes a named setter method instead of touching
	// a field directly.
	TargetKindSetter

	// TargetKindBuilderSlot writes into a named slot of an immutable
	// builder, collected until the builder is finalized by its own
	// construction method (outside this package's scope).
	TargetKindBuilderSlot
)

// Setter receives a bound value by method call instead of field
// assignment. Name is the ArgSpec's label, for setters that dispatch on
// more than one argument.
type Setter interface {
	SetArg(name string, value any) error
}

// BuilderSink receives a bound value into a named slot, the reflection-free
// equivalent of an immutable builder's fluent setter chain.
type BuilderSink interface {
	SetSlot(slot string, value any) error
}

// Target names one destination a converted value is applied to.
type Target struct {
	Kind TargetKind

	// Root is the addressable struct pointer a TargetKindField path
	// walks from.
	Root reflect.Value

	// Fields is the dotted field-name chain (e.g. ["Server", "Port"]
	// for an embedded struct), resolved the same way go-arg's
	// p.val(dest) does.
	Fields []string

	// Setter is invoked for TargetKindSetter.
	Setter Setter

	// Sink and Slot are used for TargetKindBuilderSlot.
	Sink BuilderSink
	Slot string
}

// FieldTarget builds a Target that assigns into root's field chain. root
// must be a non-nil pointer to a struct.
func FieldTarget(root any, fields ...string) Target {
	return Target{Kind: TargetKindField, Root: reflect.ValueOf(root), Fields: fields}
}

// SetterTarget builds a Target that invokes setter.SetArg instead of
// touching a field.
func SetterTarget(setter Setter) Target {
	return Target{Kind: TargetKindSetter, Setter: setter}
}

// BuilderSlotTarget builds a Target that writes into a named builder slot.
func BuilderSlotTarget(sink BuilderSink, slot string) Target {
	return Target{Kind: TargetKindBuilderSlot, Sink: sink, Slot: slot}
}

// resolveField walks fields from root, allocating through nil pointers
// along the way, exactly as go-arg's (*Parser).val does.
func resolveField(root reflect.Value, fields []string) (reflect.Value, error) {
	v := root
	if len(fields) == 0 && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("bind: root pointer is nil")
		}
		return v.Elem(), nil
	}
	for _, name := range fields {
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("bind: cannot allocate through unaddressable nil pointer")
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return reflect.Value{}, fmt.Errorf("bind: no field named %q", name)
		}
	}
	return v, nil
}
