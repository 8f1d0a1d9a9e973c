// convert.go - applies the type-converter registry to captured raw
// operands, building the TypeConversion/ParameterError variants named in
// §7, and handles the map key=value rule of §4.2/§4.3 (the enum choice
// check lives in parser.go's checkChoice).
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import (
	"strings"

	"github.com/arglex/arglex"
	"github.com/arglex/arglex/pkg/convert"
)

func elementTypeName(spec *arglex.ArgSpec) string {
	if len(spec.AuxiliaryTypes) == 1 {
		return spec.AuxiliaryTypes[0]
	}
	if strings.HasPrefix(spec.Type, "[]") {
		return spec.Type[2:]
	}
	return spec.Type
}

func mapTypeNames(spec *arglex.ArgSpec) (keyType, valueType string) {
	if len(spec.AuxiliaryTypes) == 2 {
		return spec.AuxiliaryTypes[0], spec.AuxiliaryTypes[1]
	}
	return "string", "string"
}

// convertScalar converts one raw value against spec's element type,
// preferring spec.Converter when set. index < 0 means "not a multi-value
// position" for error-message purposes.
func (p *Parser) convertScalar(spec *arglex.ArgSpec, raw string, index int) (any, error) {
	typeName := elementTypeName(spec)

	var conv convert.Converter
	if spec.Converter != nil {
		conv = spec.Converter
	} else {
		reg, err := p.registry()
		if err != nil {
			return nil, err
		}
		found, ok := reg.Lookup(typeName)
		if !ok {
			return nil, arglex.TypeConversion{
				Label: spec.Label(), IsPositional: spec.IsPositional(),
				Range: spec.Index.String(), Index: index, Value: raw,
				Type: typeName,
			}
		}
		conv = found
	}

	value, err := conv.Convert(raw)
	if err != nil {
		return nil, arglex.TypeConversion{
			Label: spec.Label(), IsPositional: spec.IsPositional(),
			Range: spec.Index.String(), Index: index, Value: raw,
			Type: conv.TypeName(),
		}
	}
	return value, nil
}

// convertMapEntry converts one "key=value" raw operand into a MapEntry,
// converting key and value independently against spec's AuxiliaryTypes.
func (p *Parser) convertMapEntry(spec *arglex.ArgSpec, raw string, separator string, index int) (MapEntry, error) {
	parts := strings.SplitN(raw, separator, 2)
	if len(parts) != 2 {
		return MapEntry{}, arglex.ParameterError{
			Label:   spec.Label(),
			Message: "invalid map entry '" + raw + "': missing '" + separator + "'",
		}
	}
	keyType, valueType := mapTypeNames(spec)
	reg, err := p.registry()
	if err != nil {
		return MapEntry{}, err
	}

	keyConv, ok := reg.Lookup(keyType)
	if !ok {
		return MapEntry{}, arglex.TypeConversion{Label: spec.Label(), Value: parts[0], Type: keyType, Index: index}
	}
	key, err := keyConv.Convert(parts[0])
	if err != nil {
		return MapEntry{}, arglex.TypeConversion{Label: spec.Label(), Value: parts[0], Type: keyType, Index: index}
	}

	valueConv, ok := reg.Lookup(valueType)
	if !ok {
		return MapEntry{}, arglex.TypeConversion{Label: spec.Label(), Value: parts[1], Type: valueType, Index: index}
	}
	value, err := valueConv.Convert(parts[1])
	if err != nil {
		return MapEntry{}, arglex.TypeConversion{Label: spec.Label(), Value: parts[1], Type: valueType, Index: index}
	}

	return MapEntry{Key: key, Value: value}, nil
}

func (p *Parser) registry() (*convert.Registry, error) {
	if p.Converters != nil {
		return p.Converters, nil
	}
	reg, err := convert.Default()
	if err != nil {
		return nil, err
	}
	return reg, nil
}
