// types.go - converters for the richer, non-primitive types §4.2 names:
// File, URL, network address, Pattern, UUID, charset, time zone, byte
// order, arbitrary-precision numbers, and a bounded date/time format set.
// SPDX-License-Identifier: GPL-3.0-or-later
package convert

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// FilePath is a thin path wrapper implementing encoding.TextUnmarshaler so
// that it can ride go-scalar's fallback path, per §9's note that types
// compatible with the TextUnmarshaler pattern need no bespoke converter.
type FilePath string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FilePath) UnmarshalText(text []byte) error {
	*f = FilePath(text)
	return nil
}

// String returns the wrapped path.
func (f FilePath) String() string { return string(f) }

func fileConverter() Converter {
	return FuncConverter{Name: "File", Fn: func(raw string) (any, error) {
		if raw == "" {
			return nil, ConversionError{Raw: raw, Type: "File", Err: fmt.Errorf("empty path")}
		}
		return FilePath(raw), nil
	}}
}

func urlConverter() Converter {
	return FuncConverter{Name: "URL", Fn: func(raw string) (any, error) {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, ConversionError{Raw: raw, Type: "URL", Err: err}
		}
		return u, nil
	}}
}

func netAddressConverter() Converter {
	return FuncConverter{Name: "InetAddress", Fn: func(raw string) (any, error) {
		if addr, err := netip.ParseAddr(raw); err == nil {
			return addr, nil
		}
		addrPort, err := netip.ParseAddrPort(raw)
		if err != nil {
			return nil, ConversionError{Raw: raw, Type: "InetAddress", Err: err}
		}
		return addrPort, nil
	}}
}

func patternConverter() Converter {
	return FuncConverter{Name: "Pattern", Fn: func(raw string) (any, error) {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, ConversionError{Raw: raw, Type: "Pattern", Err: err}
		}
		return re, nil
	}}
}

// UUID is a minimal RFC-4122 textual representation, parsed without
// pulling in an external UUID library (see DESIGN.md: no reachable
// UUID dependency exists outside network-stack repos unrelated to this
// one).
type UUID [16]byte

var uuidShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func uuidConverter() Converter {
	return FuncConverter{Name: "UUID", Fn: func(raw string) (any, error) {
		if !uuidShape.MatchString(raw) {
			return nil, ConversionError{Raw: raw, Type: "UUID"}
		}
		hex := strings.ReplaceAll(raw, "-", "")
		var u UUID
		for i := 0; i < 16; i++ {
			var b byte
			if _, err := fmt.Sscanf(hex[i*2:i*2+2], "%02x", &b); err != nil {
				return nil, ConversionError{Raw: raw, Type: "UUID", Err: err}
			}
			u[i] = b
		}
		return u, nil
	}}
}

// Charset enumerates the small fixed set of character-set names the
// default registry recognizes. A fuller IANA-name lookup belongs to a
// text-encoding library no example repo in the retrieval pack exercises;
// deliberately kept to stdlib, see DESIGN.md.
type Charset string

const (
	CharsetUTF8    Charset = "UTF-8"
	CharsetASCII   Charset = "US-ASCII"
	CharsetLatin1  Charset = "ISO-8859-1"
)

func charsetConverter() Converter {
	return FuncConverter{Name: "Charset", Fn: func(raw string) (any, error) {
		switch strings.ToUpper(raw) {
		case "UTF-8", "UTF8":
			return CharsetUTF8, nil
		case "US-ASCII", "ASCII":
			return CharsetASCII, nil
		case "ISO-8859-1", "LATIN1":
			return CharsetLatin1, nil
		default:
			return nil, ConversionError{Raw: raw, Type: "Charset"}
		}
	}}
}

func timeZoneConverter() Converter {
	return FuncConverter{Name: "TimeZone", Fn: func(raw string) (any, error) {
		loc, err := time.LoadLocation(raw)
		if err != nil {
			return nil, ConversionError{Raw: raw, Type: "TimeZone", Err: err}
		}
		return loc, nil
	}}
}

// ByteOrder selects between the two stdlib binary.ByteOrder
// implementations by name.
func byteOrderConverter() Converter {
	return FuncConverter{Name: "ByteOrder", Fn: func(raw string) (any, error) {
		switch strings.ToUpper(raw) {
		case "LITTLE_ENDIAN", "LITTLEENDIAN", "LE":
			return binary.LittleEndian, nil
		case "BIG_ENDIAN", "BIGENDIAN", "BE":
			return binary.BigEndian, nil
		default:
			return nil, ConversionError{Raw: raw, Type: "ByteOrder"}
		}
	}}
}

func bigIntConverter() Converter {
	return FuncConverter{Name: "BigInteger", Fn: func(raw string) (any, error) {
		n, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, ConversionError{Raw: raw, Type: "BigInteger"}
		}
		return n, nil
	}}
}

func bigFloatConverter() Converter {
	return FuncConverter{Name: "BigDecimal", Fn: func(raw string) (any, error) {
		n, ok := new(big.Float).SetString(raw)
		if !ok {
			return nil, ConversionError{Raw: raw, Type: "BigDecimal"}
		}
		return n, nil
	}}
}

// dateTimeFormats is the bounded set of layouts §4.2 describes. Other
// layouts are supported by registering a Converter with Registry.Register;
// there is no runtime-reflective library scan.
var dateTimeFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"15:04:05",
	"15:04",
}

func dateTimeConverter(name string, layouts ...string) Converter {
	if len(layouts) == 0 {
		layouts = dateTimeFormats
	}
	return FuncConverter{Name: name, Fn: func(raw string) (any, error) {
		var lastErr error
		for _, layout := range layouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			} else {
				lastErr = err
			}
		}
		return nil, ConversionError{Raw: raw, Type: name, Err: lastErr}
	}}
}
