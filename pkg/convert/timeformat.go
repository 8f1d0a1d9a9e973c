// timeformat.go - the picocli-style "HH:mm[:ss[.SSS]]" bounded time format,
// named explicitly since scenario 5's error message names it verbatim.
// SPDX-License-Identifier: GPL-3.0-or-later
package convert

import (
	"regexp"
	"time"
)

const hhmmssTypeName = "HH:mm[:ss[.SSS]] time"

var hhmmssShape = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d(:[0-5]\d(\.\d{1,3})?)?$`)

// PartialTime is the bound value produced by the "HH:mm[:ss[.SSS]]"
// converter: hour, minute, and optional second/millisecond.
type PartialTime struct {
	Hour, Minute, Second, Millisecond int
}

func hhmmssConverter() Converter {
	return FuncConverter{Name: hhmmssTypeName, Fn: func(raw string) (any, error) {
		if !hhmmssShape.MatchString(raw) {
			return nil, ConversionError{Raw: raw, Type: hhmmssTypeName}
		}
		layouts := []string{"15:04:05.000", "15:04:05", "15:04"}
		var lastErr error
		for _, layout := range layouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return PartialTime{
					Hour:        t.Hour(),
					Minute:      t.Minute(),
					Second:      t.Second(),
					Millisecond: t.Nanosecond() / 1_000_000,
				}, nil
			} else {
				lastErr = err
			}
		}
		return nil, ConversionError{Raw: raw, Type: hhmmssTypeName, Err: lastErr}
	}}
}
