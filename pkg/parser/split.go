// split.go - applies an ArgSpec's split regex to one captured raw
// operand, honoring the quoting-related parser flags (§4.3 "Split").
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import (
	"regexp"
	"strings"

	"github.com/arglex/arglex"
)

// splitOperand applies spec's split regex (if any) to raw, per cfg's
// TrimQuotes/SplitQuotedStrings flags, and returns the resulting values
// (a single-element slice when SplitRegex is empty).
func splitOperand(spec *arglex.ArgSpec, raw string, cfg arglex.ParserConfig) ([]string, error) {
	re, err := spec.CompiledSplitRegex()
	if err != nil {
		return nil, err
	}
	if re == nil {
		return []string{raw}, nil
	}

	var parts []string
	if cfg.SplitQuotedStrings {
		parts = re.Split(raw, -1)
	} else {
		parts = protectedSplit(raw, re)
	}

	if cfg.TrimQuotes {
		for i, p := range parts {
			parts[i] = trimQuotes(p)
		}
	}
	return parts, nil
}

// protectedSplit applies re to raw, but treats any "..."-enclosed
// substring as atomic: a match found while inside a quoted span is not
// treated as a delimiter. This is the default ("quoted substrings are
// treated atomically") behavior of §4.3's Split rule.
func protectedSplit(raw string, re *regexp.Regexp) []string {
	var parts []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(raw); {
		if raw[i] == '"' {
			inQuote = !inQuote
			cur.WriteByte(raw[i])
			i++
			continue
		}
		if !inQuote {
			if loc := re.FindStringIndex(raw[i:]); loc != nil && loc[0] == 0 && loc[1] > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
				i += loc[1]
				continue
			}
		}
		cur.WriteByte(raw[i])
		i++
	}
	parts = append(parts, cur.String())
	return parts
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
