// config.go - per-parse validated view over a CommandSpec: prefix table
// and option maps, generalized from the teacher's pkg/nparser/config.go
// (which validated exactly one option type, one-byte short names) to
// arbitrary arity/type/split per this repo's richer ArgSpec.
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import (
	"sort"

	"github.com/arglex/arglex"
)

// config is built once per visited CommandSpec during a parse and caches
// the prefix set in scope for that command (its own option names plus
// every ancestor's, per §4.3 step 2 "preferring the nearest").
type config struct {
	cmd      *arglex.CommandSpec
	prefixes []string
}

var defaultPrefixes = []string{"-", "--"}

func newConfig(cmd *arglex.CommandSpec) *config {
	seen := make(map[string]bool)
	var prefixes []string
	for cur := cmd; cur != nil; cur = cur.Parent {
		for _, opt := range cur.Options() {
			for _, name := range opt.Names {
				prefix := namePrefix(name)
				if prefix != "" && !seen[prefix] {
					seen[prefix] = true
					prefixes = append(prefixes, prefix)
				}
			}
		}
	}
	if len(prefixes) == 0 {
		prefixes = append([]string(nil), defaultPrefixes...)
	}
	sort.SliceStable(prefixes, func(i, j int) bool {
		if len(prefixes[i]) == len(prefixes[j]) {
			return prefixes[i] < prefixes[j]
		}
		return len(prefixes[i]) > len(prefixes[j])
	})
	return &config{cmd: cmd, prefixes: prefixes}
}

// namePrefix returns the recognized prefix of an option name: "--" for
// long names, the single leading byte for anything else (short names and
// other configured prefixes like "+" or "/").
func namePrefix(name string) string {
	if len(name) == 0 {
		return ""
	}
	if len(name) >= 2 && name[0] == '-' && name[1] == '-' {
		return "--"
	}
	return name[:1]
}

// looksLikeOption reports whether word begins with any prefix in scope
// for this config, used to decide whether an option's arity window
// should stop consuming operands (§4.3.1).
func (c *config) looksLikeOption(word string) bool {
	for _, prefix := range c.prefixes {
		if len(word) > len(prefix) && word[:len(prefix)] == prefix {
			return true
		}
		if prefix == "-" && word == "-" {
			continue // bare "-" is conventionally a positional (stdin marker)
		}
	}
	return false
}
