// operand.go - operand-window consumption for an option with arity
// [lo..hi] (§4.3.1), and the aritySatisfiedByAttachedOptionParam /
// split-regex interaction (Open Question (a), decided per spec's own
// recommendation: the attached operand counts as one split-unit, not one
// pre-split operand).
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import "github.com/arglex/arglex"

// consumeOperandWindow reads operands for spec starting at words[start],
// given an optional attached operand already captured from the same
// token. It stops once the arity maximum is reached (or, under
// LimitSplit, once the post-split value count would be reached), once
// the next word looks like a recognized option, or once words is
// exhausted.
//
// It returns the captured raw (pre-split) operands, the index of the
// first word not consumed, and a MissingParameter error if fewer than
// the arity minimum were obtained.
func consumeOperandWindow(
	words []string, start int, spec *arglex.ArgSpec, cfg *config,
	pcfg arglex.ParserConfig, attached *string,
) ([]string, int, error) {
	lo, hi, variable := spec.Arity.Min, spec.Arity.Max, spec.Arity.Variable

	var captured []string
	if attached != nil {
		captured = append(captured, *attached)
	}

	idx := start
	for {
		if reachedLimit(captured, hi, variable, spec, pcfg) {
			break
		}
		if idx >= len(words) {
			break
		}
		if cfg.looksLikeOption(words[idx]) {
			break
		}
		captured = append(captured, words[idx])
		idx++
	}

	satisfied := len(captured) >= lo
	if !satisfied && pcfg.AritySatisfiedByAttachedOptionParam && attached != nil && lo <= 1 {
		satisfied = true
	}
	if !satisfied {
		return captured, idx, arglex.MissingParameter{Labels: []string{spec.Label()}}
	}
	return captured, idx, nil
}

func reachedLimit(captured []string, hi int, variable bool, spec *arglex.ArgSpec, pcfg arglex.ParserConfig) bool {
	if variable {
		return false
	}
	if pcfg.LimitSplit && spec.SplitRegex != "" {
		total := 0
		for _, raw := range captured {
			parts, err := splitOperand(spec, raw, pcfg)
			if err != nil {
				continue
			}
			total += len(parts)
		}
		return total >= hi
	}
	return len(captured) >= hi
}
