// atfile.go - "@file" argument expansion (expandAtFiles), a supplemented
// feature named in §6's table but never elaborated in §4: a token shaped
// "@path" is replaced by the whitespace-tokenized contents of path.
// Grounded on github.com/kballard/go-shellquote, the same dependency
// dispatcher.go already uses for shellquote.Join in error messages.
// SPDX-License-Identifier: GPL-3.0-or-later

package parser

import (
	"fmt"
	"os"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

const maxAtFileDepth = 8

// ErrAtFileTooDeep is returned when @file expansion recurses past
// maxAtFileDepth, guarding against a file that references itself.
var ErrAtFileTooDeep = fmt.Errorf("parser: @file expansion exceeded depth %d", maxAtFileDepth)

// expandAtFiles replaces every "@path" token in argv with the
// whitespace-tokenized, quote-aware contents of the named file,
// recursively, up to maxAtFileDepth.
func expandAtFiles(argv []string) ([]string, error) {
	return expandAtFilesDepth(argv, 0)
}

func expandAtFilesDepth(argv []string, depth int) ([]string, error) {
	if depth > maxAtFileDepth {
		return nil, ErrAtFileTooDeep
	}

	var out []string
	for _, word := range argv {
		if !strings.HasPrefix(word, "@") || word == "@" {
			out = append(out, word)
			continue
		}
		path := word[1:]
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("parser: @file expansion of %q: %w", path, err)
		}
		words, err := shellquote.Split(string(contents))
		if err != nil {
			return nil, fmt.Errorf("parser: @file expansion of %q: %w", path, err)
		}
		expanded, err := expandAtFilesDepth(words, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}
