// Package autocomplete computes the longest unambiguous completion of a
// partial query against a list of name candidates.
package autocomplete

import (
	"iter"
	"sort"
	"strings"
	"unicode"
)

// Complete returns the longest prefix of the matching candidates.
//
// Candidates are filtered to those whose prefix equals query
// case-insensitively; the filter ignores case but the returned text keeps
// its original casing. No match yields "", a single match is returned
// verbatim, and with several matches the result is the longest prefix of
// the shortest one that every match shares (again compared without case,
// returned in the shortest candidate's casing).
//
// The result does not depend on candidate order: matches are normalized
// by length, then lexicographically, before the shortest is chosen.
func Complete(query string, candidates iter.Seq[string]) string {
	q := strings.ToLower(query)
	var matches []string
	for name := range candidates {
		if strings.HasPrefix(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return ""
	}
	if len(matches) == 1 {
		return matches[0]
	}

	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})

	// The shortest match bounds the answer: the shared prefix can never
	// be longer than it.
	ref := []rune(matches[0])
	end := len(ref)
	for _, name := range matches[1:] {
		runes := []rune(name)
		i := 0
		for i < end && i < len(runes) && unicode.ToLower(ref[i]) == unicode.ToLower(runes[i]) {
			i++
		}
		if i < end {
			end = i
		}
	}
	return string(ref[:end])
}
