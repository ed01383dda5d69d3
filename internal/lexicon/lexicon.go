// Package lexicon rewrites terms into the spoken forms the synthesizer should
// pronounce.
package lexicon

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Apply replaces whole-word occurrences of each term with its spoken form.
// Longer terms win over shorter ones that share a prefix, and replaced text
// is never rescanned.
func Apply(text string, terms map[string]string) string {
	if len(terms) == 0 || text == "" {
		return text
	}

	keys := make([]string, 0, len(terms))
	for term := range terms {
		if term != "" {
			keys = append(keys, term)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	b.Grow(len(text))

	prev := rune(-1)
	for i := 0; i < len(text); {
		if !isWordRune(prev) {
			if term, ok := matchAt(text, i, keys); ok {
				b.WriteString(terms[term])
				i += len(term)
				prev, _ = utf8.DecodeLastRuneInString(term)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		prev = r
		i += size
	}
	return b.String()
}

func matchAt(text string, i int, keys []string) (string, bool) {
	rest := text[i:]
	for _, term := range keys {
		if !strings.HasPrefix(rest, term) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(rest[len(term):])
		if len(rest) == len(term) || !isWordRune(next) {
			return term, true
		}
	}
	return "", false
}

// Devanagari and other Indic scripts attach vowel signs as combining marks,
// so marks count as part of a word.
func isWordRune(r rune) bool {
	if r < 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '_'
}
