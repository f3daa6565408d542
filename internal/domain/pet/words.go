package pet

import (
	"strings"
	"unicode"
)

// words is a message split into lowercase letter runs. Single terms match whole
// tokens, allowing a plain s/es/ing/ed suffix. Phrases match on token
// boundaries.
type words struct {
	tokens map[string]bool
	padded string
}

func newWords(text string) words {
	list := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	w := words{tokens: make(map[string]bool, len(list)), padded: " " + strings.Join(list, " ") + " "}
	for _, t := range list {
		w.tokens[t] = true
	}
	return w
}

func (w words) has(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	if strings.Contains(term, " ") {
		return strings.Contains(w.padded, " "+term+" ")
	}
	for _, suffix := range []string{"", "s", "es", "ing", "ed"} {
		if w.tokens[term+suffix] {
			return true
		}
	}
	return false
}

func (w words) hasAny(terms []string) bool {
	for _, t := range terms {
		if w.has(t) {
			return true
		}
	}
	return false
}
