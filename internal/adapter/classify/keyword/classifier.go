// Package keyword is an offline classifier: it pulls labels and colours out of
// a free-text description by word lookup.
package keyword

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"petverse/internal/app/ports"
)

var ErrEmptyInput = errors.New("nothing to classify")

var labelWords = []string{
	"cat", "dog", "bird", "fish", "rabbit", "hamster", "turtle",
	"robot", "machine", "drone", "lamp", "book", "toy", "mug", "cup", "sock", "chair",
	"plant", "flower", "cactus", "tree", "moss", "succulent",
	"tea", "coffee", "cake", "bread", "candy", "juice",
	"dragon", "ghost", "crystal", "spirit",
}

var colorWords = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink", "white", "black", "grey", "gray", "brown", "gold", "silver"}

type Classifier struct{}

func (Classifier) Analyze(_ context.Context, input string) (ports.Analysis, error) {
	words := tokenize(input)
	if len(words) == 0 {
		return ports.Analysis{}, ErrEmptyInput
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	out := ports.Analysis{Description: strings.TrimSpace(input)}
	for _, l := range labelWords {
		if seen[l] || seen[l+"s"] {
			out.Labels = append(out.Labels, l)
		}
	}
	for _, c := range colorWords {
		if seen[c] {
			out.Colors = append(out.Colors, c)
		}
	}
	out.Confidence = 0.3
	if len(out.Labels) > 0 {
		out.Confidence = 0.8
	}
	return out, nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
