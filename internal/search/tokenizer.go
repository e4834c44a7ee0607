package search

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// punctuation is the ASCII punctuation set removed before segmentation
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer turns raw text into normalized word tokens
type Tokenizer struct {
	stopwords Stopwords
}

// NewTokenizer creates a tokenizer that drops the given stopwords
func NewTokenizer(stopwords Stopwords) *Tokenizer {
	if stopwords == nil {
		stopwords = Stopwords{}
	}
	return &Tokenizer{stopwords: stopwords}
}

// Tokenize strips punctuation, lowercases, segments text on UAX #29 word
// boundaries and removes stopwords. Order and duplicates are preserved.
func (t *Tokenizer) Tokenize(text string) []string {
	text = strings.ToLower(StripPunctuation(text))

	var tokens []string
	segments := words.FromString(text)
	for segments.Next() {
		word := segments.Value()
		if strings.TrimSpace(word) == "" {
			continue
		}
		if t.stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// StripPunctuation removes ASCII punctuation without inserting separators
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}
