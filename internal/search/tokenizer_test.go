package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knowledge-engine/questions/internal/search"
)

func newTokenizer() *search.Tokenizer {
	return search.NewTokenizer(search.EnglishStopwords())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Empty text", "", nil},
		{"Only stopwords", "The and of it", nil},
		{"Punctuation and case", "Hello, World! This is a test.", []string{"hello", "world", "test"}},
		{"Duplicates kept", "Neural networks train neural networks", []string{"neural", "networks", "train", "neural", "networks"}},
		{"Contractions collapse", "Don't stop-believing", []string{"dont", "stopbelieving"}},
		{"Numerals kept", "It costs 42 dollars", []string{"costs", "42", "dollars"}},
		{"Decimal loses point", "Pi is 3.14", []string{"pi", "314"}},
		{"Unicode letters", "Café naïve", []string{"café", "naïve"}},
		{"Non-ASCII symbols retained", "naïve—really", []string{"naïve", "—", "really"}},
	}

	tok := newTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tok.Tokenize(tt.text))
		})
	}
}

func TestTokenize_Properties(t *testing.T) {
	tok := newTokenizer()
	stop := search.EnglishStopwords()

	texts := []string{
		"Artificial intelligence (AI) is intelligence demonstrated by machines, as opposed to natural intelligence.",
		"\"Python\" is a high-level, general-purpose programming language; its design philosophy emphasizes readability!",
		"In 1956, the field of A.I. research was founded at a workshop held on the campus of Dartmouth College.",
	}

	for _, text := range texts {
		tokens := tok.Tokenize(text)
		assert.LessOrEqual(t, len(tokens), len(strings.Fields(text)))
		for _, token := range tokens {
			assert.False(t, strings.ContainsAny(token, "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"), "token %q has punctuation", token)
			assert.False(t, stop.Contains(token), "token %q is a stopword", token)
		}

		// Re-tokenizing the joined tokens is a no-op
		assert.Equal(t, tokens, tok.Tokenize(strings.Join(tokens, " ")))
	}
}

func TestTokenize_CustomStopwords(t *testing.T) {
	tok := search.NewTokenizer(search.NewStopwords("cat"))
	assert.Equal(t, []string{"the", "sat"}, tok.Tokenize("The cat sat"))

	noStop := search.NewTokenizer(nil)
	assert.Equal(t, []string{"the", "cat", "sat"}, noStop.Tokenize("The cat sat"))
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "Its a dogeatdog world", search.StripPunctuation("It's a dog-eat-dog world."))
	assert.Equal(t, "“quoted”", search.StripPunctuation("“quoted”"))
}

func TestEnglishStopwords(t *testing.T) {
	stop := search.EnglishStopwords()

	assert.Len(t, stop, 179)
	assert.True(t, stop.Contains("the"))
	assert.True(t, stop.Contains("wouldn't"))
	assert.False(t, stop.Contains("cat"))
}
