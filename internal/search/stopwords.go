package search

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed english_stopwords.txt
var englishStopwordList string

// Stopwords is a read-only set of words excluded from scoring
type Stopwords map[string]struct{}

// NewStopwords builds a stopword set from the given words
func NewStopwords(words ...string) Stopwords {
	set := make(Stopwords, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

var englishStopwords = sync.OnceValue(func() Stopwords {
	return NewStopwords(strings.Fields(englishStopwordList)...)
})

// EnglishStopwords returns the shared English stopword set.
// The set is built on first use and must not be modified.
func EnglishStopwords() Stopwords {
	return englishStopwords()
}
