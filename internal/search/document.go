package search

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyCollection is returned when IDF values are requested for no documents
	ErrEmptyCollection = errors.New("document collection is empty")
	// ErrEmptySentence is returned when a sentence without tokens reaches the ranker
	ErrEmptySentence = errors.New("sentence has no tokens")
)

// Document is a token sequence with its identifier.
// For files the ID is the file name, for sentences it is the sentence text.
type Document struct {
	ID     string
	Tokens []string
}

// Query is a de-duplicated, sorted set of query terms
type Query []string

// NewQuery collapses duplicate tokens into a query set
func NewQuery(tokens []string) Query {
	seen := make(map[string]bool, len(tokens))
	q := make(Query, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		q = append(q, token)
	}
	sort.Strings(q)
	return q
}

// Contains reports whether term is part of the query
func (q Query) Contains(term string) bool {
	i := sort.SearchStrings(q, term)
	return i < len(q) && q[i] == term
}
