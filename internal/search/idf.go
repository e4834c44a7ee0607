package search

import (
	"fmt"
	"math"
)

// IDFTable maps a token to its inverse document frequency within one collection
type IDFTable map[string]float64

// Get returns the IDF of token, or 0 when the collection never contained it
func (t IDFTable) Get(token string) float64 {
	return t[token]
}

// ComputeIDFs calculates idf(w) = ln(N / df(w)) for every token of the collection,
// where df counts the documents containing w at least once.
func ComputeIDFs(docs []Document) (IDFTable, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("compute idfs: %w", ErrEmptyCollection)
	}

	docFreq := make(map[string]int)
	for _, doc := range docs {
		seenInDoc := make(map[string]bool, len(doc.Tokens))
		for _, token := range doc.Tokens {
			if !seenInDoc[token] {
				docFreq[token]++
				seenInDoc[token] = true
			}
		}
	}

	total := float64(len(docs))
	idfs := make(IDFTable, len(docFreq))
	for token, df := range docFreq {
		idfs[token] = math.Log(total / float64(df))
	}
	return idfs, nil
}
