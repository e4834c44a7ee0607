package search

import (
	"fmt"
	"sort"
)

// FileScore holds the TF-IDF score of one file
type FileScore struct {
	ID    string
	Score float64
}

// SentenceScore holds the ranking keys of one sentence
type SentenceScore struct {
	ID          string
	MatchingIDF float64
	Density     float64
}

// ScoreFiles computes Σ tf(w) × idf(w) over the query terms for every file
// and returns the files ordered by descending score. Ties keep input order.
func ScoreFiles(query Query, files []Document, idfs IDFTable) []FileScore {
	scores := make([]FileScore, 0, len(files))
	for _, file := range files {
		tf := termFrequency(file.Tokens)
		total := 0.0
		for _, term := range query {
			if count, ok := tf[term]; ok {
				total += float64(count) * idfs.Get(term)
			}
		}
		scores = append(scores, FileScore{ID: file.ID, Score: total})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// TopFiles returns the IDs of the n files that best match the query by TF-IDF
func TopFiles(query Query, files []Document, idfs IDFTable, n int) []string {
	scores := ScoreFiles(query, files, idfs)
	ids := make([]string, 0, limit(n, len(scores)))
	for _, s := range scores[:limit(n, len(scores))] {
		ids = append(ids, s.ID)
	}
	return ids
}

// ScoreSentences ranks sentences by the summed IDF of the query terms they
// contain, then by query term density. Ties on both keep input order.
func ScoreSentences(query Query, sentences []Document, idfs IDFTable) ([]SentenceScore, error) {
	scores := make([]SentenceScore, 0, len(sentences))
	for _, sentence := range sentences {
		if len(sentence.Tokens) == 0 {
			return nil, fmt.Errorf("score sentence %q: %w", sentence.ID, ErrEmptySentence)
		}

		present := make(map[string]bool, len(sentence.Tokens))
		for _, token := range sentence.Tokens {
			present[token] = true
		}

		matchingIDF := 0.0
		matched := 0
		for _, term := range query {
			if present[term] {
				matchingIDF += idfs.Get(term)
				matched++
			}
		}

		scores = append(scores, SentenceScore{
			ID:          sentence.ID,
			MatchingIDF: matchingIDF,
			Density:     float64(matched) / float64(len(sentence.Tokens)),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].MatchingIDF != scores[j].MatchingIDF {
			return scores[i].MatchingIDF > scores[j].MatchingIDF
		}
		return scores[i].Density > scores[j].Density
	})
	return scores, nil
}

// TopSentences returns the n sentences that best match the query
func TopSentences(query Query, sentences []Document, idfs IDFTable, n int) ([]string, error) {
	scores, err := ScoreSentences(query, sentences, idfs)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, limit(n, len(scores)))
	for _, s := range scores[:limit(n, len(scores))] {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func termFrequency(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	return tf
}

// limit clamps a requested result count to [0, available]
func limit(n, available int) int {
	if n < 0 {
		return 0
	}
	return min(n, available)
}
