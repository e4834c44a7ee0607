package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/questions/internal/config"
	"github.com/knowledge-engine/questions/internal/corpus"
	"github.com/knowledge-engine/questions/internal/search"
)

// Engine answers queries against an in-memory corpus
type Engine struct {
	Config    *config.Config
	Logger    *logrus.Entry
	Tokenizer *search.Tokenizer

	// Read-only after NewEngine
	texts map[string]string
	files []search.Document
	idfs  search.IDFTable

	mu    sync.RWMutex
	stats EngineStats
}

// EngineStats describes the loaded corpus and the queries served
type EngineStats struct {
	Documents int
	Queries   int64
	LoadedAt  time.Time
}

// Answer is the result of one query
type Answer struct {
	Terms     search.Query
	Files     []string
	Sentences []string
}

// NewEngine tokenizes the corpus and computes its IDF table
func NewEngine(cfg *config.Config, logger *logrus.Entry, files []corpus.File) (*Engine, error) {
	e := &Engine{
		Config:    cfg,
		Logger:    logger.WithField("component", "engine"),
		Tokenizer: search.NewTokenizer(search.EnglishStopwords()),
		texts:     make(map[string]string, len(files)),
		files:     make([]search.Document, 0, len(files)),
	}

	for _, f := range files {
		e.texts[f.Name] = f.Text
		e.files = append(e.files, search.Document{ID: f.Name, Tokens: e.Tokenizer.Tokenize(f.Text)})
	}

	idfs, err := search.ComputeIDFs(e.files)
	if err != nil {
		return nil, fmt.Errorf("failed to index corpus: %w", err)
	}
	e.idfs = idfs
	e.stats = EngineStats{Documents: len(e.files), LoadedAt: time.Now()}

	e.Logger.WithFields(logrus.Fields{
		"documents": len(e.files),
		"terms":     len(idfs),
	}).Info("Corpus indexed")
	return e, nil
}

// Query ranks corpus files by TF-IDF, then ranks the sentences of the best
// files by matching IDF and query term density.
func (e *Engine) Query(text string) (*Answer, error) {
	query := search.NewQuery(e.Tokenizer.Tokenize(text))
	answer := &Answer{Terms: query}

	answer.Files = search.TopFiles(query, e.files, e.idfs, e.Config.Retrieval.FileMatches)
	e.Logger.WithFields(logrus.Fields{"terms": []string(query), "files": answer.Files}).Debug("Top files selected")

	sentences := e.sentences(answer.Files)
	if len(sentences) > 0 {
		idfs, err := search.ComputeIDFs(sentences)
		if err != nil {
			return nil, fmt.Errorf("failed to index sentences: %w", err)
		}
		answer.Sentences, err = search.TopSentences(query, sentences, idfs, e.Config.Retrieval.SentenceMatches)
		if err != nil {
			return nil, fmt.Errorf("failed to rank sentences: %w", err)
		}
	} else {
		e.Logger.Warn("Selected files contain no sentences")
	}

	e.mu.Lock()
	e.stats.Queries++
	e.mu.Unlock()

	return answer, nil
}

// sentences tokenizes the sentences of the named files. Sentences without
// tokens are dropped and repeated sentence texts are kept once.
func (e *Engine) sentences(names []string) []search.Document {
	var docs []search.Document
	seen := make(map[string]bool)
	for _, name := range names {
		for _, sentence := range search.SplitSentences(e.texts[name]) {
			if seen[sentence] {
				continue
			}
			tokens := e.Tokenizer.Tokenize(sentence)
			if len(tokens) == 0 {
				continue
			}
			seen[sentence] = true
			docs = append(docs, search.Document{ID: sentence, Tokens: tokens})
		}
	}
	return docs
}

// Stats returns a snapshot of the engine counters
func (e *Engine) Stats() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}
