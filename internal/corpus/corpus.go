package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

// File is one corpus document keyed by its file name
type File struct {
	Name string
	Text string
}

// Loader reads a corpus directory into memory
type Loader struct {
	logger *logrus.Entry
}

// NewLoader creates a corpus loader
func NewLoader(logger *logrus.Entry) *Loader {
	return &Loader{logger: logger.WithField("component", "corpus_loader")}
}

// Load reads every regular, non-hidden file directly inside dir.
// Files are returned sorted by name. Subdirectories are not descended into.
func (l *Loader) Load(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			l.logger.WithField("file", name).Debug("Skipping corpus entry")
			continue
		}

		text, err := ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: name, Text: text})
		l.logger.WithFields(logrus.Fields{"file": name, "bytes": len(text)}).Debug("Loaded corpus file")
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	l.logger.WithField("files", len(files)).Info("Corpus loaded")
	return files, nil
}

// ReadFile returns the text of a single corpus file.
// HTML files are reduced to their title, as its own line, and visible text.
// PDF files are reduced to their plain text; anything else is
// decoded as ISO-8859-1 so that arbitrary bytes never fail to load.
func ReadFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		fp, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer fp.Close()

		page, err := ExtractHTML(fp)
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if page.Title == "" {
			return page.Text, nil
		}
		return page.Title + "\n" + page.Text, nil
	case ".pdf":
		return readPDF(path)
	default:
		return readLatin1(path)
	}
}

func readLatin1(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(decoded), nil
}
