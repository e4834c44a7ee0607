package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
	return dir
}

func runCLI(args []string, input string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"No arguments", nil},
		{"Too many arguments", []string{"one", "two"}},
		{"Unknown flag", []string{"--bogus", "corpus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tt.args, "")
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Usage: questions")
		})
	}
}

func TestRun_MissingCorpus(t *testing.T) {
	code, stdout, stderr := runCLI([]string{filepath.Join(t.TempDir(), "missing")}, "")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to load corpus")
}

func TestRun_EmptyCorpus(t *testing.T) {
	code, _, stderr := runCLI([]string{t.TempDir()}, "anything\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "document collection is empty")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"a.txt": "Something here."})
	code, _, stderr := runCLI([]string{"--log-level", "loud", dir}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid log level")
}

func TestRun_AnswersQuery(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"ai.txt":      "Machine learning is a field of study. It studies statistical algorithms.\nDeep learning uses neural networks.",
		"cooking.txt": "Bread needs flour, water and yeast. Knead the dough well.",
	})

	code, stdout, stderr := runCLI([]string{dir}, "What do neural networks use?\n")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "Query: Deep learning uses neural networks.\n", stdout)
}

func TestRun_SentenceCountFlag(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"bread.txt": "Bread needs flour. Bread needs yeast. Soup needs water.",
		"cars.txt":  "Cars need fuel.",
	})

	code, stdout, _ := runCLI([]string{"-s", "2", dir}, "bread")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Query: Bread needs flour.\nBread needs yeast.\n", stdout)
}
