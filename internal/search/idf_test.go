package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/questions/internal/search"
)

func TestComputeIDFs(t *testing.T) {
	docs := []search.Document{
		{ID: "a", Tokens: []string{"apple", "banana", "apple"}},
		{ID: "b", Tokens: []string{"apple", "orange"}},
		{ID: "c", Tokens: []string{"apple", "kiwi"}},
	}

	idfs, err := search.ComputeIDFs(docs)
	require.NoError(t, err)

	assert.Len(t, idfs, 4)
	// Present in every document
	assert.Equal(t, 0.0, idfs["apple"])
	// Present in exactly one of three
	assert.InDelta(t, math.Log(3), idfs["banana"], 1e-12)
	assert.InDelta(t, math.Log(3), idfs["orange"], 1e-12)
	assert.InDelta(t, math.Log(3), idfs["kiwi"], 1e-12)

	_, ok := idfs["grape"]
	assert.False(t, ok)
	assert.Equal(t, 0.0, idfs.Get("grape"))
}

func TestComputeIDFs_PresenceNotCount(t *testing.T) {
	docs := []search.Document{
		{ID: "a", Tokens: []string{"go", "go", "go", "go"}},
		{ID: "b", Tokens: []string{"rust"}},
	}

	idfs, err := search.ComputeIDFs(docs)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), idfs["go"], 1e-12)
	assert.InDelta(t, math.Log(2), idfs["rust"], 1e-12)
}

func TestComputeIDFs_Empty(t *testing.T) {
	idfs, err := search.ComputeIDFs(nil)
	assert.ErrorIs(t, err, search.ErrEmptyCollection)
	assert.Nil(t, idfs)
}

func TestComputeIDFs_DocumentsWithoutTokens(t *testing.T) {
	idfs, err := search.ComputeIDFs([]search.Document{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	assert.Empty(t, idfs)
}
