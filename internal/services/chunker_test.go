package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("Go engineer with 5 years of experience.", 1000)

	require.Len(t, chunks, 1)
	assert.Equal(t, "Go engineer with 5 years of experience.", chunks[0])
}

func TestChunkText_PacksParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	text := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
	chunks := chunker.ChunkText(text, 40)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 40)
	}
	assert.Contains(t, strings.Join(chunks, "\n\n"), "Third paragraph.")
}

func TestChunkText_HardSplitsOversizedParagraph(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("x", 2500)
	chunks := chunker.ChunkText(text, 1000)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[2], 500)
}

func TestChunkText_EmptyText(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000))
}
