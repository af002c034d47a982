package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split("", 100))
}

func TestSplitSingleSmallText(t *testing.T) {
	chunks := Split("TRANSUNION\nAcme Collections $500", 12000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "TRANSUNION\nAcme Collections $500", chunks[0])
}

func TestSplitRespectsBound(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, strings.Repeat("x", 40))
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, 100)
	require.NotEmpty(t, chunks)
	for i, c := range chunks {
		assert.LessOrEqual(t, len(c), 100, "chunk %d exceeds bound", i)
	}
}

func TestSplitOversizedLineBecomesOwnChunk(t *testing.T) {
	long := strings.Repeat("y", 300)
	text := "short\n" + long + "\ntail"

	chunks := Split(text, 100)
	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "tail", chunks[2])
}

func TestSplitReconstruction(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, strings.Repeat("line", i%7+1))
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, 64)
	assert.Equal(t, text, strings.Join(chunks, "\n"))
}

func TestSplitNormalizesCRLF(t *testing.T) {
	chunks := Split("a\r\nb\r\nc", 12000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a\nb\nc", chunks[0])
}

func TestSplitOrderMatchesInput(t *testing.T) {
	text := "first\nsecond\nthird\nfourth"
	chunks := Split(text, 12)
	joined := strings.Join(chunks, "\n")
	assert.Equal(t, text, joined)
	assert.True(t, strings.HasPrefix(chunks[0], "first"))
}
