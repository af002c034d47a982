// Package chunk splits extracted report text into bounded segments along
// line boundaries for per-chunk LLM extraction.
package chunk

import "strings"

// DefaultMaxChunkSize bounds a chunk's size in bytes. Credit reports chunked
// at this size stay comfortably inside the model's context window.
const DefaultMaxChunkSize = 12000

// Split returns ordered, non-empty chunks of text, each at most maxSize bytes
// unless a single line alone exceeds the bound, in which case that line
// becomes an oversized chunk by itself. Lines are never split; joining the
// chunks with a newline reconstructs the input up to line-ending
// normalization.
func Split(text string, maxSize int) []string {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var chunks []string
	var buf strings.Builder
	for _, line := range lines {
		need := len(line)
		if buf.Len() > 0 {
			need++ // joining newline
		}
		if buf.Len() > 0 && buf.Len()+need > maxSize {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}
