package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFormatsCodeAndCause(t *testing.T) {
	err := NewAppError("DOWNLOAD_FAILED", "status 404", ErrDownload)
	assert.Equal(t, "DOWNLOAD_FAILED: status 404: storage download failed", err.Error())
	assert.ErrorIs(t, err, ErrDownload)

	bare := NewAppError("INTERNAL", "boom", nil)
	assert.Equal(t, "INTERNAL: boom", bare.Error())
}

func TestIsFatalClassification(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(NewAppError("CHUNK_EXTRACTION_FAILED", "chunk 2", ErrChunkExtraction)))
	assert.False(t, IsFatal(NewAppError("ITEM_PERSISTENCE_FAILED", "dup key", ErrItemPersistence)))

	assert.True(t, IsFatal(NewAppError("DOWNLOAD_FAILED", "timeout", ErrDownload)))
	assert.True(t, IsFatal(NewAppError("EXTRACTION_FAILED", "both paths", ErrExtraction)))
	assert.True(t, IsFatal(NewAppError("INSUFFICIENT_TEXT", "42 chars", ErrInsufficientText)))
	assert.True(t, IsFatal(errors.New("anything else")))
}
