package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/internal/llm"
)

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestExtractItems(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionResponse(
			`{"items": [{"creditor_name": "Acme Collections", "item_type": "collection", "amount_cents": 50000, "is_negative": true}]}`,
		))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o-mini"}, nil)

	items, warnings, err := c.ExtractItems(context.Background(), llm.ExtractRequest{ChunkText: "Acme Collections $500", ChunkIndex: 0})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Collections", items[0].CreditorName)
	assert.Empty(t, warnings)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	rf, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestExtractItemsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractItems(context.Background(), llm.ExtractRequest{ChunkText: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractItemsNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.ExtractItems(context.Background(), llm.ExtractRequest{ChunkText: "text"})
	assert.Error(t, err)
}

func TestExtractItemsReturnsDroppedRecordWarnings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(completionResponse(
			`{"items": [{"creditor_name": "Acme Collections", "item_type": "collection"}, {"item_type": "collection"}]}`,
		))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	items, warnings, err := c.ExtractItems(context.Background(), llm.ExtractRequest{ChunkText: "text"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Collections", items[0].CreditorName)
	require.Len(t, warnings, 1, "record missing creditor_name is dropped with a warning")
	assert.Contains(t, warnings[0], "record 1")
}

func TestExtractItemsEmptyObjectContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(completionResponse(`{"note": "nothing here"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	items, _, err := c.ExtractItems(context.Background(), llm.ExtractRequest{ChunkText: "text"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
