package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/internal/common"
)

func TestDownload(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("%PDF-1.4 fake bytes"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"}, nil)
	data, err := c.Download(context.Background(), "credit-reports", "user-1/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake bytes"), data)
	assert.Equal(t, "/object/credit-reports/user-1/report.pdf", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestDownloadMissingObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"Object not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Download(context.Background(), "credit-reports", "missing.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDownload)
	assert.Contains(t, err.Error(), "404")
}

func TestDownloadEscapesPathSegments(t *testing.T) {
	var gotEscaped string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Download(context.Background(), "credit-reports", "folder/my report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/object/credit-reports/folder/my%20report.pdf", gotEscaped)
}

func TestDownloadUnreachableHost(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := c.Download(context.Background(), "bucket", "path.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDownload)
}
