// Package storage downloads stored report documents over the object-store
// HTTP API.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/internal/common"
)

// Config for the object-storage client.
type Config struct {
	BaseURL string        // e.g. https://storage.example.com/storage/v1
	APIKey  string        // bearer key
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// Downloader is the interface the pipeline depends on.
type Downloader interface {
	Download(ctx context.Context, bucket, path string) ([]byte, error)
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Download fetches an object's bytes. Missing or unauthorized objects fail
// with a download error, fatal to the calling job.
func (c *Client) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	reqID := uuid.New().String()
	start := time.Now()

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/object/" +
		url.PathEscape(bucket) + "/" + escapePath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, common.NewAppError("DOWNLOAD_FAILED", fmt.Sprintf("build request: %v", err), common.ErrDownload)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.log.Info("storage.download.start", "req_id", reqID, "bucket", bucket, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("storage.download.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError("DOWNLOAD_FAILED", err.Error(), common.ErrDownload)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("storage.download.body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Error("storage.download.bad_status", "req_id", reqID, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError("DOWNLOAD_FAILED",
			fmt.Sprintf("status %d for %s/%s: %s", resp.StatusCode, bucket, path, string(msg)), common.ErrDownload)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewAppError("DOWNLOAD_FAILED", fmt.Sprintf("read body: %v", err), common.ErrDownload)
	}

	c.log.Info("storage.download.ok", "req_id", reqID, "bucket", bucket, "path", path,
		"bytes", len(data), "elapsed_ms", time.Since(start).Milliseconds())
	return data, nil
}

// escapePath escapes each path segment but keeps the separators.
func escapePath(p string) string {
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
