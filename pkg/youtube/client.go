// Package youtube fetches raw caption payloads from the video platform's
// timedtext endpoint. The payload format is not guaranteed; normalization
// happens upstream.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aistudybuddy/study-buddy/pkg/config"
)

// ErrNoCaptions signals that the video has no caption track at all, as
// opposed to a fetch failure.
var ErrNoCaptions = errors.New("no captions available")

// Client downloads caption payloads for a video.
type Client struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewClient creates a caption client using values from the provided config.
func NewClient(cfg *config.YouTubeConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: timeout},
	}
}

// FetchCaptions returns the raw caption payload for a video. The bytes may be
// XML timed-text, a JSON event stream, or SRT-like plain text.
func (c *Client) FetchCaptions(ctx context.Context, videoID string) ([]byte, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", c.language)
	q.Set("fmt", "json3")
	endpoint := fmt.Sprintf("%s/api/timedtext?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("caption request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoCaptions
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read caption payload: %w", err)
	}
	// The endpoint answers 200 with an empty body for videos without a
	// caption track.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrNoCaptions
	}
	return body, nil
}
