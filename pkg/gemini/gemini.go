// Package gemini is a minimal client for the Google generative-language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/aistudybuddy/study-buddy/pkg/config"
)

// Client calls the Gemini generateContent endpoint. It is constructed once at
// startup and shared by all generators.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient creates a Gemini client using values from the provided config.
func NewClient(cfg *config.GeminiConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and returns the first candidate's text.
// Transient upstream failures (429, 5xx) are retried with exponential backoff
// inside the call; any other failure is returned immediately.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	var reply string
	callFn := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("x-goog-api-key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("gemini returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("gemini returned status %d", resp.StatusCode))
		}

		var gr generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return backoff.Permanent(err)
		}
		if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from gemini"))
		}

		var sb strings.Builder
		for _, p := range gr.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		reply = strings.TrimSpace(sb.String())
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 20 * time.Second
	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return reply, nil
}
