package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aistudybuddy/study-buddy/pkg/config"
)

func TestFetchCaptions_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("v"); got != "abc123" {
			t.Fatalf("unexpected video id %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Fatalf("unexpected language %q", got)
		}
		w.Write([]byte(`{"events":[]}`))
	}))
	defer ts.Close()

	client := NewClient(&config.YouTubeConfig{BaseURL: ts.URL, Language: "en"})
	body, err := client.FetchCaptions(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("FetchCaptions failed: %v", err)
	}
	if string(body) != `{"events":[]}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestFetchCaptions_EmptyBodyMeansNoCaptions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(&config.YouTubeConfig{BaseURL: ts.URL})
	if _, err := client.FetchCaptions(context.Background(), "abc123"); !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestFetchCaptions_NotFoundMeansNoCaptions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(&config.YouTubeConfig{BaseURL: ts.URL})
	if _, err := client.FetchCaptions(context.Background(), "abc123"); !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestFetchCaptions_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(&config.YouTubeConfig{BaseURL: ts.URL})
	if _, err := client.FetchCaptions(context.Background(), "abc123"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
