package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionBody(text string) string {
	return `{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "` + text + `"}
		}]
	}`
}

func TestCompleteReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("hello back")))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	text, err := p.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if text != "hello back" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestCompleteWrapsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), "hello")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
}

func TestCompleteRejectsEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("")))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), "hello")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error for empty completion, got %v", err)
	}
}

func TestCompleteTimesOutHungProvider(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	p := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := p.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout did not bound the call")
	}
}

func TestCompleteRejectsEmptyPrompt(t *testing.T) {
	p := NewOpenAIProvider(Config{APIKey: "test-key"})
	var perr *Error
	if _, err := p.Complete(context.Background(), "  "); !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
}
