package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectNgrokURL(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tunnels" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		// no tunnels on the first call, as while ngrok starts
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"tunnels": []}`))
			return
		}
		w.Write([]byte(`{"tunnels": [{"public_url": "http://abc.ngrok.io", "proto": "http"}, {"public_url": "https://abc.ngrok.io", "proto": "https"}]}`))
	}))
	defer ts.Close()

	url, err := detectNgrokURL(context.Background(), ts.URL, 3, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://abc.ngrok.io" {
		t.Errorf("expected https tunnel, got %q", url)
	}
}

func TestDetectNgrokURL_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL
	ts.Close()

	if _, err := detectNgrokURL(context.Background(), base, 2, time.Millisecond); err == nil {
		t.Fatal("expected error")
	}
}
