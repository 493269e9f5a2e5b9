package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGotify_Push(t *testing.T) {
	var got struct {
		method, path, token, contentType string
		body                             Notification
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.token = r.URL.Query().Get("token")
		got.contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got.body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Trailing slash must not produce a double slash in the endpoint.
	g := NewGotify(srv.URL+"/", "apptoken", 2*time.Second)
	n := Notification{Title: "t", Message: "m", Priority: AlertPriority}

	if err := g.Push(context.Background(), n); err != nil {
		t.Fatalf("Push() unexpected error: %v", err)
	}
	if got.method != http.MethodPost {
		t.Errorf("method: got %q, want POST", got.method)
	}
	if got.path != "/message" {
		t.Errorf("path: got %q, want /message", got.path)
	}
	if got.token != "apptoken" {
		t.Errorf("token: got %q, want %q", got.token, "apptoken")
	}
	if got.contentType != "application/json" {
		t.Errorf("content-type: got %q", got.contentType)
	}
	if got.body != n {
		t.Errorf("body: got %+v, want %+v", got.body, n)
	}
}

func TestGotify_PushServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGotify(srv.URL, "apptoken", 2*time.Second)
	if err := g.Push(context.Background(), Notification{Title: "t"}); err == nil {
		t.Fatal("Push() = nil error on HTTP 500, want error")
	}
}

func TestGotify_PushUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	g := NewGotify(srv.URL, "apptoken", time.Second)
	if err := g.Push(context.Background(), Notification{Title: "t"}); err == nil {
		t.Fatal("Push() = nil error against closed server, want error")
	}
}
