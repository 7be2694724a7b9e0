package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNotifyGeneratedPostsImageURL(t *testing.T) {
	received := make(chan map[string]string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		received <- payload
	}))
	defer ts.Close()

	n := New(ts.URL, ts.Client(), zerolog.New(io.Discard))
	n.NotifyGenerated("data:image/png;base64,QUJD")

	select {
	case payload := <-received:
		if payload["imageUrl"] != "data:image/png;base64,QUJD" {
			t.Fatalf("payload mismatch: %#v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never arrived")
	}
}

func TestNotifyGeneratedSwallowsRejections(t *testing.T) {
	done := make(chan struct{}, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		done <- struct{}{}
	}))
	defer ts.Close()

	n := New(ts.URL, ts.Client(), zerolog.New(io.Discard))
	n.NotifyGenerated("data:image/png;base64,QUJD")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never attempted")
	}
}

func TestNotifyGeneratedDisabledWithoutEndpoint(t *testing.T) {
	n := New("", nil, zerolog.New(io.Discard))
	// Must be a no-op, not a panic.
	n.NotifyGenerated("data:image/png;base64,QUJD")
}
