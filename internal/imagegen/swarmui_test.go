package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:7801", "http://localhost:7801"},
		{"http://localhost:7801/", "http://localhost:7801"},
		{"localhost:7801", "http://localhost:7801"},
		{"https://swarm.example.com/", "https://swarm.example.com"},
		{" 10.0.0.5:7801 ", "http://10.0.0.5:7801"},
	}
	for _, tt := range tests {
		if got := normalizeBaseURL(tt.in); got != tt.want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSwarmUIProvider_Generate(t *testing.T) {
	tinyPNG := makePNG(t, 4, 4)
	encoded := base64.StdEncoding.EncodeToString(tinyPNG)

	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/API/GetNewSession":
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-123"})
		case "/API/GenerateText2Image":
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode payload: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"images": []string{"data:image/png;base64," + encoded},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewSwarmUIProvider(SwarmUIConfig{
		BaseURL:  srv.URL,
		Model:    "Flux/flux1-schnell-fp8",
		Width:    1280,
		Height:   720,
		CFGScale: 1.0,
		Steps:    6,
		Seed:     -1,
		Timeout:  5 * time.Second,
	})

	img, err := p.Generate(context.Background(), "a winter scene")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(img, tinyPNG) {
		t.Errorf("decoded %d bytes, want %d", len(img), len(tinyPNG))
	}

	if payload["session_id"] != "sess-123" {
		t.Errorf("session_id = %v, want sess-123", payload["session_id"])
	}
	if payload["width"] != "1280" || payload["steps"] != "6" || payload["seed"] != "-1" {
		t.Errorf("top-level params should be strings, got width=%v steps=%v seed=%v",
			payload["width"], payload["steps"], payload["seed"])
	}
	if payload["donotsave"] != true {
		t.Errorf("donotsave = %v, want true", payload["donotsave"])
	}

	raw, ok := payload["rawInput"].(map[string]any)
	if !ok {
		t.Fatalf("rawInput missing or wrong type: %T", payload["rawInput"])
	}
	if raw["width"] != float64(1280) || raw["steps"] != float64(6) {
		t.Errorf("rawInput should carry numeric params, got width=%v steps=%v", raw["width"], raw["steps"])
	}
	if raw["prompt"] != "a winter scene" {
		t.Errorf("rawInput prompt = %v", raw["prompt"])
	}
}

func TestSwarmUIProvider_RetriesServerErrors(t *testing.T) {
	tinyPNG := makePNG(t, 4, 4)
	encoded := base64.StdEncoding.EncodeToString(tinyPNG)

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/API/GetNewSession":
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-123"})
		case "/API/GenerateText2Image":
			if attempts.Add(1) == 1 {
				http.Error(w, "model loading", http.StatusServiceUnavailable)
				return
			}
			// Plain base64 without the data URI wrapper.
			json.NewEncoder(w).Encode(map[string]any{"images": []string{encoded}})
		}
	}))
	defer srv.Close()

	p := NewSwarmUIProvider(SwarmUIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	img, err := p.Generate(context.Background(), "a spring scene")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(img, tinyPNG) {
		t.Error("image bytes do not round-trip after retry")
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestSwarmUIProvider_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/API/GetNewSession":
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-123"})
		case "/API/GenerateText2Image":
			attempts.Add(1)
			http.Error(w, "unknown model", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	p := NewSwarmUIProvider(SwarmUIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	_, err := p.Generate(context.Background(), "a summer scene")
	if err == nil {
		t.Fatal("expected error for HTTP 400")
	}
	if !strings.Contains(err.Error(), "unknown model") {
		t.Errorf("error should include response body, got: %v", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1 (client errors are not retried)", got)
	}
}

func TestSwarmUIProvider_NoImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/API/GetNewSession":
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-123"})
		case "/API/GenerateText2Image":
			json.NewEncoder(w).Encode(map[string]any{"images": []string{}})
		}
	}))
	defer srv.Close()

	p := NewSwarmUIProvider(SwarmUIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	if _, err := p.Generate(context.Background(), "an autumn scene"); err == nil {
		t.Fatal("expected error when no images returned")
	}
}
