package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jasonacox/vibescape/internal/api"
	"github.com/jasonacox/vibescape/internal/imagegen"
	"github.com/jasonacox/vibescape/internal/models"
	"github.com/jasonacox/vibescape/internal/season"
	"github.com/jasonacox/vibescape/internal/store"
	"github.com/jasonacox/vibescape/internal/viewer"

	_ "modernc.org/sqlite"
)

var testNow = time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)

type stubProvider struct{}

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	return nil, errors.New("stub provider")
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	s := store.New(db)
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}
	return s
}

func testConfig() api.Config {
	return api.Config{
		Port:           "4002",
		Version:        "1.0.5",
		Provider:       "swarmui",
		Model:          "Flux/flux1-schnell-fp8",
		Endpoint:       "http://localhost:7801",
		RefreshSeconds: 60,
		PollSeconds:    10,
	}
}

func testScene(at time.Time) *models.Scene {
	return &models.Scene{
		Prompt:    "A snowy cabin at dusk, warm light in the windows",
		Season:    "christmas",
		ImageData: "data:image/jpeg;base64,/9j/4AAQtest",
		CreatedAt: at,
	}
}

// setupServer builds a server pinned to Christmas Day with an
// optional pre-cached scene.
func setupServer(t *testing.T, scene *models.Scene) (*api.Server, *viewer.Tracker) {
	t.Helper()

	blender, err := season.New(season.Config{
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("season.New: %v", err)
	}

	svc := imagegen.NewService(blender, stubProvider{}, nil, time.Hour, time.Second)
	if scene != nil {
		svc.Cache().Set(scene)
	}

	icons, err := imagegen.RenderIcons()
	if err != nil {
		t.Fatalf("RenderIcons: %v", err)
	}

	tracker := viewer.NewTracker()
	srv := api.NewServer(blender, svc, tracker, setupTestStore(t), icons, testConfig())
	return srv, tracker
}

func doRequest(t *testing.T, srv *api.Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body.Bytes(), &m); err != nil {
		t.Fatalf("decode response: %v\n%s", err, body.String())
	}
	return m
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/health", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decodeJSON(t, w.Body)["status"]; got != "ok" {
		t.Errorf("status = %v, want ok", got)
	}
}

func TestImageEndpoint_Placeholder(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/image", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeJSON(t, w.Body)
	if body["image_data"] != nil {
		t.Errorf("image_data = %v, want null", body["image_data"])
	}
	if body["prompt"] != "Generating first image..." {
		t.Errorf("prompt = %v", body["prompt"])
	}
	if body["timestamp"] != nil {
		t.Errorf("timestamp = %v, want null", body["timestamp"])
	}
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("unexpected Cache-Control %q on placeholder", cc)
	}
}

func TestImageEndpoint_Cached(t *testing.T) {
	t.Parallel()
	at := time.Now().Add(-10 * time.Second)
	scene := testScene(at)
	srv, tracker := setupServer(t, scene)

	w := doRequest(t, srv, "GET", "/image", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeJSON(t, w.Body)
	if body["image_data"] != scene.ImageData {
		t.Errorf("image_data = %v", body["image_data"])
	}
	if body["prompt"] != scene.Prompt {
		t.Errorf("prompt = %v", body["prompt"])
	}
	want := float64(at.UnixMilli()) / 1000.0
	if ts, ok := body["timestamp"].(float64); !ok || ts != want {
		t.Errorf("timestamp = %v, want %v", body["timestamp"], want)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("Cache-Control = %q", cc)
	}

	// Requesting an image registers the caller as a viewer.
	if tracker.Count() != 1 {
		t.Errorf("viewer count = %d, want 1", tracker.Count())
	}
}

func TestImageStatus(t *testing.T) {
	t.Parallel()

	t.Run("no image", func(t *testing.T) {
		srv, _ := setupServer(t, nil)
		w := doRequest(t, srv, "GET", "/image/status", nil)

		body := decodeJSON(t, w.Body)
		if body["available"] != false {
			t.Errorf("available = %v, want false", body["available"])
		}
		if body["timestamp"] != nil || body["age_seconds"] != nil {
			t.Errorf("timestamp/age = %v/%v, want null", body["timestamp"], body["age_seconds"])
		}
	})

	t.Run("cached image", func(t *testing.T) {
		at := time.Now().Add(-30 * time.Second)
		srv, _ := setupServer(t, testScene(at))
		w := doRequest(t, srv, "GET", "/image/status", nil)

		body := decodeJSON(t, w.Body)
		if body["available"] != true {
			t.Fatalf("available = %v, want true", body["available"])
		}
		age, ok := body["age_seconds"].(float64)
		if !ok || age < 29 || age > 60 {
			t.Errorf("age_seconds = %v, want about 30", body["age_seconds"])
		}
	})
}

func TestSeasonEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/season", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeJSON(t, w.Body)
	if doy, ok := body["day_of_year"].(float64); !ok || int(doy) != 359 {
		t.Errorf("day_of_year = %v, want 359", body["day_of_year"])
	}

	active, ok := body["active_seasons"].(map[string]any)
	if !ok {
		t.Fatalf("active_seasons missing: %v", body)
	}
	if weight, ok := active["christmas"].(float64); !ok || weight != 1.0 {
		t.Errorf("christmas weight = %v, want 1.0 on Dec 25", active["christmas"])
	}

	available, ok := body["available_seasons"].([]any)
	if !ok || len(available) == 0 {
		t.Fatalf("available_seasons missing: %v", body)
	}
	found := false
	for _, name := range available {
		if name == "winter" {
			found = true
		}
	}
	if !found {
		t.Errorf("available_seasons = %v, want to include winter", available)
	}
}

func TestConnectDisconnect(t *testing.T) {
	t.Parallel()
	srv, tracker := setupServer(t, nil)

	header := http.Header{"X-Session-Id": {"test-session-1"}}

	w := doRequest(t, srv, "POST", "/connect", header)
	if w.Code != 200 {
		t.Fatalf("connect: expected 200, got %d", w.Code)
	}
	body := decodeJSON(t, w.Body)
	if body["connected"] != float64(1) {
		t.Errorf("connected = %v, want 1", body["connected"])
	}
	if body["session_id"] != "test-session-1" {
		t.Errorf("session_id = %v, want test-session-1", body["session_id"])
	}

	w = doRequest(t, srv, "POST", "/disconnect", header)
	body = decodeJSON(t, w.Body)
	if body["connected"] != float64(0) {
		t.Errorf("connected after disconnect = %v, want 0", body["connected"])
	}
	if tracker.Count() != 0 {
		t.Errorf("tracker count = %d, want 0", tracker.Count())
	}
}

func TestViewersEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/viewers", nil)
	if got := decodeJSON(t, w.Body)["connected"]; got != float64(0) {
		t.Errorf("connected = %v, want 0", got)
	}

	doRequest(t, srv, "POST", "/connect", http.Header{"X-Session-Id": {"v1"}})
	w = doRequest(t, srv, "GET", "/viewers", nil)
	if got := decodeJSON(t, w.Body)["connected"]; got != float64(1) {
		t.Errorf("connected = %v, want 1", got)
	}
}

func TestVersionEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/version", nil)
	body := decodeJSON(t, w.Body)
	if body["version"] != "1.0.5" {
		t.Errorf("version = %v", body["version"])
	}
	if body["image_provider"] != "swarmui" {
		t.Errorf("image_provider = %v", body["image_provider"])
	}
	if body["swarmui"] != "http://localhost:7801" {
		t.Errorf("swarmui = %v", body["swarmui"])
	}
	if body["model"] != "Flux/flux1-schnell-fp8" {
		t.Errorf("model = %v", body["model"])
	}
}

func TestStatsEndpoint(t *testing.T) {
	t.Parallel()
	at := time.Now().Add(-5 * time.Second)
	srv, _ := setupServer(t, testScene(at))

	doRequest(t, srv, "POST", "/connect", http.Header{"X-Session-Id": {"stats-viewer"}})

	w := doRequest(t, srv, "GET", "/stats", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeJSON(t, w.Body)

	if body["version"] != "1.0.5" {
		t.Errorf("version = %v", body["version"])
	}
	if body["session_ttl_s"] != float64(300) {
		t.Errorf("session_ttl_s = %v, want 300", body["session_ttl_s"])
	}
	if body["current_connected"] != float64(1) {
		t.Errorf("current_connected = %v, want 1", body["current_connected"])
	}
	if body["peak_connected"] != float64(1) {
		t.Errorf("peak_connected = %v, want 1", body["peak_connected"])
	}
	if body["last_image_cached"] != true {
		t.Errorf("last_image_cached = %v, want true", body["last_image_cached"])
	}
	if body["favicon_ico_cached"] != true || body["apple_touch_cached"] != true || body["favicon_32_cached"] != true {
		t.Error("expected all icon caches reported as populated")
	}

	// Null-valued keys still appear in the payload.
	for _, key := range []string{
		"images_generated", "images_failed",
		"generation_time_min_s", "generation_time_max_s", "generation_time_avg_s",
		"last_activity_ts", "last_activity_age_s",
		"last_image_ts", "last_image_age_s",
		"active_sessions", "image_provider",
	} {
		if _, ok := body[key]; !ok {
			t.Errorf("stats payload missing %q", key)
		}
	}

	if body["images_generated"] != float64(0) {
		t.Errorf("images_generated = %v, want 0 with empty store", body["images_generated"])
	}
}

func TestFaviconEndpoints(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/favicon.ico", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/x-icon" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", cc)
	}
	ico := w.Body.Bytes()
	if len(ico) < 6 || ico[0] != 0 || ico[1] != 0 || ico[2] != 1 || ico[3] != 0 {
		t.Error("body does not start with an ICO header")
	}

	for _, path := range []string{"/favicon-32x32.png", "/apple-touch-icon.png"} {
		w := doRequest(t, srv, "GET", path, nil)
		if w.Code != 200 {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("%s: Content-Type = %q", path, ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
			t.Errorf("%s: body is not a PNG", path)
		}
	}
}

func TestIndexPage(t *testing.T) {
	t.Parallel()
	at := time.Now().Add(-time.Minute)
	scene := testScene(at)
	srv, _ := setupServer(t, scene)

	w := doRequest(t, srv, "GET", "/", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "VibeScape") {
		t.Error("expected VibeScape branding")
	}
	if !strings.Contains(body, "Version: 1.0.5") {
		t.Error("expected version in splash")
	}
	if !strings.Contains(body, "const pollInterval = 10000;") {
		t.Error("expected default poll interval of 10s")
	}
	if !strings.Contains(body, scene.ImageData) {
		t.Error("expected cached image embedded in page")
	}
	// Christmas palette drives the page theme on Dec 25.
	if !strings.Contains(body, "#0d1a12") {
		t.Error("expected christmas background color")
	}
}

func TestIndexPage_RefreshOverride(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/?refresh=30", nil)
	if !strings.Contains(w.Body.String(), "const pollInterval = 30000;") {
		t.Error("expected refresh query to override poll interval")
	}

	w = doRequest(t, srv, "GET", "/?refresh=bogus", nil)
	if !strings.Contains(w.Body.String(), "const pollInterval = 10000;") {
		t.Error("expected invalid refresh override to be ignored")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := setupServer(t, nil)

	w := doRequest(t, srv, "GET", "/metrics", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "vibescape_connected_viewers") {
		t.Error("expected viewer gauge in metrics output")
	}
}
