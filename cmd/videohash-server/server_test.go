package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dolr-ai/videohash-indexer/internal/activity"
	"github.com/dolr-ai/videohash-indexer/internal/config"
	"github.com/dolr-ai/videohash-indexer/internal/coordinator"
)

// newTestApp is a helper that creates a new, valid application instance for
// use in tests, centralizing the setup logic shared across handler tests.
func newTestApp(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Defaults()
	cfg.BindAddress = "127.0.0.1:0" // random free port

	app := &application{
		cfg:    cfg,
		logger: logger,
		coord: coordinator.New(
			coordinator.WithMaxHammingDistance(cfg.HammingThreshold),
			coordinator.WithDuplicateSimilarity(cfg.DuplicateSimilarity),
		),
		activity:  activity.New(activity.DefaultCapacity),
		metrics:   NewMetrics(),
		readyCh:   make(chan struct{}),
		startedAt: time.Now(),
	}
	app.router = app.routes()

	return app
}

func startTestServer(t *testing.T) *application {
	t.Helper()
	app := newTestApp(t)

	go func() { _ = app.serve() }()
	<-app.readyCh
	t.Cleanup(func() { _ = app.listener.Close() })

	return app
}

func (app *application) baseURL() string {
	return "http://" + app.listener.Addr().String()
}

func postSearch(t *testing.T, app *application, videoID, hash string) (int, searchResponseJSON) {
	t.Helper()
	body, _ := json.Marshal(searchRequestJSON{VideoID: videoID, Hash: hash})
	resp, err := http.Post(app.baseURL()+"/search", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /search: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out searchResponseJSON
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

func deleteHash(t *testing.T, app *application, videoID string) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, app.baseURL()+"/hash/"+videoID, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /hash/%s: %v", videoID, err)
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	app := startTestServer(t)

	resp, err := http.Get(app.baseURL() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSearchInsertThenMatch(t *testing.T) {
	app := startTestServer(t)

	zeros := strings.Repeat("0", 64)

	status, out := postSearch(t, app, "v1", zeros)
	if status != http.StatusOK || out.MatchFound || !out.HashAdded {
		t.Fatalf("first search = (%d, %+v), want insert", status, out)
	}

	status, out = postSearch(t, app, "v2", zeros)
	if status != http.StatusOK || !out.MatchFound || out.HashAdded {
		t.Fatalf("second search = (%d, %+v), want match", status, out)
	}
	if out.MatchDetails == nil || out.MatchDetails.VideoID != "v1" {
		t.Fatalf("match details = %+v, want video_id=v1", out.MatchDetails)
	}
	if out.MatchDetails.SimilarityPercentage != 100.0 {
		t.Fatalf("similarity = %v, want 100.0", out.MatchDetails.SimilarityPercentage)
	}
}

func TestSearchInvalidHash(t *testing.T) {
	app := startTestServer(t)

	status, _ := postSearch(t, app, "v1", "not-binary")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestDeleteThenNotFound(t *testing.T) {
	app := startTestServer(t)

	zeros := strings.Repeat("0", 64)
	if status, _ := postSearch(t, app, "v1", zeros); status != http.StatusOK {
		t.Fatalf("insert failed: %d", status)
	}

	if status := deleteHash(t, app, "v1"); status != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", status)
	}

	if status := deleteHash(t, app, "v1"); status != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", status)
	}
}

func TestDebugRecentReflectsActivity(t *testing.T) {
	app := startTestServer(t)

	zeros := strings.Repeat("0", 64)
	postSearch(t, app, "v1", zeros)

	resp, err := http.Get(app.baseURL() + "/debug/recent")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var entries []activity.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one recent activity entry")
	}
	if entries[0].VideoID != "v1" {
		t.Fatalf("most recent entry video_id = %q, want v1", entries[0].VideoID)
	}
}
