package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/pkg/logger"
)

func newGistStore(srvURL, token string) *StateGistRepository {
	store := NewStateGistRepository(context.Background(), srvURL, "abc123", token, "1", 2*time.Second, logger.NewNop())
	return store.(*StateGistRepository)
}

func TestGistLoadParsesState(t *testing.T) {
	content := `{"users": {"42": {"name": "Anna"}}, "pending": {}, "last_update_id": 9}`
	var capturedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"files": map[string]any{
				"state.json": map[string]string{"content": content},
			},
		})
	}))
	t.Cleanup(srv.Close)

	state, err := newGistStore(srv.URL, "").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedPath != "/gists/abc123" {
		t.Errorf("unexpected path: %s", capturedPath)
	}
	if u := state.Users["42"]; u == nil || u.Name != "Anna" {
		t.Errorf("state not decoded from gist: %+v", state.Users)
	}
	if state.LastUpdateID != 9 {
		t.Errorf("unexpected cursor: %d", state.LastUpdateID)
	}
}

func TestGistLoadWithoutStateFileStartsFresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"files": map[string]any{
				"readme.md": map[string]string{"content": "hi"},
			},
		})
	}))
	t.Cleanup(srv.Close)

	state, err := newGistStore(srv.URL, "").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Users) != 0 || state.LastUpdateID != 0 {
		t.Errorf("expected a fresh state, got %+v", state)
	}
}

func TestGistLoadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	if _, err := newGistStore(srv.URL, "").Load(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestGistSaveWithoutTokenSkips(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	if err := newGistStore(srv.URL, "").Save(context.Background(), entity.NewState()); err != nil {
		t.Fatalf("a skipped save is not an error, got: %v", err)
	}
	if requests != 0 {
		t.Fatalf("no request must leave the process without a token, saw %d", requests)
	}
}

func TestGistSavePatchesStateFile(t *testing.T) {
	var (
		method string
		path   string
		auth   string
		body   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	state := entity.NewState()
	state.Users["42"] = &entity.User{Name: "Anna"}
	state.LastUpdateID = 9

	if err := newGistStore(srv.URL, "gh-token").Save(context.Background(), state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPatch {
		t.Errorf("unexpected method: %s", method)
	}
	if path != "/gists/abc123" {
		t.Errorf("unexpected path: %s", path)
	}
	if auth != "Bearer gh-token" {
		t.Errorf("unexpected authorization header: %q", auth)
	}

	var payload struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("undecodable payload: %v", err)
	}
	file, ok := payload.Files["state.json"]
	if !ok {
		t.Fatalf("payload must update state.json, got files %v", payload.Files)
	}
	decoded, err := decodeState([]byte(file.Content), "")
	if err != nil {
		t.Fatalf("stored content must decode back: %v", err)
	}
	if u := decoded.Users["42"]; u == nil || u.Name != "Anna" {
		t.Errorf("state did not survive the save: %+v", decoded.Users)
	}
	if decoded.LastUpdateID != 9 {
		t.Errorf("cursor did not survive the save: %d", decoded.LastUpdateID)
	}
}
