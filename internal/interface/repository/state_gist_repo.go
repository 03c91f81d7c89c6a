package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
)

const (
	defaultGithubAPIBase = "https://api.github.com"
	gistStateFilename    = "state.json"
)

// StateGistRepository persists bot state in a GitHub Gist. Reads work on
// public gists without credentials; writes need a token.
type StateGistRepository struct {
	logger      logger.Logger
	baseURL     string
	gistID      string
	adminChatID string
	hasToken    bool
	client      *http.Client
}

// NewStateGistRepository creates a new gist-backed state repository. When a
// token is provided the underlying client authenticates every request.
func NewStateGistRepository(ctx context.Context, baseURL, gistID, githubToken, adminChatID string, timeout time.Duration, logger logger.Logger) repository.StateRepository {
	if baseURL == "" {
		baseURL = defaultGithubAPIBase
	}

	client := &http.Client{Timeout: timeout}
	hasToken := githubToken != ""
	if hasToken {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: githubToken})
		client = oauth2.NewClient(ctx, ts)
		client.Timeout = timeout
	}

	return &StateGistRepository{
		logger:      logger,
		baseURL:     baseURL,
		gistID:      gistID,
		adminChatID: adminChatID,
		hasToken:    hasToken,
		client:      client,
	}
}

// Load fetches the gist and decodes its state.json file. A gist without that
// file yields a fresh empty state.
func (r *StateGistRepository) Load(ctx context.Context) (*entity.State, error) {
	url := fmt.Sprintf("%s/gists/%s", r.baseURL, r.gistID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gist request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gist fetch returned status %d", resp.StatusCode)
	}

	var gist struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gist); err != nil {
		return nil, fmt.Errorf("failed to decode gist: %w", err)
	}

	file, ok := gist.Files[gistStateFilename]
	if !ok {
		r.logger.Info("Gist has no state file yet, starting fresh", "gistId", r.gistID)
		return entity.NewState(), nil
	}

	state, err := decodeState([]byte(file.Content), r.adminChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gist state: %w", err)
	}

	r.logger.Info("State loaded from gist", "gistId", r.gistID, "users", len(state.Users))
	return state, nil
}

// Save patches state.json inside the gist. Without a token the save is
// skipped with a warning; the next run will reload whatever the gist held.
func (r *StateGistRepository) Save(ctx context.Context, state *entity.State) error {
	if !r.hasToken {
		r.logger.Warn("No GitHub token configured, skipping gist save", "gistId", r.gistID)
		return nil
	}

	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	payload := map[string]interface{}{
		"files": map[string]interface{}{
			gistStateFilename: map[string]string{"content": string(data)},
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gist payload: %w", err)
	}

	url := fmt.Sprintf("%s/gists/%s", r.baseURL, r.gistID)
	req, err := http.NewRequestWithContext(ctx, "PATCH", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create gist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save gist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gist save returned status %d", resp.StatusCode)
	}

	r.logger.Info("State saved to gist", "gistId", r.gistID)
	return nil
}
