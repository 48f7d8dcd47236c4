// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coleheinz/courtlog/models"
)

// defaultTimeout bounds every network call; there is no retry loop
// beyond the single 401 re-registration, so a failed call resolves
// within one timeout window.
const defaultTimeout = 10 * time.Second

// APIError is a non-success response from the server. Message carries
// the server's {"error": ...} body when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the courtlog API on behalf of one device. It obtains
// a token lazily via its TokenManager and re-registers transparently
// when the server stops recognizing the token.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenManager
}

func New(baseURL string, store TokenStore) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	base := strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL: base,
		http:    httpClient,
		tokens:  NewTokenManager(base, store, httpClient),
	}
}

// Initialize makes sure the device has a registered identity. Optional;
// the first authenticated call registers on demand anyway.
func (c *Client) Initialize(ctx context.Context) error {
	_, err := c.tokens.Token(ctx)
	return err
}

// HealthCheck reports whether the server is reachable.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Games fetches every game saved by this device, newest first.
func (c *Client) Games(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	if err := c.request(ctx, http.MethodGet, "/api/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SaveGame persists a finished game and returns the stored aggregate
// with server-assigned IDs and recomputed totals.
func (c *Client) SaveGame(ctx context.Context, game models.CreateGameRequest) (*models.Game, error) {
	var saved models.Game
	if err := c.request(ctx, http.MethodPost, "/api/games", game, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteGame removes a game by ID.
func (c *Client) DeleteGame(ctx context.Context, gameID int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/games/%d", gameID), nil, nil)
}

// request performs one authenticated call. A 401 triggers exactly one
// invalidate + re-register + retry; any failure after that is returned
// to the caller, so a permanently broken server cannot loop us.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, method, endpoint, body, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if err := c.tokens.Invalidate(); err != nil {
			return err
		}
		token, err = c.tokens.Register(ctx)
		if err != nil {
			return err
		}

		resp, err = c.do(ctx, method, endpoint, body, token)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.http.Do(req)
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    "API request failed",
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
