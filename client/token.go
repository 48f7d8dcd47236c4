// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/coleheinz/courtlog/models"
)

var ErrRegistrationFailed = errors.New("device registration failed")

// TokenStore is the single-slot persistent cache for the device token.
// Get returns "" (not an error) when the slot is empty.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file, the desktop/CLI equivalent
// of the mobile app's single AsyncStorage key.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Get() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Set(token string) error {
	if err := os.WriteFile(s.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryTokenStore holds the token in memory only. Useful for tests and
// throwaway sessions; the device re-registers on every process start.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// TokenManager owns the device's cached token slot. All operations run
// behind one mutex so concurrent callers converge on a single device
// identity instead of racing to register duplicates.
type TokenManager struct {
	baseURL string
	store   TokenStore
	http    *http.Client

	mu sync.Mutex
}

func NewTokenManager(baseURL string, store TokenStore, httpClient *http.Client) *TokenManager {
	return &TokenManager{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http:    httpClient,
	}
}

// Token returns the cached token, registering a new device identity if
// the slot is empty.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.store.Get()
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	return m.register(ctx)
}

// Register issues a fresh device identity regardless of the cached
// slot, persists the new token, and returns it.
func (m *TokenManager) Register(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.register(ctx)
}

// Invalidate clears the cached token so the next Token call
// re-registers. Called after the server rejects the token as unknown.
func (m *TokenManager) Invalidate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Clear()
}

// register must be called with the mutex held. Nothing is cached on
// failure.
func (m *TokenManager) register(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/auth/device", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrRegistrationFailed, resp.StatusCode)
	}

	var body models.RegisterDeviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrRegistrationFailed)
	}

	if err := m.store.Set(body.Token); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}

	return body.Token, nil
}
