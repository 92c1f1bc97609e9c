// Package credential persists the single API key that enables remote
// classification.
package credential

import (
	"context"
	"strings"
	"sync"

	"github.com/abhisek/taskscore/internal/store"
)

// SettingsKey is the settings row that holds the API key.
const SettingsKey = "groq_api_key"

// Store reads and writes one credential value.
type Store interface {
	// Get returns the stored value and whether one is present.
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, value string) error
	Remove(ctx context.Context) error
}

// Memory is an in-process Store.
type Memory struct {
	mu    sync.RWMutex
	value string
}

func NewMemory(initial string) *Memory {
	return &Memory{value: strings.TrimSpace(initial)}
}

func (m *Memory) Get(context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.value != "", nil
}

func (m *Memory) Set(_ context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

func (m *Memory) Remove(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	return nil
}

// Settings keeps the credential in the SQLite settings table.
type Settings struct {
	repo store.SettingsRepo
	key  string
}

// NewSettings stores the credential under SettingsKey.
func NewSettings(repo store.SettingsRepo) *Settings {
	return &Settings{repo: repo, key: SettingsKey}
}

func (s *Settings) Get(ctx context.Context) (string, bool, error) {
	v, ok, err := s.repo.Get(ctx, s.key)
	if err != nil || !ok || v == "" {
		return "", false, err
	}
	return v, true, nil
}

func (s *Settings) Set(ctx context.Context, value string) error {
	return s.repo.Set(ctx, s.key, value)
}

func (s *Settings) Remove(ctx context.Context) error {
	return s.repo.Delete(ctx, s.key)
}
