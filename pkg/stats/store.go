package stats

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrEmptyName = errors.New("player name is empty")

// Store keeps cumulative stats per player name.
type Store interface {
	Get(ctx context.Context, name string) (PlayerStats, error)
	Record(ctx context.Context, name string, result GameResult) (PlayerStats, []Achievement, error)
}

func normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return strings.ToLower(name), nil
}

type MemoryStore struct {
	mu    sync.Mutex
	stats map[string]PlayerStats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stats: make(map[string]PlayerStats)}
}

func (m *MemoryStore) Get(_ context.Context, name string) (PlayerStats, error) {
	key, err := normalize(name)
	if err != nil {
		return PlayerStats{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats[key], nil
}

func (m *MemoryStore) Record(_ context.Context, name string, result GameResult) (PlayerStats, []Achievement, error) {
	key, err := normalize(name)
	if err != nil {
		return PlayerStats{}, nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next, unlocked := Apply(m.stats[key], result)
	m.stats[key] = next
	return next, unlocked, nil
}
