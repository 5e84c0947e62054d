package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/DaanHessen/lifecounter/internal/life"
)

// Memory keeps preferences and saved games in process. It is used when no
// DSN is configured; nothing survives a restart.
type Memory struct {
	mu    sync.Mutex
	prefs map[string]string
	games []savedGame
}

type savedGame struct {
	id      uuid.UUID
	players [][]byte
}

func NewMemory() *Memory {
	return &Memory{prefs: map[string]string{}}
}

func (m *Memory) PersistString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}

func (m *Memory) PersistedString(key, def string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.prefs[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Memory) String(key, def string) string {
	v, _ := m.PersistedString(key, def)
	return v
}

// SaveGame stores encoded copies, so later edits to players don't leak in.
func (m *Memory) SaveGame(ctx context.Context, players []*life.Model) (uuid.UUID, error) {
	g := savedGame{id: uuid.New()}
	for _, p := range players {
		b, err := json.Marshal(p)
		if err != nil {
			return uuid.Nil, wrap(err, "save game")
		}
		g.players = append(g.players, b)
	}
	m.mu.Lock()
	m.games = append(m.games, g)
	m.mu.Unlock()
	return g.id, nil
}

func (m *Memory) LatestGame(ctx context.Context) ([]*life.Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.games) == 0 {
		return nil, ErrNoGame
	}
	g := m.games[len(m.games)-1]
	out := make([]*life.Model, 0, len(g.players))
	for _, b := range g.players {
		p := new(life.Model)
		if err := json.Unmarshal(b, p); err != nil {
			return nil, wrap(err, "decode game")
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
