package game

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"portalchess/internal/config"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 按配置开一局；配置有问题时返回 config.ErrInvalidConfig
func (m *Manager) NewGame(cfg config.GameConfig) (*GameState, error) {
	g, err := NewGameState(uuid.NewString(), cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

// IDs 当前所有对局，排好序
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.games))
	for id := range m.games {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
