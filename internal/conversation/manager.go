package conversation

import (
	"sync"

	"watbot/internal/domain"
)

// Manager tracks, per chat, the pending step of a multi-step command.
// At most one step is tracked per chat; registering a new one replaces
// the old one. The lock guards only the map itself and is never held
// while a step is being resumed, so unrelated chats do not serialize
// on each other's handler work.
//
// Steps are held in memory only. A process restart drops every pending
// step and the affected chats silently stop responding to their flow.
type Manager struct {
	mu      sync.RWMutex
	pending map[int64]domain.Step
}

// NewManager creates an empty continuation manager
func NewManager() *Manager {
	return &Manager{pending: make(map[int64]domain.Step)}
}

// Pending returns the chat's pending step, if any
func (m *Manager) Pending(chatID int64) (domain.Step, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	step, ok := m.pending[chatID]
	return step, ok
}

// Expect registers the step the chat's next message should resume.
// Any previously pending step for the chat is replaced.
func (m *Manager) Expect(chatID int64, step domain.Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[chatID] = step
}

// Clear returns the chat to the idle state
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, chatID)
}
