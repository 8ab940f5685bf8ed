// Package session tracks per-customer state for one table visit: the
// pending cart, the chat transcript, and the order-confirmation flag.
// Nothing here is durable; a session ends when the customer leaves.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"qrmenu/internal/models"
)

// Turn is one chat message, from the customer or the assistant.
type Turn struct {
	Role      string    `json:"role"` // "customer" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	RoleCustomer  = "customer"
	RoleAssistant = "assistant"
)

// Session is the state of one customer interaction.
type Session struct {
	ID          string
	TableID     uint
	TableNumber int
	Locale      models.Locale
	Cart        *Cart
	Transcript  []Turn

	// AwaitingOrderConfirmation is set while the conversation bridge
	// waits for a yes/no answer to a cart summary.
	AwaitingOrderConfirmation bool

	mu sync.Mutex
}

// Lock serializes access to the session for one chat turn or cart
// operation. Callers must not hold the lock across model calls.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// AddTurn appends a message to the transcript.
func (s *Session) AddTurn(role, content string) {
	s.Transcript = append(s.Transcript, Turn{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

// Manager is the in-process session registry, keyed by session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new session bound to a table.
func (m *Manager) Create(tableID uint, tableNumber int, locale models.Locale) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		TableID:     tableID,
		TableNumber: tableNumber,
		Locale:      locale,
		Cart:        &Cart{},
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Drop removes a session from the registry.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
