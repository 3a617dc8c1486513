// Package identity holds the signed-in user for the session. Login is
// simulated: any email signs in, there is no credential check.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rick465/react-shop/internal/storage"
)

var (
	ErrMissingEmail = errors.New("email is required")
	ErrNotSignedIn  = errors.New("no user is signed in")
)

const storageKey = "session"

// User is the current identity. Email doubles as the user key orders are
// filed under.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Manager owns the session and its durable copy.
type Manager struct {
	storage storage.Store

	mu   sync.RWMutex
	user *User
}

// NewManager restores any persisted session; a malformed payload means
// signed out.
func NewManager(store storage.Store) *Manager {
	m := &Manager{storage: store}
	m.load()
	return m
}

func (m *Manager) load() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := m.storage.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Printf("failed to load session: %v", err)
		return
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("discarding malformed session payload: %v", err)
		return
	}
	m.user = &user
}

// Login signs the user in and persists the session.
func (m *Manager) Login(ctx context.Context, email, name string) (*User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	user := User{Email: email, Name: name}
	if err := m.persist(ctx, &user); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()

	u := user
	return &u, nil
}

// Logout clears the session and drops the durable record.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.storage.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	return nil
}

// UpdateProfile changes the display name of the signed-in user.
func (m *Manager) UpdateProfile(ctx context.Context, name string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil, ErrNotSignedIn
	}

	updated := *m.user
	updated.Name = name
	if err := m.persist(ctx, &updated); err != nil {
		return nil, err
	}
	m.user = &updated

	u := updated
	return &u, nil
}

// Current returns the signed-in user, or nil when signed out.
func (m *Manager) Current() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) persist(ctx context.Context, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := m.storage.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
