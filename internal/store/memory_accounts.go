package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/calmora/models"
)

// memoryAccountRepository keeps accounts keyed by lower-cased email.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{accounts: make(map[string]models.Account)}
}

func (r *memoryAccountRepository) CreateAccount(_ context.Context, account models.Account) error {
	key := normalizeEmail(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[key]; ok {
		return ErrAccountAlreadyExists
	}
	r.accounts[key] = account

	return nil
}

func (r *memoryAccountRepository) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[normalizeEmail(email)]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]string)}
}

func (r *memorySessionRepository) CreateSession(_ context.Context, sessionID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = email
	return nil
}

func (r *memorySessionRepository) FindSession(_ context.Context, sessionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.sessions[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}

	return email, nil
}

func (r *memorySessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, sessionID)

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
