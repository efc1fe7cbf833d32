// Package session persists the currently authenticated user so a restart
// keeps the login, mirroring how the portal always behaved.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eztechpal/eztech-portal/internal/collection"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// Manager reads and writes the single session record. It carries no state of
// its own: every call goes to the store, so there is no ambient current-user
// singleton to drift out of sync.
type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Current returns the logged-in user, if any.
func (m *Manager) Current(ctx context.Context) (*models.User, bool, error) {
	raw, ok, err := m.store.Get(ctx, collection.KeySession)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var user models.User
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&user); err != nil {
		return nil, false, &collection.ErrCorrupt{Key: collection.KeySession, Err: err}
	}
	return &user, true, nil
}

// Set makes user the session owner.
func (m *Manager) Set(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return m.store.Set(ctx, collection.KeySession, string(data))
}

// Clear logs out.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Remove(ctx, collection.KeySession)
}
