package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/eztechpal/eztech-portal/internal/collection"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// Credential pairs an email with its bcrypt hash. Stored in its own
// collection so the user records keep their historical shape.
type Credential struct {
	Email string `json:"email"`
	Hash  string `json:"hash"`
}

// Bcrypt verifies real passwords. Accounts created before the switch have no
// credential record and can no longer log in until they register one.
type Bcrypt struct {
	col *collection.Collection[Credential]
}

func NewBcrypt(s store.Store) *Bcrypt {
	return &Bcrypt{col: collection.New[Credential](s, collection.KeyCredentials)}
}

func (b *Bcrypt) Verify(ctx context.Context, email, password string) error {
	creds, err := b.col.Load(ctx)
	if err != nil {
		return err
	}

	// Last registration for an email wins.
	for i := len(creds) - 1; i >= 0; i-- {
		if creds[i].Email == email {
			if bcrypt.CompareHashAndPassword([]byte(creds[i].Hash), []byte(password)) != nil {
				return httperr.ErrBusiness(httperr.CodeAuthFailed)
			}
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeAuthFailed)
}

func (b *Bcrypt) Register(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return b.col.Append(ctx, Credential{Email: email, Hash: string(hash)})
}

// FromMode picks the authenticator for a config value.
func FromMode(mode string, s store.Store) Authenticator {
	if mode == "bcrypt" {
		return NewBcrypt(s)
	}
	return NewAcceptAny()
}
