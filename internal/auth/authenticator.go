// Package auth isolates the password policy. The portal historically accepts
// any password for a known email, and the login screens say so; AcceptAny
// keeps that behavior. Bcrypt is the real checker a deployment can switch to
// without touching handlers or use cases.
package auth

import "context"

type Authenticator interface {
	// Verify checks the password for the account registered under email.
	Verify(ctx context.Context, email, password string) error

	// Register records credentials for a newly created account.
	Register(ctx context.Context, email, password string) error
}

// AcceptAny approves every password. Placeholder policy, not authentication.
type AcceptAny struct{}

func NewAcceptAny() AcceptAny { return AcceptAny{} }

func (AcceptAny) Verify(context.Context, string, string) error   { return nil }
func (AcceptAny) Register(context.Context, string, string) error { return nil }
