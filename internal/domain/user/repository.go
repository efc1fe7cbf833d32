package user

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/models"
)

// Directory is one of the two account lists (employees or customers).
// Lookup is by email, the de-facto login key; nothing enforces uniqueness,
// and FindByEmail returns the first match like the portal always did.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	Append(ctx context.Context, u models.User) error

	List(ctx context.Context) ([]models.User, error)
}
