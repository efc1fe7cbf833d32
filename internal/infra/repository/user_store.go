package repository

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/collection"
	domain "github.com/eztechpal/eztech-portal/internal/domain/user"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// UserStoreRepository serves one directory; the employee and customer lists
// are separate collections, so it is instantiated twice.
type UserStoreRepository struct {
	col *collection.Collection[models.User]
}

var _ domain.Directory = (*UserStoreRepository)(nil)

func NewEmployeeDirectory(s store.Store) *UserStoreRepository {
	return &UserStoreRepository{col: collection.New[models.User](s, collection.KeyEmployees)}
}

func NewCustomerDirectory(s store.Store) *UserStoreRepository {
	return &UserStoreRepository{col: collection.New[models.User](s, collection.KeyCustomers)}
}

func (r *UserStoreRepository) List(ctx context.Context) ([]models.User, error) {
	return r.col.Load(ctx)
}

// FindByEmail returns the first match, or nil when the directory has none.
func (r *UserStoreRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *UserStoreRepository) Append(ctx context.Context, u models.User) error {
	return r.col.Append(ctx, u)
}
