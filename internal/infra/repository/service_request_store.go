// Package repository implements the domain repositories over store-backed
// collections. Every write loads the full list, mutates it in memory and
// saves it back; the single-writer assumption lives one layer up.
package repository

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/collection"
	domain "github.com/eztechpal/eztech-portal/internal/domain/servicerequest"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
)

type ServiceRequestStoreRepository struct {
	col *collection.Collection[models.ServiceRequest]
}

var _ domain.Repository = (*ServiceRequestStoreRepository)(nil)

func NewServiceRequestStoreRepository(s store.Store) *ServiceRequestStoreRepository {
	return &ServiceRequestStoreRepository{
		col: collection.New[models.ServiceRequest](s, collection.KeyServices),
	}
}

func (r *ServiceRequestStoreRepository) List(ctx context.Context) ([]models.ServiceRequest, error) {
	return r.col.Load(ctx)
}

func (r *ServiceRequestStoreRepository) Append(ctx context.Context, req models.ServiceRequest) error {
	return r.col.Append(ctx, req)
}
