package servicerequest

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.ServiceRequest, error)

	Append(ctx context.Context, req models.ServiceRequest) error
}
