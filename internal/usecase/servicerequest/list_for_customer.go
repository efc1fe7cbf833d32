package servicerequest

import (
	"context"

	domain "github.com/eztechpal/eztech-portal/internal/domain/servicerequest"
	"github.com/eztechpal/eztech-portal/internal/models"
)

type ListForCustomer struct {
	repo domain.Repository
}

func NewListForCustomer(repo domain.Repository) *ListForCustomer {
	return &ListForCustomer{repo: repo}
}

// Execute returns the requests the user owns under the phone-or-name match.
// A nil user (nobody logged in) sees nothing, not an error.
func (uc *ListForCustomer) Execute(
	ctx context.Context,
	user *models.User,
) ([]models.ServiceRequest, error) {

	if user == nil {
		return []models.ServiceRequest{}, nil
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]models.ServiceRequest, 0, len(all))
	for _, req := range all {
		if domain.Owns(*user, req) {
			own = append(own, req)
		}
	}
	return own, nil
}
