package servicerequest

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	domain "github.com/eztechpal/eztech-portal/internal/domain/servicerequest"
	"github.com/eztechpal/eztech-portal/internal/ids"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitInput struct {
	Name  string
	Phone string
	Issue string
}

// ======================================================
// USE CASE
// ======================================================

type Submit struct {
	repo  domain.Repository
	ids   *ids.Generator
	audit *audit.Dispatcher
	tz    string
}

func NewSubmit(
	repo domain.Repository,
	gen *ids.Generator,
	audit *audit.Dispatcher,
	tz string,
) *Submit {
	return &Submit{
		repo:  repo,
		ids:   gen,
		audit: audit,
		tz:    tz,
	}
}

// Execute appends one pending request and returns it; the id doubles as the
// reference number shown to the customer.
func (uc *Submit) Execute(
	ctx context.Context,
	in SubmitInput,
) (*models.ServiceRequest, error) {

	req := models.ServiceRequest{
		ID:           uc.ids.Next(),
		CustomerName: in.Name,
		Phone:        in.Phone,
		Issue:        in.Issue,
		Status:       string(domain.InitialStatus()),
		Date:         timezone.NowIn(uc.tz),
	}

	if err := uc.repo.Append(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_request_created",
		Entity:   "service_request",
		EntityID: &req.ID,
	})

	return &req, nil
}
