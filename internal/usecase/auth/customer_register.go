package auth

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	"github.com/eztechpal/eztech-portal/internal/auth"
	domain "github.com/eztechpal/eztech-portal/internal/domain/user"
	"github.com/eztechpal/eztech-portal/internal/ids"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/session"
)

type RegisterCustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type CustomerRegister struct {
	customers domain.Directory
	verifier  auth.Authenticator
	ids       *ids.Generator
	session   *session.Manager
	audit     *audit.Dispatcher
}

func NewCustomerRegister(
	customers domain.Directory,
	verifier auth.Authenticator,
	gen *ids.Generator,
	sess *session.Manager,
	audit *audit.Dispatcher,
) *CustomerRegister {
	return &CustomerRegister{
		customers: customers,
		verifier:  verifier,
		ids:       gen,
		session:   sess,
		audit:     audit,
	}
}

// Execute always creates a fresh account and logs it in. Registering an
// email twice creates a second record; login finds the first.
func (uc *CustomerRegister) Execute(
	ctx context.Context,
	in RegisterCustomerInput,
) (*models.User, error) {

	user := models.User{
		ID:    uc.ids.Next(),
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Role:  models.RoleCustomer,
	}

	if err := uc.customers.Append(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.verifier.Register(ctx, in.Email, in.Password); err != nil {
		return nil, err
	}

	if err := uc.session.Set(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "customer_registered",
		Entity: "user",
	})

	return &user, nil
}
