package auth

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	"github.com/eztechpal/eztech-portal/internal/auth"
	domain "github.com/eztechpal/eztech-portal/internal/domain/user"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/session"
)

type CustomerLogin struct {
	customers domain.Directory
	verifier  auth.Authenticator
	session   *session.Manager
	audit     *audit.Dispatcher
}

func NewCustomerLogin(
	customers domain.Directory,
	verifier auth.Authenticator,
	sess *session.Manager,
	audit *audit.Dispatcher,
) *CustomerLogin {
	return &CustomerLogin{
		customers: customers,
		verifier:  verifier,
		session:   sess,
		audit:     audit,
	}
}

// Execute logs a customer in by email lookup. Unknown emails fail with a
// register-first error; there is no auto-create here, unlike the employee
// admin fallback.
func (uc *CustomerLogin) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	cust, err := uc.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, httperr.ErrBusiness(httperr.CodeAccountNotFound)
	}

	if err := uc.verifier.Verify(ctx, email, password); err != nil {
		return nil, err
	}

	if err := uc.session.Set(ctx, *cust); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &cust.ID,
		Action: "customer_logged_in",
		Entity: "user",
	})

	return cust, nil
}
