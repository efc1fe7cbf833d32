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

type EmployeeLogin struct {
	employees  domain.Directory
	verifier   auth.Authenticator
	session    *session.Manager
	audit      *audit.Dispatcher
	adminEmail string
	adminName  string
}

func NewEmployeeLogin(
	employees domain.Directory,
	verifier auth.Authenticator,
	sess *session.Manager,
	audit *audit.Dispatcher,
	adminEmail string,
	adminName string,
) *EmployeeLogin {
	return &EmployeeLogin{
		employees:  employees,
		verifier:   verifier,
		session:    sess,
		audit:      audit,
		adminEmail: adminEmail,
		adminName:  adminName,
	}
}

// Execute logs an employee in. Any email present in the directory passes
// whatever the password policy approves; the configured admin address gets a
// synthesized account when the directory has none. The synthesized admin
// goes into the session only, never into the directory.
func (uc *EmployeeLogin) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	emp, err := uc.employees.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if emp == nil {
		if email != uc.adminEmail {
			return nil, httperr.ErrBusiness(httperr.CodeAuthFailed)
		}
		emp = &models.User{
			ID:    "1",
			Name:  uc.adminName,
			Email: uc.adminEmail,
			Role:  models.RoleEmployee,
		}
	}

	if err := uc.verifier.Verify(ctx, email, password); err != nil {
		return nil, err
	}

	if err := uc.session.Set(ctx, *emp); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &emp.ID,
		Action: "employee_logged_in",
		Entity: "user",
	})

	return emp, nil
}
