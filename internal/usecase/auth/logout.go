package auth

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	"github.com/eztechpal/eztech-portal/internal/session"
)

type Logout struct {
	session *session.Manager
	audit   *audit.Dispatcher
}

func NewLogout(sess *session.Manager, audit *audit.Dispatcher) *Logout {
	return &Logout{session: sess, audit: audit}
}

func (uc *Logout) Execute(ctx context.Context) error {
	user, ok, err := uc.session.Current(ctx)
	if err != nil {
		return err
	}

	if err := uc.session.Clear(ctx); err != nil {
		return err
	}

	if ok {
		uc.audit.Dispatch(audit.Event{
			UserID: &user.ID,
			Action: "logged_out",
			Entity: "user",
		})
	}
	return nil
}
