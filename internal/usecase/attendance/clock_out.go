package attendance

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	domain "github.com/eztechpal/eztech-portal/internal/domain/attendance"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/timezone"
)

type ClockOut struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewClockOut(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ClockOut {
	return &ClockOut{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute closes today's open entry. No open entry today, whether because
// the employee never clocked in or already clocked out, is a failure.
func (uc *ClockOut) Execute(
	ctx context.Context,
	employeeID string,
) (*models.AttendanceEntry, error) {

	entries, err := uc.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	loc := timezone.Location(uc.tz)

	open := domain.FindOpenToday(entries, employeeID, now, loc)
	if open == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotClockedIn)
	}

	open.ClockOut = &now
	if err := uc.repo.Update(ctx, *open); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &open.EmployeeID,
		Action:   "clocked_out",
		Entity:   "attendance",
		EntityID: &open.ID,
	})

	return open, nil
}
