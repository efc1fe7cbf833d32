package attendance

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/audit"
	domain "github.com/eztechpal/eztech-portal/internal/domain/attendance"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/ids"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/timezone"
)

type ClockIn struct {
	repo  domain.Repository
	ids   *ids.Generator
	audit *audit.Dispatcher
	tz    string
}

func NewClockIn(
	repo domain.Repository,
	gen *ids.Generator,
	audit *audit.Dispatcher,
	tz string,
) *ClockIn {
	return &ClockIn{
		repo:  repo,
		ids:   gen,
		audit: audit,
		tz:    tz,
	}
}

// Execute opens a new attendance entry for today. One entry per employee per
// day: an open entry or an already-finished cycle both refuse a second
// clock-in with the same error.
func (uc *ClockIn) Execute(
	ctx context.Context,
	employeeID string,
	employeeName string,
) (*models.AttendanceEntry, error) {

	entries, err := uc.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	loc := timezone.Location(uc.tz)

	if existing := domain.FindToday(entries, employeeID, now, loc); existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyClockedIn)
	}

	entry := models.AttendanceEntry{
		ID:           uc.ids.Next(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ClockIn:      now,
		Date:         now,
	}

	if err := uc.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &entry.EmployeeID,
		Action:   "clocked_in",
		Entity:   "attendance",
		EntityID: &entry.ID,
	})

	return &entry, nil
}
