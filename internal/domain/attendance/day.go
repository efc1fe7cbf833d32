package attendance

import (
	"time"

	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/timezone"
)

// ===============================
// Per-employee per-day state
// ===============================
//
// NoEntry -> Open (clock-in) -> Closed (clock-out). A second clock-in on the
// same day is refused whether today's entry is still open or already closed;
// the guard does not distinguish the two cases.

// FindToday returns the employee's first entry for the calendar day of now.
func FindToday(entries []models.AttendanceEntry, employeeID string, now time.Time, loc *time.Location) *models.AttendanceEntry {
	for i := range entries {
		if entries[i].EmployeeID == employeeID && timezone.SameDay(entries[i].Date, now, loc) {
			return &entries[i]
		}
	}
	return nil
}

// FindOpenToday returns today's entry still waiting for a clock-out.
func FindOpenToday(entries []models.AttendanceEntry, employeeID string, now time.Time, loc *time.Location) *models.AttendanceEntry {
	for i := range entries {
		e := &entries[i]
		if e.EmployeeID == employeeID && timezone.SameDay(e.Date, now, loc) && e.Open() {
			return e
		}
	}
	return nil
}
