package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/domain/attendance"
	"github.com/eztechpal/eztech-portal/internal/dto"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
	"github.com/eztechpal/eztech-portal/internal/middleware"
	"github.com/eztechpal/eztech-portal/internal/timezone"
	ucAttendance "github.com/eztechpal/eztech-portal/internal/usecase/attendance"
)

// historyPageSize caps the dashboard history list.
const historyPageSize = 10

type AttendanceHandler struct {
	clockInUC  *ucAttendance.ClockIn
	clockOutUC *ucAttendance.ClockOut
	historyUC  *ucAttendance.History
	tz         string
}

func NewAttendanceHandler(
	clockInUC *ucAttendance.ClockIn,
	clockOutUC *ucAttendance.ClockOut,
	historyUC *ucAttendance.History,
	tz string,
) *AttendanceHandler {
	return &AttendanceHandler{
		clockInUC:  clockInUC,
		clockOutUC: clockOutUC,
		historyUC:  historyUC,
		tz:         tz,
	}
}

func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextUserID)
	employeeName := c.GetString(middleware.ContextUserName)

	entry, err := h.clockInUC.Execute(c.Request.Context(), employeeID, employeeName)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAlreadyClockedIn) {
			httperr.Conflict(c, httperr.CodeAlreadyClockedIn, "You have already clocked in today!")
			return
		}
		httperr.Internal(c, "failed_to_clock_in", "Could not record the clock-in.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry":   entry,
		"message": "Clocked in successfully!",
	})
}

func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextUserID)

	entry, err := h.clockOutUC.Execute(c.Request.Context(), employeeID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotClockedIn) {
			httperr.Conflict(c, httperr.CodeNotClockedIn, "Please clock in first!")
			return
		}
		httperr.Internal(c, "failed_to_clock_out", "Could not record the clock-out.")
		return
	}

	httpresp.OK(c, gin.H{
		"entry":   entry,
		"message": "Clocked out successfully!",
	})
}

// GetHistory returns the dashboard payload: summary numbers, today's entry
// and the most recent page of history, newest first.
func (h *AttendanceHandler) GetHistory(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextUserID)

	entries, err := h.historyUC.Execute(c.Request.Context(), employeeID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_attendance", "Could not load attendance history.")
		return
	}

	now := timezone.NowIn(h.tz)
	loc := timezone.Location(h.tz)

	// FindToday returns a pointer into entries, which the sort below
	// rearranges. Detach it first.
	today := attendance.FindToday(entries, employeeID, now, loc)
	if today != nil {
		detached := *today
		today = &detached
	}

	summary := dto.AttendanceSummary{
		TotalDays:   len(entries),
		TodayStatus: "Not Clocked In",
	}
	if today != nil {
		summary.TodayStatus = "Present"
	}
	for _, e := range entries {
		d := e.Date.In(loc)
		if d.Month() == now.Month() && d.Year() == now.Year() {
			summary.ThisMonth++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > historyPageSize {
		entries = entries[:historyPageSize]
	}

	httpresp.OK(c, dto.AttendanceHistoryResponse{
		Summary: summary,
		Today:   today,
		Entries: entries,
	})
}
