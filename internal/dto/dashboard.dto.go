package dto

import "github.com/eztechpal/eztech-portal/internal/models"

// AttendanceSummary is the stat block on the employee dashboard.
type AttendanceSummary struct {
	TotalDays   int    `json:"total_days"`
	ThisMonth   int    `json:"this_month"`
	TodayStatus string `json:"today_status"` // Present | Not Clocked In
}

type AttendanceHistoryResponse struct {
	Summary AttendanceSummary        `json:"summary"`
	Today   *models.AttendanceEntry  `json:"today"`
	Entries []models.AttendanceEntry `json:"entries"`
}

// ServiceStats is the stat block on the customer dashboard.
type ServiceStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type ServiceHistoryResponse struct {
	Stats    ServiceStats            `json:"stats"`
	Services []models.ServiceRequest `json:"services"`
}
