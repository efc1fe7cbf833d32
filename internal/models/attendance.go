package models

import "time"

// AttendanceEntry is one clock-in record for an employee. ClockOut stays nil
// until the matching clock-out happens on the same day.
type AttendanceEntry struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut,omitempty"`
	Date         time.Time  `json:"date"`
}

// Open reports whether the entry still waits for a clock-out.
func (a AttendanceEntry) Open() bool {
	return a.ClockOut == nil
}
