package attendance

import (
	"context"

	"github.com/eztechpal/eztech-portal/internal/models"
)

type Repository interface {
	// -------- Queries --------
	ListForEmployee(
		ctx context.Context,
		employeeID string,
	) ([]models.AttendanceEntry, error)

	ListAll(
		ctx context.Context,
	) ([]models.AttendanceEntry, error)

	// -------- Writes (read-modify-write over the full collection) --------
	Append(
		ctx context.Context,
		entry models.AttendanceEntry,
	) error

	Update(
		ctx context.Context,
		entry models.AttendanceEntry,
	) error
}
