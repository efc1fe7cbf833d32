package attendance

import (
	"context"

	domain "github.com/eztechpal/eztech-portal/internal/domain/attendance"
	"github.com/eztechpal/eztech-portal/internal/models"
)

type History struct {
	repo domain.Repository
}

func NewHistory(repo domain.Repository) *History {
	return &History{repo: repo}
}

// Execute returns the employee's entries in stored order; the presentation
// layer sorts for display and computes its summary numbers.
func (uc *History) Execute(
	ctx context.Context,
	employeeID string,
) ([]models.AttendanceEntry, error) {
	return uc.repo.ListForEmployee(ctx, employeeID)
}
