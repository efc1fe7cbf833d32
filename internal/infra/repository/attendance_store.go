package repository

import (
	"context"
	"fmt"

	"github.com/eztechpal/eztech-portal/internal/collection"
	domain "github.com/eztechpal/eztech-portal/internal/domain/attendance"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
)

type AttendanceStoreRepository struct {
	col *collection.Collection[models.AttendanceEntry]
}

var _ domain.Repository = (*AttendanceStoreRepository)(nil)

func NewAttendanceStoreRepository(s store.Store) *AttendanceStoreRepository {
	return &AttendanceStoreRepository{
		col: collection.New[models.AttendanceEntry](s, collection.KeyAttendances),
	}
}

func (r *AttendanceStoreRepository) ListAll(ctx context.Context) ([]models.AttendanceEntry, error) {
	return r.col.Load(ctx)
}

func (r *AttendanceStoreRepository) ListForEmployee(ctx context.Context, employeeID string) ([]models.AttendanceEntry, error) {
	entries, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]models.AttendanceEntry, 0, len(entries))
	for _, e := range entries {
		if e.EmployeeID == employeeID {
			own = append(own, e)
		}
	}
	return own, nil
}

func (r *AttendanceStoreRepository) Append(ctx context.Context, entry models.AttendanceEntry) error {
	return r.col.Append(ctx, entry)
}

// Update replaces the entry with the same id, keeping list order.
func (r *AttendanceStoreRepository) Update(ctx context.Context, entry models.AttendanceEntry) error {
	entries, err := r.col.Load(ctx)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return r.col.Save(ctx, entries)
		}
	}
	return fmt.Errorf("attendance entry %s not found", entry.ID)
}
