package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/eztechpal/eztech-portal/internal/collection"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// Logger appends audit records to their own collection. Only the dispatcher
// worker writes this key, so the read-modify-write cycle has one writer.
type Logger struct {
	col *collection.Collection[models.AuditLog]
}

func New(s store.Store) *Logger {
	return &Logger{col: collection.New[models.AuditLog](s, collection.KeyAuditLogs)}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			// Keep the record; the sentinel marks what was lost.
			metaJSON = `{"error":"unencodable metadata"}`
		} else {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	return l.col.Append(ctx, entry)
}

// List returns every audit record in write order.
func (l *Logger) List(ctx context.Context) ([]models.AuditLog, error) {
	return l.col.Load(ctx)
}
