// Package backup snapshots the whole store into a single JSON document.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eztechpal/eztech-portal/internal/blob"
	"github.com/eztechpal/eztech-portal/internal/collection"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// snapshotKeys is every key worth carrying into a backup, the session
// included so a restored device stays logged in.
var snapshotKeys = []string{
	collection.KeySession,
	collection.KeyEmployees,
	collection.KeyCustomers,
	collection.KeyServices,
	collection.KeyAttendances,
	collection.KeyAuditLogs,
	collection.KeyCredentials,
}

// Snapshot carries the raw value of each present key. Values stay opaque
// strings: a backup must round-trip even data this version cannot decode.
type Snapshot struct {
	TakenAt time.Time         `json:"taken_at"`
	Keys    map[string]string `json:"keys"`
}

type Exporter struct {
	store store.Store
	blobs blob.Store
}

func NewExporter(s store.Store, b blob.Store) *Exporter {
	return &Exporter{store: s, blobs: b}
}

// Export writes one snapshot object and returns its key.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	snap := Snapshot{
		TakenAt: time.Now().UTC(),
		Keys:    make(map[string]string, len(snapshotKeys)),
	}

	for _, key := range snapshotKeys {
		value, ok, err := e.store.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if ok {
			snap.Keys[key] = value
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("eztech-%s.json", snap.TakenAt.Format("20060102-150405"))
	if err := e.blobs.Put(ctx, name, data, "application/json"); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return name, nil
}

// ListSnapshots names the stored snapshots, oldest first.
func (e *Exporter) ListSnapshots(ctx context.Context) ([]string, error) {
	return e.blobs.List(ctx, "eztech-")
}
