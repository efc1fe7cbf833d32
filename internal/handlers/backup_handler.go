package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/backup"
	"github.com/eztechpal/eztech-portal/internal/blob"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
)

type BackupHandler struct {
	exporter *backup.Exporter
	blobs    blob.Store
}

func NewBackupHandler(exporter *backup.Exporter, blobs blob.Store) *BackupHandler {
	return &BackupHandler{exporter: exporter, blobs: blobs}
}

func (h *BackupHandler) Create(c *gin.Context) {
	key, err := h.exporter.Export(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_create_backup", "Could not write the snapshot.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key":     key,
		"driver":  string(h.blobs.Driver()),
		"message": "Backup created successfully!",
	})
}

func (h *BackupHandler) List(c *gin.Context) {
	keys, err := h.exporter.ListSnapshots(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_backups", "Could not list snapshots.")
		return
	}
	httpresp.List(c, keys)
}
