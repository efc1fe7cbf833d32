package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
	"github.com/eztechpal/eztech-portal/internal/session"
)

type MeHandler struct {
	session *session.Manager
}

func NewMeHandler(sess *session.Manager) *MeHandler {
	return &MeHandler{session: sess}
}

// GetMe returns the persisted session user. The session survives restarts,
// so a valid token whose login predates the current process still resolves.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok, err := h.session.Current(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not read the session.")
		return
	}
	if !ok {
		httperr.Unauthorized(c, httperr.CodeNoActiveSession, "No active session. Please log in.")
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}
