package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/domain/servicerequest"
	"github.com/eztechpal/eztech-portal/internal/dto"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
	"github.com/eztechpal/eztech-portal/internal/session"
	ucService "github.com/eztechpal/eztech-portal/internal/usecase/servicerequest"
)

type ServicesHandler struct {
	listUC  *ucService.ListForCustomer
	session *session.Manager
}

func NewServicesHandler(listUC *ucService.ListForCustomer, sess *session.Manager) *ServicesHandler {
	return &ServicesHandler{listUC: listUC, session: sess}
}

// GetMyServices returns the customer dashboard payload. Ownership is the
// phone-or-name match, so the full session user is needed, not just the
// token subject.
func (h *ServicesHandler) GetMyServices(c *gin.Context) {
	user, ok, err := h.session.Current(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not read the session.")
		return
	}
	if !ok {
		httperr.Unauthorized(c, httperr.CodeNoActiveSession, "No active session. Please log in.")
		return
	}

	services, err := h.listUC.Execute(c.Request.Context(), user)
	if err != nil {
		httperr.Internal(c, "failed_to_load_services", "Could not load service requests.")
		return
	}

	stats := dto.ServiceStats{Total: len(services)}
	for _, s := range services {
		switch servicerequest.Status(s.Status) {
		case servicerequest.StatusPending:
			stats.Pending++
		case servicerequest.StatusCompleted:
			stats.Completed++
		}
	}

	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Date.After(services[j].Date)
	})

	httpresp.OK(c, dto.ServiceHistoryResponse{
		Stats:    stats,
		Services: services,
	})
}
