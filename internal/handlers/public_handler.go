package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/httpresp"
	"github.com/eztechpal/eztech-portal/internal/schedule"
	ucService "github.com/eztechpal/eztech-portal/internal/usecase/servicerequest"
)

type PublicHandler struct {
	submitUC *ucService.Submit
}

func NewPublicHandler(submitUC *ucService.Submit) *PublicHandler {
	return &PublicHandler{submitUC: submitUC}
}

// ======================================================
// SCHEDULE + SHOP INFO
// ======================================================

func (h *PublicHandler) GetSchedule(c *gin.Context) {
	httpresp.List(c, schedule.Weekly())
}

func (h *PublicHandler) GetInfo(c *gin.Context) {
	httpresp.OK(c, schedule.Info())
}

// ======================================================
// CONTACT FORM
// ======================================================

type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Issue string `json:"issue" binding:"required"`
}

func (h *PublicHandler) CreateServiceRequest(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// The form asks for an email but the stored record never had one; it is
	// only used by staff replying by hand.
	created, err := h.submitUC.Execute(c.Request.Context(), ucService.SubmitInput{
		Name:  req.Name,
		Phone: req.Phone,
		Issue: req.Issue,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_request", "Could not save your request.")
		return
	}

	httpresp.Created(c, gin.H{
		"request": created,
		"message": fmt.Sprintf(
			"Thank you %s! Your service request has been received. We will contact you at %s shortly. Reference ID: %s",
			created.CustomerName, created.Phone, created.ID,
		),
	})
}
