package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
)

// BookingHandler acknowledges booking submissions. Nothing is persisted:
// the calendar integration that will create the real event lands here later.
type BookingHandler struct{}

func NewBookingHandler() *BookingHandler {
	return &BookingHandler{}
}

type CreateAppointmentRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	StartISO  string `json:"startISO"`
	PetName   string `json:"petName"`
	Species   string `json:"species"`
	OwnerName string `json:"ownerName"`
	Phone     string `json:"phone"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Missing required fields")
		return
	}

	if req.ServiceID == "" || req.Date == "" || req.StartISO == "" ||
		req.PetName == "" || req.OwnerName == "" || req.Phone == "" {

		httperr.BadRequest(c, "validation_error", "Missing required fields")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
