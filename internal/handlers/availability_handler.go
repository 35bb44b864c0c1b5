package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawsitiveapps/pet-scheduler/internal/dto"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
)

// AvailabilityHandler serves a fixed set of slots for any valid request.
// Real free-slot computation waits on the calendar integration.
type AvailabilityHandler struct{}

func NewAvailabilityHandler() *AvailabilityHandler {
	return &AvailabilityHandler{}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")

	if serviceID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Missing serviceId or date")
		return
	}

	slots := []dto.TimeSlotDTO{
		{StartISO: date + "T09:00:00.000Z", Label: "9:00 AM"},
		{StartISO: date + "T09:30:00.000Z", Label: "9:30 AM"},
		{StartISO: date + "T10:00:00.000Z", Label: "10:00 AM"},
		{StartISO: date + "T10:30:00.000Z", Label: "10:30 AM"},
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
