package handlers

import (
	"net/http"

	appointmentRepo "schedly/database/repository/appointment"
	"schedly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentsHandler serves the read-only booked-appointments feed used by
// the admin day view.
type AppointmentsHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

// NewAppointmentsHandler constructs an AppointmentsHandler.
func NewAppointmentsHandler(repo appointmentRepo.AppointmentRepository) *AppointmentsHandler {
	return &AppointmentsHandler{Repo: repo}
}

// ListAppointmentsHandler handles GET /api/appointments?date=YYYY-MM-DD.
func (h *AppointmentsHandler) ListAppointmentsHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	date := c.Query("date")
	if !datePattern.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must match YYYY-MM-DD")
		return
	}

	appts, err := h.Repo.ListByDate(c.Request.Context(), tenantID, date, c.Query("location_id"), c.Query("agent_id"))
	if err != nil {
		utils.GetLogger().Error("failed to list appointments",
			zap.String("tenantID", tenantID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "date": date})
}
