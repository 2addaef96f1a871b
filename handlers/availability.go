package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"schedly/services/availability"
	"schedly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// datePattern guards the availability endpoint; anything else is rejected
// before the generator runs.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AvailabilityHandler serves the bookable-slots endpoint.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailabilityHandler handles
// GET /api/availability?date=YYYY-MM-DD&appointment_type_id=&location_id=&agent_id=
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tenantID := c.GetString("tenantID")
	if tenantID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Tenant not resolved", "missing tenant identity")
		return
	}

	date := c.Query("date")
	if !datePattern.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must match YYYY-MM-DD")
		return
	}

	req := availability.Request{
		TenantID:          tenantID,
		Date:              date,
		AppointmentTypeID: c.Query("appointment_type_id"),
		LocationID:        c.Query("location_id"),
		AgentID:           c.Query("agent_id"),
	}

	day, err := h.Service.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		logger.Error("failed to compute availability",
			zap.String("tenantID", tenantID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not load availability", "")
		return
	}

	c.JSON(http.StatusOK, day)
}
