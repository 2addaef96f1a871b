package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"schedly/models"
	"schedly/services/schedule"
	"schedly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleHandler serves the tenant-admin configuration endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// writeServiceError maps schedule-service failures onto HTTP statuses.
func writeServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, schedule.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "Not found", "")
	default:
		utils.GetLogger().Error("schedule operation failed", zap.String("action", action), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+action, "")
	}
}

// UpsertBusinessHoursHandler handles PUT /api/admin/business-hours.
func (h *ScheduleHandler) UpsertBusinessHoursHandler(c *gin.Context) {
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	hours.TenantID = c.GetString("tenantID")

	if err := h.Service.UpsertBusinessHours(c.Request.Context(), &hours); err != nil {
		writeServiceError(c, err, "save business hours")
		return
	}
	c.JSON(http.StatusOK, hours)
}

// ListBusinessHoursHandler handles GET /api/admin/business-hours.
func (h *ScheduleHandler) ListBusinessHoursHandler(c *gin.Context) {
	all, err := h.Service.ListBusinessHours(c.Request.Context(), c.GetString("tenantID"))
	if err != nil {
		writeServiceError(c, err, "list business hours")
		return
	}
	c.JSON(http.StatusOK, gin.H{"business_hours": all})
}

// DeleteBusinessHoursHandler handles DELETE /api/admin/business-hours/:weekday.
func (h *ScheduleHandler) DeleteBusinessHoursHandler(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "weekday must be 0-6")
		return
	}
	err = h.Service.DeleteBusinessHours(c.Request.Context(), c.GetString("tenantID"), weekday, c.Query("location_id"))
	if err != nil {
		writeServiceError(c, err, "delete business hours")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpsertExceptionHandler handles PUT /api/admin/exceptions.
func (h *ScheduleHandler) UpsertExceptionHandler(c *gin.Context) {
	var exc models.DateException
	if err := c.ShouldBindJSON(&exc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	exc.TenantID = c.GetString("tenantID")

	if err := h.Service.UpsertException(c.Request.Context(), &exc); err != nil {
		writeServiceError(c, err, "save date exception")
		return
	}
	c.JSON(http.StatusOK, exc)
}

// ListExceptionsHandler handles GET /api/admin/exceptions?from=YYYY-MM-DD.
func (h *ScheduleHandler) ListExceptionsHandler(c *gin.Context) {
	all, err := h.Service.ListExceptions(c.Request.Context(), c.GetString("tenantID"), c.Query("from"))
	if err != nil {
		writeServiceError(c, err, "list date exceptions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exceptions": all})
}

// DeleteExceptionHandler handles DELETE /api/admin/exceptions/:date.
func (h *ScheduleHandler) DeleteExceptionHandler(c *gin.Context) {
	date := c.Param("date")
	if !datePattern.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must match YYYY-MM-DD")
		return
	}
	err := h.Service.DeleteException(c.Request.Context(), c.GetString("tenantID"), date, c.Query("location_id"))
	if err != nil {
		writeServiceError(c, err, "delete date exception")
		return
	}
	c.Status(http.StatusNoContent)
}
