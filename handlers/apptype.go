package handlers

import (
	"net/http"

	"schedly/models"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// CreateAppointmentTypeHandler handles POST /api/admin/appointment-types.
func (h *ScheduleHandler) CreateAppointmentTypeHandler(c *gin.Context) {
	var at models.AppointmentType
	if err := c.ShouldBindJSON(&at); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	at.TenantID = c.GetString("tenantID")

	if err := h.Service.CreateAppointmentType(c.Request.Context(), &at); err != nil {
		writeServiceError(c, err, "create appointment type")
		return
	}
	c.JSON(http.StatusCreated, at)
}

// UpdateAppointmentTypeHandler handles PUT /api/admin/appointment-types/:id.
func (h *ScheduleHandler) UpdateAppointmentTypeHandler(c *gin.Context) {
	var at models.AppointmentType
	if err := c.ShouldBindJSON(&at); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	at.TenantID = c.GetString("tenantID")
	at.ID = c.Param("id")

	if err := h.Service.UpdateAppointmentType(c.Request.Context(), &at); err != nil {
		writeServiceError(c, err, "update appointment type")
		return
	}
	c.JSON(http.StatusOK, at)
}

// ListAppointmentTypesHandler handles GET /api/admin/appointment-types.
func (h *ScheduleHandler) ListAppointmentTypesHandler(c *gin.Context) {
	all, err := h.Service.ListAppointmentTypes(c.Request.Context(), c.GetString("tenantID"))
	if err != nil {
		writeServiceError(c, err, "list appointment types")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment_types": all})
}

// DeleteAppointmentTypeHandler handles DELETE /api/admin/appointment-types/:id.
func (h *ScheduleHandler) DeleteAppointmentTypeHandler(c *gin.Context) {
	if err := h.Service.DeleteAppointmentType(c.Request.Context(), c.GetString("tenantID"), c.Param("id")); err != nil {
		writeServiceError(c, err, "delete appointment type")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSettingsHandler handles GET /api/admin/settings.
func (h *ScheduleHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetSettings(c.Request.Context(), c.GetString("tenantID"))
	if err != nil {
		writeServiceError(c, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettingsHandler handles PUT /api/admin/settings.
func (h *ScheduleHandler) SaveSettingsHandler(c *gin.Context) {
	var settings models.AppointmentSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	settings.TenantID = c.GetString("tenantID")

	if err := h.Service.SaveSettings(c.Request.Context(), &settings); err != nil {
		writeServiceError(c, err, "save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
