package handlers

import (
	"net/http"

	"schedly/models"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// ListAgentsHandler handles GET /api/admin/agents.
func (h *ScheduleHandler) ListAgentsHandler(c *gin.Context) {
	agents, err := h.Service.ListAgents(c.Request.Context(), c.GetString("tenantID"))
	if err != nil {
		writeServiceError(c, err, "list agents")
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// GetAgentHandler handles GET /api/admin/agents/:id.
func (h *ScheduleHandler) GetAgentHandler(c *gin.Context) {
	agent, err := h.Service.GetAgent(c.Request.Context(), c.GetString("tenantID"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "load agent")
		return
	}
	if agent == nil {
		utils.JSONError(c, http.StatusNotFound, "Agent not found", "")
		return
	}
	c.JSON(http.StatusOK, agent)
}

// CreateAgentHandler handles POST /api/admin/agents.
func (h *ScheduleHandler) CreateAgentHandler(c *gin.Context) {
	var agent models.Agent
	if err := c.ShouldBindJSON(&agent); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	agent.TenantID = c.GetString("tenantID")

	if err := h.Service.CreateAgent(c.Request.Context(), &agent); err != nil {
		writeServiceError(c, err, "create agent")
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// UpdateAgentAvailabilityHandler handles PUT /api/admin/agents/:id/availability.
func (h *ScheduleHandler) UpdateAgentAvailabilityHandler(c *gin.Context) {
	var av models.AgentAvailability
	if err := c.ShouldBindJSON(&av); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	err := h.Service.UpdateAgentAvailability(c.Request.Context(), c.GetString("tenantID"), c.Param("id"), &av)
	if err != nil {
		writeServiceError(c, err, "update agent availability")
		return
	}
	c.Status(http.StatusNoContent)
}
