package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
	settingsdomain "github.com/silzatelesols/billify/internal/settings/domain"
)

// @Summary      Get Settings
// @Description  Get the caller's settings, creating defaults on first read
// @Tags         settings
// @Produce      json
// @Success      200  {object}  settingsdomain.AppSettings
// @Router       /settings [get]
func (s *Server) GetSettings(c *gin.Context) {
	resp, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Settings
// @Description  Partially update the caller's settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body settingsdomain.UpdateRequest true "Update Settings Request"
// @Success      200  {object}  settingsdomain.AppSettings
// @Router       /settings [patch]
func (s *Server) UpdateSettings(c *gin.Context) {
	var req settingsdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.settingsSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionSettingsUpdated, "settings", resp.UserID, nil)
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
