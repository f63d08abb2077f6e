package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
)

// @Summary      Get Company Profile
// @Description  Get the issuing company profile
// @Tags         company
// @Produce      json
// @Success      200  {object}  companydomain.CompanyProfile
// @Router       /company [get]
func (s *Server) GetCompanyProfile(c *gin.Context) {
	resp, err := s.companySvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Save Company Profile
// @Description  Create or update the issuing company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        request body companydomain.SaveRequest true "Company Profile"
// @Success      200  {object}  companydomain.CompanyProfile
// @Router       /company [put]
func (s *Server) SaveCompanyProfile(c *gin.Context) {
	var req companydomain.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.companySvc.Save(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
