package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
)

// @Summary      Create Client
// @Description  Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body clientdomain.CreateRequest true "Create Client Request"
// @Success      200  {object}  clientdomain.Client
// @Router       /clients [post]
func (s *Server) CreateClient(c *gin.Context) {
	var req clientdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Clients
// @Description  List clients, optionally filtered by search or state
// @Tags         clients
// @Produce      json
// @Param        search query string false "Search"
// @Param        state  query string false "State"
// @Success      200  {object}  []clientdomain.Client
// @Router       /clients [get]
func (s *Server) ListClients(c *gin.Context) {
	var query clientdomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Client
// @Description  Get client by ID
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  clientdomain.Client
// @Router       /clients/{id} [get]
func (s *Server) GetClientByID(c *gin.Context) {
	resp, err := s.clientSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Client
// @Description  Partially update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path  string                      true  "Client ID"
// @Param        request body  clientdomain.UpdateRequest  true  "Update Client Request"
// @Success      200  {object}  clientdomain.Client
// @Router       /clients/{id} [patch]
func (s *Server) UpdateClient(c *gin.Context) {
	var req clientdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Client
// @Description  Delete a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.clientSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
