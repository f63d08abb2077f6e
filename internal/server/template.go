package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
	"github.com/silzatelesols/billify/internal/builder"
	templatedomain "github.com/silzatelesols/billify/internal/invoicetemplate/domain"
)

// @Summary      List Template Components
// @Description  The component palette available to the template designer
// @Tags         templates
// @Produce      json
// @Success      200  {object}  []builder.Definition
// @Router       /templates/components [get]
func (s *Server) ListTemplateComponents(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		c.JSON(http.StatusOK, gin.H{"data": builder.DefinitionsByCategory(builder.Category(cat))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": builder.Definitions()})
}

// @Summary      Create Template
// @Description  Save a designer layout as a reusable template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body templatedomain.CreateRequest true "Create Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates [post]
func (s *Server) CreateTemplate(c *gin.Context) {
	var req templatedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionTemplateSaved, "template", resp.ID, map[string]any{
		"name": resp.Name,
	})
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Templates
// @Description  List saved templates without their layout payloads
// @Tags         templates
// @Produce      json
// @Success      200  {object}  []templatedomain.ListItem
// @Router       /templates [get]
func (s *Server) ListTemplates(c *gin.Context) {
	resp, err := s.templateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Default Template
// @Description  Get the template marked as default
// @Tags         templates
// @Produce      json
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/default [get]
func (s *Server) GetDefaultTemplate(c *gin.Context) {
	resp, err := s.templateSvc.GetDefault(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Template
// @Description  Get template by ID with its full layout
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [get]
func (s *Server) GetTemplateByID(c *gin.Context) {
	resp, err := s.templateSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Template
// @Description  Partially update a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id      path  string                        true  "Template ID"
// @Param        request body  templatedomain.UpdateRequest  true  "Update Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [patch]
func (s *Server) UpdateTemplate(c *gin.Context) {
	var req templatedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionTemplateSaved, "template", resp.ID, map[string]any{
		"name": resp.Name,
	})
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Template
// @Description  Delete a template
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id} [delete]
func (s *Server) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if err := s.templateSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionTemplateDeleted, "template", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary      Set Default Template
// @Description  Mark a template as the default for invoice generation
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/default [post]
func (s *Server) SetDefaultTemplate(c *gin.Context) {
	resp, err := s.templateSvc.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionTemplateDefault, "template", resp.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Duplicate Template
// @Description  Clone a template, optionally under a caller-supplied name
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path  string                          true   "Template ID"
// @Param        request  body  templatedomain.DuplicateRequest false  "Duplicate Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/duplicate [post]
func (s *Server) DuplicateTemplate(c *gin.Context) {
	// the body is optional; a missing or empty one keeps the copy name
	var req templatedomain.DuplicateRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	resp, err := s.templateSvc.Duplicate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type previewTemplateRequest struct {
	Layout builder.Layout `json:"layout"`
}

// @Summary      Preview Template
// @Description  Render a layout to HTML with sample invoice data
// @Tags         templates
// @Accept       json
// @Produce      html
// @Param        request body previewTemplateRequest true "Layout to preview"
// @Success      200  {string}  string
// @Router       /templates/preview [post]
func (s *Server) PreviewTemplate(c *gin.Context) {
	var req previewTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	html, err := builder.NewPreviewRenderer().Render(req.Layout, builder.SamplePreviewData())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
