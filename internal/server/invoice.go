package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/silzatelesols/billify/internal/audit/domain"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	"github.com/silzatelesols/billify/internal/pdf"
)

// @Summary      Create Invoice
// @Description  Create an invoice; totals and GST are computed server-side
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body invoicedomain.CreateRequest true "Create Invoice Request"
// @Success      200  {object}  invoicedomain.Invoice
// @Router       /invoices [post]
func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionInvoiceCreated, "invoice", resp.ID.String(), map[string]any{
		"invoice_number": resp.InvoiceNumber,
		"total_amount":   resp.TotalAmount.String(),
	})
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      List Invoices
// @Description  List invoices, optionally filtered by status or client
// @Tags         invoices
// @Produce      json
// @Param        status    query string false "Status"
// @Param        client_id query string false "Client ID"
// @Success      200  {object}  []invoicedomain.Invoice
// @Router       /invoices [get]
func (s *Server) ListInvoices(c *gin.Context) {
	var query invoicedomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Invoice
// @Description  Get invoice by ID with its line items
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  invoicedomain.Invoice
// @Router       /invoices/{id} [get]
func (s *Server) GetInvoiceByID(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Invoice
// @Description  Update invoice status or notes
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path  string                       true  "Invoice ID"
// @Param        request body  invoicedomain.UpdateRequest  true  "Update Invoice Request"
// @Success      200  {object}  invoicedomain.Invoice
// @Router       /invoices/{id} [patch]
func (s *Server) UpdateInvoice(c *gin.Context) {
	var req invoicedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionInvoiceUpdated, "invoice", resp.ID.String(), map[string]any{
		"status": string(resp.Status),
	})
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Invoice
// @Description  Delete an invoice and its line items
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  map[string]string
// @Router       /invoices/{id} [delete]
func (s *Server) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")
	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionInvoiceDeleted, "invoice", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type generatePDFRequest struct {
	TemplateID string `json:"template_id"`
}

// @Summary      Generate Invoice PDF
// @Description  Render the invoice to PDF; uploads and emails per settings
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        id      path  string              true   "Invoice ID"
// @Param        request body  generatePDFRequest  false  "Generation options"
// @Success      200  {file}  binary
// @Router       /invoices/{id}/pdf [post]
func (s *Server) GenerateInvoicePDF(c *gin.Context) {
	if !s.pdfLimiter.Allow(c.ClientIP()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": &apiError{
			Code:    "rate_limited",
			Message: "too many pdf generations, retry later",
		}})
		return
	}

	var req generatePDFRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	result, err := s.generator.Generate(c.Request.Context(), pdf.GenerateRequest{
		InvoiceID:  c.Param("id"),
		TemplateID: req.TemplateID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.auditSvc.Record(c.Request.Context(), auditdomain.ActionPDFGenerated, "invoice", c.Param("id"), map[string]any{
		"filename":   result.Filename,
		"uploaded":   result.Uploaded,
		"email_sent": result.EmailSent,
	})

	// JSON when the caller wants delivery status, raw PDF otherwise
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"data": result})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
