package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/silzatelesols/billify/internal/client/domain"
	companydomain "github.com/silzatelesols/billify/internal/company/domain"
	invoicedomain "github.com/silzatelesols/billify/internal/invoice/domain"
	templatedomain "github.com/silzatelesols/billify/internal/invoicetemplate/domain"
	"github.com/silzatelesols/billify/internal/mailer"
	productdomain "github.com/silzatelesols/billify/internal/product/domain"
	settingsdomain "github.com/silzatelesols/billify/internal/settings/domain"
)

var ErrNotFound = errors.New("not_found")

// apiError pairs a transport status with a stable machine-readable code.
type apiError struct {
	status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *apiError) Error() string { return e.Code }

func invalidRequestError() *apiError {
	return &apiError{status: http.StatusBadRequest, Code: "invalid_request", Message: "request body could not be parsed"}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

// AbortWithError maps domain errors onto HTTP statuses and writes the
// error envelope. Unknown errors become 500 without leaking details.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.status, gin.H{"error": api})
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"
	message := "something went wrong"

	switch {
	case isNotFound(err):
		status, code, message = http.StatusNotFound, err.Error(), "resource not found"
	case isValidation(err):
		status, code, message = http.StatusBadRequest, err.Error(), "request failed validation"
	case errors.Is(err, mailer.ErrSendFailed):
		status, code, message = http.StatusBadGateway, err.Error(), "notification delivery failed"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": &apiError{status: status, Code: code, Message: message}})
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, clientdomain.ErrNotFound) ||
		errors.Is(err, companydomain.ErrNotFound) ||
		errors.Is(err, productdomain.ErrNotFound) ||
		errors.Is(err, invoicedomain.ErrInvoiceNotFound) ||
		errors.Is(err, templatedomain.ErrNotFound) ||
		errors.Is(err, templatedomain.ErrNoDefault)
}

func isValidation(err error) bool {
	return errors.Is(err, clientdomain.ErrInvalidID) ||
		errors.Is(err, clientdomain.ErrInvalidName) ||
		errors.Is(err, companydomain.ErrInvalidCompanyName) ||
		errors.Is(err, productdomain.ErrInvalidID) ||
		errors.Is(err, productdomain.ErrInvalidName) ||
		errors.Is(err, productdomain.ErrInvalidPrice) ||
		errors.Is(err, productdomain.ErrInvalidGSTRate) ||
		errors.Is(err, invoicedomain.ErrInvalidID) ||
		errors.Is(err, invoicedomain.ErrInvalidClient) ||
		errors.Is(err, invoicedomain.ErrNoItems) ||
		errors.Is(err, invoicedomain.ErrInvalidItem) ||
		errors.Is(err, invoicedomain.ErrInvalidGSTRate) ||
		errors.Is(err, invoicedomain.ErrInvalidStatus) ||
		errors.Is(err, templatedomain.ErrInvalidID) ||
		errors.Is(err, templatedomain.ErrInvalidName) ||
		errors.Is(err, templatedomain.ErrInvalidLayout) ||
		errors.Is(err, settingsdomain.ErrInvalidTheme)
}
