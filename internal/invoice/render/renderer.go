package render

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/silzatelesols/billify/internal/builder"
)

// RenderInput is the deterministic input used for invoice rendering.
type RenderInput struct {
	Company CompanyView
	Client  ClientView
	Invoice InvoiceView
	Items   []LineItemView
}

type CompanyView struct {
	Name              string
	Address           string
	City              string
	State             string
	PinCode           string
	Phone             string
	Email             string
	Website           string
	GSTIN             string
	PAN               string
	CIN               string
	LogoURL           string
	BankName          string
	BankAccountNumber string
	BankIFSC          string
}

type ClientView struct {
	Name        string
	CompanyName string
	Address     string
	City        string
	State       string
	PinCode     string
	GSTIN       string
}

type InvoiceView struct {
	Number                  string
	Status                  string
	InvoiceDate             time.Time
	DueDate                 time.Time
	Subtotal                decimal.Decimal
	CGST                    decimal.Decimal
	SGST                    decimal.Decimal
	IGST                    decimal.Decimal
	TotalGST                decimal.Decimal
	TotalAmount             decimal.Decimal
	AmountInWords           string
	GSTPayableReverseCharge bool
	Notes                   string
}

type LineItemView struct {
	Description string
	HSNSAC      string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Renderer produces the print-ready HTML for an invoice using the
// built-in document.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

// LayoutRenderer produces HTML from a designer layout with invoice data
// bound into its components.
type LayoutRenderer interface {
	RenderLayoutHTML(layout builder.Layout, input RenderInput) (string, error)
}
