package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Invoice is a stored invoice with its computed totals. Totals are
// denormalized at write time so rendering never recomputes tax.
type Invoice struct {
	ID                      snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceNumber           string          `gorm:"type:text;not null" json:"invoice_number"`
	ClientID                snowflake.ID    `gorm:"not null" json:"client_id"`
	InvoiceDate             time.Time       `json:"invoice_date"`
	DueDate                 time.Time       `json:"due_date"`
	Subtotal                decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"subtotal"`
	TotalGST                decimal.Decimal `gorm:"column:total_gst;type:numeric;not null;default:0" json:"total_gst"`
	TotalAmount             decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_amount"`
	GSTPayableReverseCharge bool            `gorm:"column:gst_payable_reverse_charge;not null;default:false" json:"gst_payable_reverse_charge"`
	Status                  Status          `gorm:"type:text;not null;default:'draft'" json:"status"`
	Notes                   string          `gorm:"type:text" json:"notes"`
	Items                   []InvoiceItem   `gorm:"foreignKey:InvoiceID" json:"items"`
	CreatedAt               time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is one line on an invoice. LineTotal = Quantity * UnitPrice.
type InvoiceItem struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID snowflake.ID    `gorm:"not null;index" json:"invoice_id"`
	ItemName  string          `gorm:"type:text;not null" json:"item_name"`
	HSNSAC    string          `gorm:"column:hsn_sac;type:text" json:"hsn_sac"`
	Quantity  decimal.Decimal `gorm:"type:numeric;not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"line_total"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }
