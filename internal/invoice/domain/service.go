package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	ItemName  string          `json:"item_name"`
	HSNSAC    string          `json:"hsn_sac"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateRequest struct {
	ClientID                string           `json:"client_id"`
	InvoiceDate             *time.Time       `json:"invoice_date"`
	DueDate                 *time.Time       `json:"due_date"`
	Items                   []ItemRequest    `json:"items"`
	GSTRate                 *decimal.Decimal `json:"gst_rate"`
	GSTPayableReverseCharge bool             `json:"gst_payable_reverse_charge"`
	Notes                   string           `json:"notes"`
}

type UpdateRequest struct {
	Status *Status `json:"status"`
	Notes  *string `json:"notes"`
}

type ListRequest struct {
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Invoice, error)
	List(ctx context.Context, req ListRequest) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Invoice, error)
	Delete(ctx context.Context, id string) error
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidClient   = errors.New("invalid_client")
	ErrNoItems         = errors.New("invoice_requires_items")
	ErrInvalidItem     = errors.New("invalid_item")
	ErrInvalidGSTRate  = errors.New("invalid_gst_rate")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvoiceNotFound = errors.New("invoice_not_found")
)

// ValidStatus reports whether s is one of the known invoice states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
