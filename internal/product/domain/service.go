package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type ListRequest struct {
	Search string `form:"search"`
}

type CreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HSNSAC      string          `json:"hsn_sac"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     *decimal.Decimal `json:"gst_rate"`
}

type UpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	HSNSAC      *string          `json:"hsn_sac"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	GSTRate     *decimal.Decimal `json:"gst_rate"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	List(ctx context.Context, req ListRequest) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidPrice   = errors.New("invalid_price")
	ErrInvalidGSTRate = errors.New("invalid_gst_rate")
	ErrNotFound       = errors.New("product_not_found")
)
