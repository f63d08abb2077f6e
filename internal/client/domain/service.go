package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
)

type ListRequest struct {
	Search string `form:"search"`
	State  string `form:"state"`
}

type CreateRequest struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PinCode     string `json:"pin_code"`
	GSTIN       string `json:"gstin"`
}

// UpdateRequest carries a partial edit. Nil fields are left untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PinCode     *string `json:"pin_code"`
	GSTIN       *string `json:"gstin"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Client, error)
	List(ctx context.Context, req ListRequest) ([]Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Client, error)
	Delete(ctx context.Context, id string) error
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID   = errors.New("invalid_id")
	ErrInvalidName = errors.New("invalid_name")
	ErrNotFound    = errors.New("client_not_found")
)
