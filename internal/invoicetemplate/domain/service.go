package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/silzatelesols/billify/internal/builder"
)

type CreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Layout      builder.Layout `json:"layout"`
	Thumbnail   string         `json:"thumbnail"`
}

// DuplicateRequest optionally names the copy; a blank name falls back
// to the source name with a "(Copy)" suffix.
type DuplicateRequest struct {
	Name string `json:"name"`
}

type UpdateRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Layout      *builder.Layout `json:"layout"`
	Thumbnail   *string         `json:"thumbnail"`
}

type Response struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Layout      builder.Layout `json:"layout"`
	IsDefault   bool           `json:"is_default"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ListItem omits the layout payload for listing endpoints.
type ListItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]ListItem, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*Response, error)
	GetDefault(ctx context.Context) (*Response, error)
	Duplicate(ctx context.Context, id string, req DuplicateRequest) (*Response, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidLayout = errors.New("invalid_layout")
	ErrNotFound      = errors.New("template_not_found")
	ErrNoDefault     = errors.New("no_default_template")
)
