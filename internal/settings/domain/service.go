package domain

import (
	"context"
	"errors"
)

type UpdateRequest struct {
	EnableS3Upload              *bool   `json:"enable_s3_upload"`
	EnableEmailNotifications    *bool   `json:"enable_email_notifications"`
	EnableDefaultTemplateButton *bool   `json:"enable_default_template_button"`
	Theme                       *string `json:"theme"`
	DefaultTemplateID           *string `json:"default_template_id"`
}

// Service reads and writes the per-user settings row. Get never fails
// with not-found: missing rows are created with defaults.
type Service interface {
	Get(ctx context.Context) (*AppSettings, error)
	Update(ctx context.Context, req UpdateRequest) (*AppSettings, error)
}

var ErrInvalidTheme = errors.New("invalid_theme")
