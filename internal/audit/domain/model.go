package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ActorType represents who triggered an action.
type ActorType string

const (
	ActorTypeUser   ActorType = "user"
	ActorTypeSystem ActorType = "system"
)

// Actions recorded by the application.
const (
	ActionInvoiceCreated  = "invoice.created"
	ActionInvoiceUpdated  = "invoice.updated"
	ActionInvoiceDeleted  = "invoice.deleted"
	ActionPDFGenerated    = "invoice.pdf_generated"
	ActionTemplateSaved   = "template.saved"
	ActionTemplateDeleted = "template.deleted"
	ActionTemplateDefault = "template.default_changed"
	ActionSettingsUpdated = "settings.updated"
)

// AuditLog captures an immutable record of a data-changing action.
type AuditLog struct {
	ID         snowflake.ID      `gorm:"primaryKey"`
	ActorType  string            `gorm:"type:text;not null"`
	ActorID    *string           `gorm:"type:text"`
	Action     string            `gorm:"type:text;not null;index"`
	TargetType string            `gorm:"type:text;not null"`
	TargetID   *string           `gorm:"type:text"`
	Metadata   datatypes.JSONMap `gorm:"type:text;not null;default:'{}'"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (AuditLog) TableName() string { return "audit_logs" }
