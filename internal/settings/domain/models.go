package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AppSettings holds per-user feature gates for the PDF pipeline and UI
// preferences. A row is created lazily with these defaults on first read.
type AppSettings struct {
	ID                          snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID                      string       `gorm:"type:text;not null;uniqueIndex" json:"user_id"`
	EnableS3Upload              bool         `gorm:"not null;default:true" json:"enable_s3_upload"`
	EnableEmailNotifications    bool         `gorm:"not null;default:true" json:"enable_email_notifications"`
	EnableDefaultTemplateButton bool         `gorm:"not null;default:false" json:"enable_default_template_button"`
	Theme                       string       `gorm:"type:text;not null;default:'light'" json:"theme"`
	DefaultTemplateID           string       `gorm:"type:text;not null;default:'default'" json:"default_template_id"`
	CreatedAt                   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (AppSettings) TableName() string { return "app_settings" }
