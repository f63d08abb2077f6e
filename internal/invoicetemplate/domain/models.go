package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// CustomTemplate is a saved designer layout. Layout holds the serialized
// document produced by the template builder; at most one template per
// user carries IsDefault.
type CustomTemplate struct {
	ID          snowflake.ID   `gorm:"primaryKey"`
	UserID      string         `gorm:"type:text;not null;index"`
	Name        string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text"`
	Layout      datatypes.JSON `gorm:"type:text;not null"`
	IsDefault   bool           `gorm:"not null;default:false"`
	Thumbnail   string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (CustomTemplate) TableName() string { return "custom_templates" }
