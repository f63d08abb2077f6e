package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a billed customer.
type Client struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	CompanyName string       `gorm:"type:text" json:"company_name"`
	Email       string       `gorm:"type:text" json:"email"`
	Phone       string       `gorm:"type:text" json:"phone"`
	Address     string       `gorm:"type:text" json:"address"`
	City        string       `gorm:"type:text" json:"city"`
	State       string       `gorm:"type:text" json:"state"`
	PinCode     string       `gorm:"type:text" json:"pin_code"`
	GSTIN       string       `gorm:"type:text" json:"gstin"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }
