package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Product is a reusable line-item preset: description, HSN/SAC code,
// unit price, and GST rate.
type Product struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	HSNSAC      string          `gorm:"column:hsn_sac;type:text" json:"hsn_sac"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"unit_price"`
	GSTRate     decimal.Decimal `gorm:"column:gst_rate;type:numeric;not null;default:18" json:"gst_rate"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
