package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CompanyProfile is the issuing business shown on every invoice. The
// application keeps a single profile row.
type CompanyProfile struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"id"`
	CompanyName       string       `gorm:"type:text;not null" json:"company_name"`
	Address           string       `gorm:"type:text" json:"address"`
	City              string       `gorm:"type:text" json:"city"`
	State             string       `gorm:"type:text" json:"state"`
	PinCode           string       `gorm:"type:text" json:"pin_code"`
	Phone             string       `gorm:"type:text" json:"phone"`
	Email             string       `gorm:"type:text" json:"email"`
	Website           string       `gorm:"type:text" json:"website"`
	GSTIN             string       `gorm:"type:text" json:"gstin"`
	PAN               string       `gorm:"type:text" json:"pan"`
	CIN               string       `gorm:"type:text" json:"cin"`
	LogoURL           string       `gorm:"type:text" json:"logo_url"`
	BankName          string       `gorm:"type:text" json:"bank_name"`
	BankAccountNumber string       `gorm:"type:text" json:"bank_account_number"`
	BankIFSC          string       `gorm:"type:text" json:"bank_ifsc"`
	CreatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (CompanyProfile) TableName() string { return "company_profile" }
