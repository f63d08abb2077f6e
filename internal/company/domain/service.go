package domain

import (
	"context"
	"errors"
)

type SaveRequest struct {
	CompanyName       string `json:"company_name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	PinCode           string `json:"pin_code"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Website           string `json:"website"`
	GSTIN             string `json:"gstin"`
	PAN               string `json:"pan"`
	CIN               string `json:"cin"`
	LogoURL           string `json:"logo_url"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIFSC          string `json:"bank_ifsc"`
}

// Service manages the single company profile. Save creates the row on
// first write and updates it afterwards.
type Service interface {
	Get(ctx context.Context) (*CompanyProfile, error)
	Save(ctx context.Context, req SaveRequest) (*CompanyProfile, error)
}

var (
	ErrInvalidCompanyName = errors.New("invalid_company_name")
	ErrNotFound           = errors.New("company_profile_not_found")
)
