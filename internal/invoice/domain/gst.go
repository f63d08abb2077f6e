package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// TaxBreakdown splits GST on a taxable amount. Intra-state supplies
// carry equal CGST and SGST halves; inter-state supplies carry IGST for
// the full rate. Amounts are rounded to two decimal places.
type TaxBreakdown struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	IGST  decimal.Decimal `json:"igst"`
	Total decimal.Decimal `json:"total"`
}

// ComputeGST applies the given percentage rate to a taxable amount.
// Place of supply is intra-state when the supplier and recipient states
// match (case-insensitive); an unknown recipient state is treated as
// intra-state.
func ComputeGST(taxable, rate decimal.Decimal, supplierState, recipientState string) TaxBreakdown {
	tax := taxable.Mul(rate).Div(hundred)

	if IsInterState(supplierState, recipientState) {
		igst := tax.Round(2)
		return TaxBreakdown{
			CGST:  decimal.Zero,
			SGST:  decimal.Zero,
			IGST:  igst,
			Total: igst,
		}
	}

	half := tax.Div(two).Round(2)
	return TaxBreakdown{
		CGST:  half,
		SGST:  half,
		IGST:  decimal.Zero,
		Total: half.Add(half),
	}
}

// IsInterState reports whether the supply crosses state lines. Both
// states must be known for a supply to be inter-state.
func IsInterState(supplierState, recipientState string) bool {
	supplier := strings.ToLower(strings.TrimSpace(supplierState))
	recipient := strings.ToLower(strings.TrimSpace(recipientState))
	if supplier == "" || recipient == "" {
		return false
	}
	return supplier != recipient
}
