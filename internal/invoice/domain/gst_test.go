package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeGSTIntraState(t *testing.T) {
	taxable := decimal.NewFromInt(10000)
	rate := decimal.NewFromInt(18)

	tax := ComputeGST(taxable, rate, "Maharashtra", "Maharashtra")

	if got := tax.CGST.StringFixed(2); got != "900.00" {
		t.Fatalf("cgst = %s, want 900.00", got)
	}
	if got := tax.SGST.StringFixed(2); got != "900.00" {
		t.Fatalf("sgst = %s, want 900.00", got)
	}
	if !tax.IGST.IsZero() {
		t.Fatalf("igst = %s, want 0", tax.IGST)
	}
	if got := tax.Total.StringFixed(2); got != "1800.00" {
		t.Fatalf("total = %s, want 1800.00", got)
	}
}

func TestComputeGSTInterState(t *testing.T) {
	taxable := decimal.NewFromInt(10000)
	rate := decimal.NewFromInt(18)

	tax := ComputeGST(taxable, rate, "Maharashtra", "Karnataka")

	if !tax.CGST.IsZero() || !tax.SGST.IsZero() {
		t.Fatalf("cgst/sgst = %s/%s, want 0/0", tax.CGST, tax.SGST)
	}
	if got := tax.IGST.StringFixed(2); got != "1800.00" {
		t.Fatalf("igst = %s, want 1800.00", got)
	}
	if got := tax.Total.StringFixed(2); got != "1800.00" {
		t.Fatalf("total = %s, want 1800.00", got)
	}
}

func TestComputeGSTOddAmountRounds(t *testing.T) {
	taxable := decimal.RequireFromString("333.33")
	rate := decimal.NewFromInt(18)

	tax := ComputeGST(taxable, rate, "Delhi", "delhi")

	// 333.33 * 18% = 59.9994; halves round to 30.00 each.
	if got := tax.CGST.StringFixed(2); got != "30.00" {
		t.Fatalf("cgst = %s, want 30.00", got)
	}
	if got := tax.Total.StringFixed(2); got != "60.00" {
		t.Fatalf("total = %s, want 60.00", got)
	}
}

func TestIsInterState(t *testing.T) {
	cases := []struct {
		supplier, recipient string
		want                bool
	}{
		{"Maharashtra", "Maharashtra", false},
		{"Maharashtra", "maharashtra ", false},
		{"Maharashtra", "Karnataka", true},
		{"Maharashtra", "", false},
		{"", "Karnataka", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := IsInterState(tc.supplier, tc.recipient); got != tc.want {
			t.Fatalf("IsInterState(%q, %q) = %v, want %v", tc.supplier, tc.recipient, got, tc.want)
		}
	}
}
