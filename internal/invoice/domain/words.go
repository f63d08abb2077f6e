package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells a rupee amount using Indian grouping (crore,
// lakh, thousand). Fractional paise are appended when present.
func AmountInWords(amount decimal.Decimal) string {
	if amount.IsNegative() {
		amount = amount.Neg()
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).Round(0).IntPart()

	var b strings.Builder
	b.WriteString("Rupees ")
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(numberToWords(rupees))
	}
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(numberToWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

// numberToWords converts a positive integer using the Indian numbering
// system: groups of crore (1e7), lakh (1e5), thousand, hundred, then
// the final two digits.
func numberToWords(n int64) string {
	var parts []string

	if crore := n / 1_00_00_000; crore > 0 {
		parts = append(parts, numberToWords(crore), "Crore")
		n %= 1_00_00_000
	}
	if lakh := n / 1_00_000; lakh > 0 {
		parts = append(parts, twoDigitWords(lakh), "Lakh")
		n %= 1_00_000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, twoDigitWords(thousand), "Thousand")
		n %= 1000
	}
	if hundreds := n / 100; hundreds > 0 {
		parts = append(parts, onesWords[hundreds], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}
	return strings.Join(parts, " ")
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	word := tensWords[n/10]
	if n%10 > 0 {
		word += " " + onesWords[n%10]
	}
	return word
}
