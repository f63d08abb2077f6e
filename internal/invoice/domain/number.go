package domain

import (
	"fmt"
	"time"
)

// FormatInvoiceNumber builds the human-facing invoice number: the issue
// date as DDMMYY, the INV marker, and a four-digit sequence within the
// issue month.
func FormatInvoiceNumber(at time.Time, seq int) string {
	return fmt.Sprintf("%sINV%04d", at.Format("020106"), seq)
}

// MonthBounds returns the first instants of at's month and of the next
// month, for counting invoices issued in the same month.
func MonthBounds(at time.Time) (time.Time, time.Time) {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return start, start.AddDate(0, 1, 0)
}
