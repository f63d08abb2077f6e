package domain

import (
	"testing"
	"time"
)

func TestFormatInvoiceNumber(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	if got := FormatInvoiceNumber(at, 1); got != "050324INV0001" {
		t.Fatalf("got %q, want 050324INV0001", got)
	}
	if got := FormatInvoiceNumber(at, 42); got != "050324INV0042" {
		t.Fatalf("got %q, want 050324INV0042", got)
	}
}

func TestMonthBounds(t *testing.T) {
	at := time.Date(2024, time.December, 15, 8, 0, 0, 0, time.UTC)
	start, end := MonthBounds(at)

	if !start.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}
