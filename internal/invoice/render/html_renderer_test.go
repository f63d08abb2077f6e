package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleInput() RenderInput {
	return RenderInput{
		Company: CompanyView{
			Name:              "Acme Traders",
			Address:           "12 MG Road",
			City:              "Pune",
			State:             "Maharashtra",
			PinCode:           "411001",
			Phone:             "+91 98765 43210",
			Email:             "billing@acme.example",
			GSTIN:             "27AAAAA0000A1Z5",
			PAN:               "AAAAA0000A",
			BankName:          "State Bank",
			BankAccountNumber: "000111222333",
			BankIFSC:          "SBIN0001234",
		},
		Client: ClientView{
			Name:        "Ravi Kumar",
			CompanyName: "Kumar Enterprises",
			Address:     "5 Brigade Road",
			City:        "Bengaluru",
			State:       "Karnataka",
			PinCode:     "560001",
			GSTIN:       "29BBBBB1111B1Z4",
		},
		Invoice: InvoiceView{
			Number:        "050324INV0001",
			Status:        "pending",
			InvoiceDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
			Subtotal:      decimal.NewFromInt(10000),
			IGST:          decimal.NewFromInt(1800),
			TotalGST:      decimal.NewFromInt(1800),
			TotalAmount:   decimal.NewFromInt(11800),
			AmountInWords: "Rupees Eleven Thousand Eight Hundred Only",
		},
		Items: []LineItemView{
			{
				Description: "Consulting services",
				HSNSAC:      "998311",
				Quantity:    decimal.NewFromInt(10),
				UnitPrice:   decimal.NewFromInt(1000),
				LineTotal:   decimal.NewFromInt(10000),
			},
		},
	}
}

func TestRenderHTMLInterState(t *testing.T) {
	html, err := NewRenderer().RenderHTML(sampleInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"050324INV0001",
		"Acme Traders",
		"GSTIN: 27AAAAA0000A1Z5",
		"Ravi Kumar",
		"Kumar Enterprises",
		"Consulting services",
		"998311",
		"Rs. 10000.00",
		"IGST",
		"Rs. 1800.00",
		"Rs. 11800.00",
		"Rupees Eleven Thousand Eight Hundred Only",
		"Date: 05/03/2024",
		"Due: 04/04/2024",
		"A/c: 000111222333",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered html missing %q", want)
		}
	}
	if strings.Contains(html, "CGST") || strings.Contains(html, "SGST") {
		t.Error("inter-state invoice must not show CGST/SGST rows")
	}
}

func TestRenderHTMLIntraStateShowsSplitGST(t *testing.T) {
	input := sampleInput()
	input.Client.State = "Maharashtra"
	input.Invoice.IGST = decimal.Zero
	input.Invoice.CGST = decimal.NewFromInt(900)
	input.Invoice.SGST = decimal.NewFromInt(900)

	html, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "CGST") || !strings.Contains(html, "SGST") {
		t.Error("intra-state invoice must show CGST and SGST rows")
	}
	if strings.Contains(html, ">IGST<") {
		t.Error("intra-state invoice must not show an IGST row")
	}
}

func TestRenderHTMLEscapesUserContent(t *testing.T) {
	input := sampleInput()
	input.Client.Name = `<script>alert("x")</script>`

	html, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("client name rendered unescaped")
	}
}

func TestRenderHTMLEmptyCompanyFallsBack(t *testing.T) {
	input := sampleInput()
	input.Company = CompanyView{}

	html, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Invoice") {
		t.Error("expected fallback company name")
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(decimal.RequireFromString("1180.5")); got != "Rs. 1180.50" {
		t.Errorf("formatMoney = %q", got)
	}
	if got := formatMoney(decimal.RequireFromString("-42")); got != "Rs. -42.00" {
		t.Errorf("formatMoney negative = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(time.Time{}); got != "-" {
		t.Errorf("zero date = %q, want -", got)
	}
	if got := formatDate(time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)); got != "01/12/2024" {
		t.Errorf("formatDate = %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"2.50", "2.5"},
		{"0.25", "0.25"},
	}
	for _, tc := range cases {
		if got := formatQuantity(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("formatQuantity(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
