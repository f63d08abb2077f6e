package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Roboto", "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
      font-size: 13px;
    }
    .invoice {
      width: 730px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 20px;
    }
    .brand img { max-height: 80px; }
    .company-name { font-size: 22px; font-weight: 700; }
    .muted { color: #6b7280; }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .meta { text-align: right; }
    .title {
      text-align: center;
      font-size: 16px;
      font-weight: 700;
      letter-spacing: 0.08em;
      margin-bottom: 16px;
    }
    .parties {
      display: flex;
      justify-content: space-between;
      margin-bottom: 20px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 16px;
    }
    th, td {
      padding: 8px 10px;
      border: 1px solid #d1d5db;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
      background: #f9fafb;
    }
    td.num, th.num { text-align: right; }
    .totals { width: 320px; margin-left: auto; }
    .totals td { border: none; padding: 4px 10px; }
    .totals .grand td {
      border-top: 2px solid #111827;
      font-weight: 700;
      font-size: 15px;
    }
    .words { margin: 12px 0 20px; font-style: italic; }
    .footer {
      display: flex;
      justify-content: space-between;
      margin-top: 32px;
      padding-top: 16px;
      border-top: 1px solid #e5e7eb;
    }
    .signature {
      text-align: right;
      min-height: 80px;
      display: flex;
      flex-direction: column;
      justify-content: space-between;
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div class="brand">
        {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="Company logo" />{{end}}
        <div class="company-name">{{.Company.Name}}</div>
        <div class="muted">{{.Company.Address}}{{if .Company.City}}, {{.Company.City}}{{end}}{{if .Company.State}}, {{.Company.State}}{{end}}{{if .Company.PinCode}} - {{.Company.PinCode}}{{end}}</div>
        {{if .Company.Phone}}<div class="muted">Tel: {{.Company.Phone}}{{if .Company.Email}} | {{.Company.Email}}{{end}}</div>{{end}}
        {{if .Company.GSTIN}}<div class="muted">GSTIN: {{.Company.GSTIN}}{{if .Company.PAN}} | PAN: {{.Company.PAN}}{{end}}{{if .Company.CIN}} | CIN: {{.Company.CIN}}{{end}}</div>{{end}}
      </div>
      <div class="meta">
        <div class="label">Tax Invoice</div>
        <div><strong>{{.Invoice.Number}}</strong></div>
        <div>Date: {{formatDate .Invoice.InvoiceDate}}</div>
        <div>Due: {{formatDate .Invoice.DueDate}}</div>
        {{if .Invoice.GSTPayableReverseCharge}}<div>GST payable on reverse charge</div>{{end}}
      </div>
    </div>

    <div class="parties">
      <div>
        <div class="label">Bill To</div>
        <div><strong>{{.Client.Name}}</strong></div>
        {{if .Client.CompanyName}}<div>{{.Client.CompanyName}}</div>{{end}}
        <div class="muted">{{.Client.Address}}{{if .Client.City}}, {{.Client.City}}{{end}}{{if .Client.State}}, {{.Client.State}}{{end}}{{if .Client.PinCode}} - {{.Client.PinCode}}{{end}}</div>
        {{if .Client.GSTIN}}<div class="muted">GSTIN: {{.Client.GSTIN}}</div>{{end}}
      </div>
      <div>
        <div class="label">Place of Supply</div>
        <div>{{if .Client.State}}{{.Client.State}}{{else}}{{.Company.State}}{{end}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>Description</th>
          <th>HSN/SAC</th>
          <th class="num">Qty</th>
          <th class="num">Rate</th>
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Items}}
        <tr>
          <td>{{inc $i}}</td>
          <td>{{$item.Description}}</td>
          <td>{{$item.HSNSAC}}</td>
          <td class="num">{{formatQuantity $item.Quantity}}</td>
          <td class="num">{{formatMoney $item.UnitPrice}}</td>
          <td class="num">{{formatMoney $item.LineTotal}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <table class="totals">
      <tr><td>Subtotal</td><td class="num">{{formatMoney .Invoice.Subtotal}}</td></tr>
      {{if .Invoice.IGST.IsPositive}}
      <tr><td>IGST</td><td class="num">{{formatMoney .Invoice.IGST}}</td></tr>
      {{else}}
      <tr><td>CGST</td><td class="num">{{formatMoney .Invoice.CGST}}</td></tr>
      <tr><td>SGST</td><td class="num">{{formatMoney .Invoice.SGST}}</td></tr>
      {{end}}
      <tr class="grand"><td>Total</td><td class="num">{{formatMoney .Invoice.TotalAmount}}</td></tr>
    </table>

    <div class="words">{{.Invoice.AmountInWords}}</div>

    {{if .Invoice.Notes}}<div class="muted">{{.Invoice.Notes}}</div>{{end}}

    <div class="footer">
      <div>
        {{if .Company.BankAccountNumber}}
        <div class="label">Bank Details</div>
        <div>{{.Company.BankName}}</div>
        <div>A/c: {{.Company.BankAccountNumber}}</div>
        <div>IFSC: {{.Company.BankIFSC}}</div>
        {{end}}
      </div>
      <div class="signature">
        <div>For {{.Company.Name}}</div>
        <div>Authorized Signatory</div>
      </div>
    </div>
  </div>
</body>
</html>
`

var rupeeAmountPattern = regexp.MustCompile(`^-?\d`)

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatQuantity": formatQuantity,
		"inc":            func(i int) int { return i + 1 },
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if input.Company.Name == "" {
		input.Company.Name = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatMoney prints a rupee amount with two decimals and Indian digit
// grouping left to the reader; the raw value keeps PDF output stable.
func formatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	if rupeeAmountPattern.MatchString(s) {
		return "Rs. " + s
	}
	return s
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("02/01/2006")
}

func formatQuantity(value decimal.Decimal) string {
	return strings.TrimRight(strings.TrimRight(value.StringFixed(2), "0"), ".")
}
