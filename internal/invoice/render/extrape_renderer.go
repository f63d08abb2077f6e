package render

import (
	"bytes"
	"html/template"
)

// The Extrape format: centered letterhead, "GST INVOICE" title,
// side-by-side Invoice From / Invoice To grids, full three-row tax
// summary and a SAC-wise tax table.
const extrapeHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; color: #000000; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Roboto", "Helvetica Neue", Arial, sans-serif;
      background: #ffffff;
      font-size: 12px;
    }
    .page { width: 746px; margin: 0 auto; display: flex; flex-direction: column; min-height: 1060px; }
    .content { flex: 1; }
    .letterhead {
      display: flex;
      align-items: flex-start;
      border-bottom: 2px solid #000000;
      padding-bottom: 10px;
      margin-bottom: 8px;
    }
    .letterhead img { max-width: 108px; max-height: 108px; margin-right: 12px; }
    .letterhead-text { flex: 1; text-align: center; line-height: 1.3; }
    .company-title { font-size: 30px; font-weight: 700; margin-bottom: 4px; }
    .registrations { display: flex; justify-content: space-between; margin-top: 6px; }
    .doc-title { text-align: center; font-size: 15px; font-weight: 700; letter-spacing: 0.1em; margin: 8px 0; }
    .parties { display: flex; justify-content: space-between; margin-bottom: 8px; }
    .party { width: 49%; }
    .party p { margin: 2px 0; }
    .party .k { font-weight: 700; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 8px; }
    th, td { border: 1px solid #000000; padding: 5px 8px; text-align: left; }
    th { font-weight: 700; }
    td.num, th.num { text-align: right; }
    td.mid, th.mid { text-align: center; }
    .totals { width: 300px; margin-left: auto; }
    .totals td { border: none; padding: 3px 8px; }
    .totals .grand td { border-top: 1px solid #000000; border-bottom: 1px solid #000000; font-weight: 700; }
    .words { margin: 6px 0; }
    .footer { border-top: 1px solid #000000; padding-top: 10px; margin-top: 12px; }
    .bank { display: flex; flex-wrap: wrap; }
    .bank p { width: 50%; margin: 2px 0; }
    .signatory { text-align: center; margin-left: auto; margin-top: 28px; width: 240px; }
    .signatory .line { border-top: 1px solid #000000; margin-top: 48px; padding-top: 4px; }
  </style>
</head>
<body>
  <div class="page">
    <div class="content">
      <div class="letterhead">
        {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="Company logo" />{{end}}
        <div class="letterhead-text">
          <div class="company-title">{{.Company.Name}}</div>
          <div>{{.Company.Address}}{{if .Company.City}}, {{.Company.City}}{{end}}{{if .Company.State}}, {{.Company.State}}{{end}}{{if .Company.PinCode}} - {{.Company.PinCode}}{{end}}</div>
          {{if or .Company.CIN .Company.GSTIN}}
          <div class="registrations">
            <div>{{if .Company.CIN}}<strong>CIN:</strong> {{.Company.CIN}}{{end}}</div>
            <div>{{if .Company.GSTIN}}<strong>GSTIN:</strong> {{.Company.GSTIN}}{{end}}</div>
          </div>
          {{end}}
        </div>
      </div>

      <div class="doc-title">GST INVOICE</div>

      <div class="parties">
        <div class="party">
          <p><span class="k">Invoice From:</span> {{.Company.Name}}</p>
          <p><span class="k">Address:</span> {{.Company.Address}}{{if .Company.City}}, {{.Company.City}}{{end}}{{if .Company.State}}, {{.Company.State}}{{end}}{{if .Company.PinCode}} - {{.Company.PinCode}}{{end}}</p>
          <p><span class="k">GSTIN:</span> {{.Company.GSTIN}}</p>
          <p><span class="k">PAN:</span> {{.Company.PAN}}</p>
          <p><span class="k">CIN:</span> {{if .Company.CIN}}{{.Company.CIN}}{{else}}N/A{{end}}</p>
        </div>
        <div class="party">
          <p><span class="k">Invoice To:</span> {{.Client.Name}}</p>
          <p><span class="k">Address:</span> {{.Client.Address}}{{if .Client.City}}, {{.Client.City}}{{end}}{{if .Client.State}}, {{.Client.State}}{{end}}{{if .Client.PinCode}} - {{.Client.PinCode}}{{end}}</p>
          <p><span class="k">Place of Supply:</span> {{.Client.State}}</p>
          <p><span class="k">GSTIN:</span> {{.Client.GSTIN}}</p>
          <p><span class="k">Invoice No.:</span> {{.Invoice.Number}}</p>
          <p><span class="k">Date:</span> {{formatDate .Invoice.InvoiceDate}}</p>
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th class="mid">S. No</th>
            <th>Description of Services</th>
            <th class="mid">SAC/HSN</th>
            <th class="mid">Quantity</th>
            <th class="num">Rate</th>
            <th class="num">Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range $i, $item := .Items}}
          <tr>
            <td class="mid">{{inc $i}}</td>
            <td>{{$item.Description}}</td>
            <td class="mid">{{$item.HSNSAC}}</td>
            <td class="mid">{{formatQuantity $item.Quantity}}</td>
            <td class="num">{{formatMoney $item.UnitPrice}}</td>
            <td class="num">{{formatMoney $item.LineTotal}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>

      <table class="totals">
        <tr><td>Sub Total:</td><td class="num">{{formatMoney .Invoice.Subtotal}}</td></tr>
        <tr><td>IGST:</td><td class="num">{{formatMoney .Invoice.IGST}}</td></tr>
        <tr><td>SGST:</td><td class="num">{{formatMoney .Invoice.SGST}}</td></tr>
        <tr><td>CGST:</td><td class="num">{{formatMoney .Invoice.CGST}}</td></tr>
        <tr class="grand"><td>TOTAL AMOUNT PAYABLE:</td><td class="num">{{formatMoney .Invoice.TotalAmount}}</td></tr>
      </table>

      <div class="words">
        <p><strong>Amount Chargeable (in words):</strong> {{.Invoice.AmountInWords}}</p>
        <p><strong>GST Payable under reverse charge:</strong> {{if .Invoice.GSTPayableReverseCharge}}YES{{else}}NO{{end}}</p>
      </div>

      <table>
        <thead>
          <tr>
            <th class="mid">SAC</th>
            <th class="num">Taxable Value</th>
            <th class="num">CGST</th>
            <th class="num">SGST</th>
            <th class="num">IGST</th>
            <th class="num">Total Tax Amount</th>
          </tr>
        </thead>
        <tbody>
          <tr>
            <td class="mid">{{firstHSN .Items}}</td>
            <td class="num">{{formatMoney .Invoice.Subtotal}}</td>
            <td class="num">{{formatMoney .Invoice.CGST}}</td>
            <td class="num">{{formatMoney .Invoice.SGST}}</td>
            <td class="num">{{formatMoney .Invoice.IGST}}</td>
            <td class="num">{{formatMoney .Invoice.TotalGST}}</td>
          </tr>
        </tbody>
      </table>
    </div>

    <div class="footer">
      <p><strong>Bank Account Details:</strong></p>
      <div class="bank">
        <p><strong>Account No:</strong> {{.Company.BankAccountNumber}}</p>
        <p><strong>Account Name:</strong> {{.Company.Name}}</p>
        <p><strong>Bank &amp; Branch Name:</strong> {{.Company.BankName}}</p>
        <p><strong>IFSC Code:</strong> {{.Company.BankIFSC}}</p>
        <p><strong>Account Type:</strong> Current Account</p>
      </div>
      <div class="signatory">
        <p><strong>For {{.Company.Name}}</strong></p>
        <div class="line">Director / Authorized Signatory</div>
      </div>
    </div>
  </div>
</body>
</html>
`

type ExtrapeRenderer struct {
	tpl *template.Template
}

func NewExtrapeRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatQuantity": formatQuantity,
		"inc":            func(i int) int { return i + 1 },
		"firstHSN": func(items []LineItemView) string {
			if len(items) == 0 {
				return ""
			}
			return items[0].HSNSAC
		},
	}
	return &ExtrapeRenderer{
		tpl: template.Must(template.New("extrape-invoice").Funcs(funcs).Parse(extrapeHTMLTemplate)),
	}
}

func (r *ExtrapeRenderer) RenderHTML(input RenderInput) (string, error) {
	if input.Company.Name == "" {
		input.Company.Name = "Invoice"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
