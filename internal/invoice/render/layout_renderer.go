package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"sort"
	"strings"

	"github.com/silzatelesols/billify/internal/builder"
)

const layoutHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Number}}</title>
  <style>
    body { margin: 0; background: #ffffff; font-family: {{.FontFamily}}; }
    .page {
      position: relative;
      width: {{.PageWidth}}px;
      height: {{.PageHeight}}px;
      overflow: hidden;
    }
    .component { position: absolute; overflow: hidden; white-space: pre-line; }
    .component img { max-width: 100%; max-height: 100%; }
    .component table { width: 100%; border-collapse: collapse; font-size: 12px; }
    .component th, .component td { padding: 6px 8px; border: 1px solid #d1d5db; text-align: left; }
    .component td.num, .component th.num { text-align: right; }
    .component hr { border: none; border-top: 1px solid #111827; margin: 0; }
  </style>
</head>
<body>
  <div class="page">
    {{range .Components}}
    <div class="component" style="{{.Style}}">{{.Body}}</div>
    {{end}}
  </div>
</body>
</html>
`

type layoutComponent struct {
	Style template.CSS
	Body  template.HTML
}

type layoutModel struct {
	Number     string
	FontFamily template.CSS
	PageWidth  int
	PageHeight int
	Components []layoutComponent
}

// HTMLLayoutRenderer binds invoice data into a designer layout. Data
// components resolve against the invoice; custom text keeps its content.
type HTMLLayoutRenderer struct {
	tpl *template.Template
}

func NewLayoutRenderer() LayoutRenderer {
	return &HTMLLayoutRenderer{
		tpl: template.Must(template.New("layout-invoice").Parse(layoutHTMLTemplate)),
	}
}

func (r *HTMLLayoutRenderer) RenderLayoutHTML(layout builder.Layout, input RenderInput) (string, error) {
	dims := layout.PageDimensions()
	model := layoutModel{
		Number:     input.Invoice.Number,
		FontFamily: template.CSS(cssFontFamily(layout.GlobalStyles.FontFamily)),
		PageWidth:  int(dims.Width),
		PageHeight: int(dims.Height),
	}

	for _, c := range layout.Components {
		if !c.Visible {
			continue
		}
		model.Components = append(model.Components, layoutComponent{
			Style: template.CSS(componentCSS(c)),
			Body:  componentBody(c, input),
		})
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, model); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// componentBody resolves a component against the invoice. The returned
// HTML is built exclusively from escaped strings.
func componentBody(c builder.Component, input RenderInput) template.HTML {
	esc := func(s string) string { return template.HTMLEscapeString(s) }

	switch c.Type {
	case builder.TypeCompanyLogo:
		if input.Company.LogoURL == "" {
			return ""
		}
		return template.HTML(fmt.Sprintf(`<img src="%s" alt="Company logo" />`, esc(input.Company.LogoURL)))
	case builder.TypeCompanyName:
		return template.HTML(esc(input.Company.Name))
	case builder.TypeCompanyAddress:
		return template.HTML(esc(joinAddress(input.Company.Address, input.Company.City, input.Company.State, input.Company.PinCode)))
	case builder.TypeCompanyContact:
		return template.HTML(esc(joinNonEmpty(" | ", prefixed("Tel: ", input.Company.Phone), input.Company.Email, input.Company.Website)))
	case builder.TypeCompanyGSTIN:
		return template.HTML(esc(joinNonEmpty(" | ", prefixed("GSTIN: ", input.Company.GSTIN), prefixed("PAN: ", input.Company.PAN), prefixed("CIN: ", input.Company.CIN))))
	case builder.TypeClientName:
		return template.HTML(esc(joinNonEmpty("\n", input.Client.Name, input.Client.CompanyName)))
	case builder.TypeClientAddress:
		return template.HTML(esc(joinAddress(input.Client.Address, input.Client.City, input.Client.State, input.Client.PinCode)))
	case builder.TypeClientGSTIN:
		return template.HTML(esc(prefixed("GSTIN: ", input.Client.GSTIN)))
	case builder.TypeInvoiceNumber:
		return template.HTML(esc("Invoice No: " + input.Invoice.Number))
	case builder.TypeInvoiceDate:
		return template.HTML(esc("Date: " + formatDate(input.Invoice.InvoiceDate)))
	case builder.TypeDueDate:
		return template.HTML(esc("Due Date: " + formatDate(input.Invoice.DueDate)))
	case builder.TypeItemsTable:
		return itemsTableHTML(input.Items)
	case builder.TypeSubtotal:
		return template.HTML(esc("Subtotal: " + formatMoney(input.Invoice.Subtotal)))
	case builder.TypeTaxBreakdown:
		return taxBreakdownHTML(input)
	case builder.TypeTotalAmount:
		return template.HTML(esc("Total: " + formatMoney(input.Invoice.TotalAmount)))
	case builder.TypeAmountInWords:
		return template.HTML(esc(input.Invoice.AmountInWords))
	case builder.TypeBankDetails:
		return template.HTML(esc(joinNonEmpty("\n",
			prefixed("Bank: ", input.Company.BankName),
			prefixed("A/c: ", input.Company.BankAccountNumber),
			prefixed("IFSC: ", input.Company.BankIFSC))))
	case builder.TypeSignature:
		return template.HTML(esc("For " + input.Company.Name + "\n\n\n\nAuthorized Signatory"))
	case builder.TypeDivider:
		return template.HTML("<hr />")
	case builder.TypeSpacer:
		return ""
	default:
		// text, heading, terms-conditions: verbatim component content
		return template.HTML(esc(c.Content))
	}
}

func itemsTableHTML(items []LineItemView) template.HTML {
	var b strings.Builder
	b.WriteString(`<table><thead><tr><th>#</th><th>Description</th><th>HSN/SAC</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr></thead><tbody>`)
	for i, item := range items {
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
			i+1,
			template.HTMLEscapeString(item.Description),
			template.HTMLEscapeString(item.HSNSAC),
			formatQuantity(item.Quantity),
			template.HTMLEscapeString(formatMoney(item.UnitPrice)),
			template.HTMLEscapeString(formatMoney(item.LineTotal)),
		)
	}
	b.WriteString(`</tbody></table>`)
	return template.HTML(b.String())
}

func taxBreakdownHTML(input RenderInput) template.HTML {
	esc := template.HTMLEscapeString
	if input.Invoice.IGST.IsPositive() {
		return template.HTML(esc("IGST: " + formatMoney(input.Invoice.IGST)))
	}
	return template.HTML(esc(
		"CGST: " + formatMoney(input.Invoice.CGST) + "\nSGST: " + formatMoney(input.Invoice.SGST)))
}

func componentCSS(c builder.Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, "left:%gpx;top:%gpx;width:%gpx;height:%gpx;",
		c.Position.X, c.Position.Y, c.Size.Width, c.Size.Height)

	keys := make([]string, 0, len(c.Style))
	for k := range c.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prop := cssPropertyName(k)
		if prop == "" {
			continue
		}
		fmt.Fprintf(&b, "%s:%s;", prop, stripCSSValue(c.Style[k]))
	}
	return b.String()
}

var cssCamelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

var cssValueReplacer = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", `"`, "", "'", "")

// cssPropertyName converts a camelCase style key to kebab-case,
// rejecting anything outside plain ASCII letters and digits.
func cssPropertyName(key string) string {
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return strings.ToLower(cssCamelBoundary.ReplaceAllString(key, "$1-$2"))
}

func stripCSSValue(v string) string {
	return cssValueReplacer.Replace(strings.TrimSpace(v))
}

func cssFontFamily(v string) string {
	v = stripCSSValue(v)
	if v == "" {
		return "Roboto, sans-serif"
	}
	return v
}

func joinAddress(address, city, state, pin string) string {
	out := address
	if city != "" {
		out = joinNonEmpty(", ", out, city)
	}
	if state != "" {
		out = joinNonEmpty(", ", out, state)
	}
	if pin != "" {
		out = joinNonEmpty(" - ", out, pin)
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
