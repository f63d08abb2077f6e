package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// PreviewData supplies the values bound into preview placeholders.
// Zero-value fields fall back to the component label.
type PreviewData struct {
	CompanyName    string
	CompanyAddress string
	CompanyContact string
	CompanyGSTIN   string
	ClientName     string
	ClientAddress  string
	ClientGSTIN    string
	InvoiceNumber  string
	InvoiceDate    string
	DueDate        string
	Subtotal       string
	CGST           string
	SGST           string
	IGST           string
	Total          string
	AmountInWords  string
	BankDetails    string
}

// SamplePreviewData is the stock dataset used when previewing a template
// without a real invoice.
func SamplePreviewData() PreviewData {
	return PreviewData{
		CompanyName:    "Acme Corporation",
		CompanyAddress: "123 Business St, Mumbai, Maharashtra - 400001",
		CompanyContact: "Tel: +91 98765 43210 | Email: info@acme.com",
		CompanyGSTIN:   "GSTIN: 27AAAAA0000A1Z5 | PAN: AAAAA0000A | CIN: L12345MH2010PLC123456",
		ClientName:     "ABC Enterprises",
		ClientAddress:  "456 Client Ave, Delhi, Delhi - 110001",
		ClientGSTIN:    "GSTIN: 07BBBBB0000B1Z5",
		InvoiceNumber:  "INV-2024-001",
		InvoiceDate:    "02/10/2024",
		DueDate:        "01/11/2024",
		Subtotal:       "Rs. 10,000.00",
		CGST:           "Rs. 900.00",
		SGST:           "Rs. 900.00",
		IGST:           "Rs. 0.00",
		Total:          "Rs. 11,800.00",
		AmountInWords:  "Rupees Eleven Thousand Eight Hundred Only",
		BankDetails:    "Bank: State Bank of India\nAccount: 1234567890\nIFSC: SBIN0001234",
	}
}

const previewHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Name}} - Preview</title>
  <style>
    body { margin: 0; background: #f3f4f6; font-family: {{.FontFamily}}; }
    .page {
      position: relative;
      margin: 24px auto;
      background: #ffffff;
      box-shadow: 0 1px 4px rgba(0,0,0,0.15);
      width: {{.PageWidth}}px;
      height: {{.PageHeight}}px;
      overflow: hidden;
    }
    .component { position: absolute; overflow: hidden; white-space: pre-line; }
  </style>
</head>
<body>
  <div class="page">
    {{range .Components}}
    <div class="component" style="{{.Style}}">{{.Content}}</div>
    {{end}}
  </div>
</body>
</html>
`

type previewComponent struct {
	Style   template.CSS
	Content string
}

type previewModel struct {
	Name       string
	FontFamily template.CSS
	PageWidth  int
	PageHeight int
	Components []previewComponent
}

// PreviewRenderer projects a layout plus invoice data into a static HTML
// document for human review.
type PreviewRenderer struct {
	tpl *template.Template
}

func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{
		tpl: template.Must(template.New("preview").Parse(previewHTMLTemplate)),
	}
}

// Render produces the preview HTML. Hidden components are skipped;
// component order is paint order.
func (r *PreviewRenderer) Render(l Layout, data PreviewData) (string, error) {
	dims := l.PageDimensions()
	model := previewModel{
		Name:       l.Name,
		FontFamily: template.CSS(sanitizeFontFamily(l.GlobalStyles.FontFamily)),
		PageWidth:  int(dims.Width),
		PageHeight: int(dims.Height),
	}

	for _, c := range l.Components {
		if !c.Visible {
			continue
		}
		model.Components = append(model.Components, previewComponent{
			Style:   template.CSS(inlineStyle(c)),
			Content: bindContent(c, data),
		})
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, model); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// bindContent resolves what a component displays: explicit content wins,
// then the data field for its type, then the label.
func bindContent(c Component, data PreviewData) string {
	if c.Content != "" {
		return c.Content
	}

	switch c.Type {
	case TypeCompanyName:
		return data.CompanyName
	case TypeCompanyAddress:
		return data.CompanyAddress
	case TypeCompanyContact:
		return data.CompanyContact
	case TypeCompanyGSTIN:
		return data.CompanyGSTIN
	case TypeClientName:
		return data.ClientName
	case TypeClientAddress:
		return data.ClientAddress
	case TypeClientGSTIN:
		return data.ClientGSTIN
	case TypeInvoiceNumber:
		return "Invoice No: " + data.InvoiceNumber
	case TypeInvoiceDate:
		return "Date: " + data.InvoiceDate
	case TypeDueDate:
		return "Due Date: " + data.DueDate
	case TypeSubtotal:
		return "Subtotal: " + data.Subtotal
	case TypeTaxBreakdown:
		return fmt.Sprintf("CGST @9%%: %s\nSGST @9%%: %s\nIGST @18%%: %s", data.CGST, data.SGST, data.IGST)
	case TypeTotalAmount:
		return "Total: " + data.Total
	case TypeAmountInWords:
		return data.AmountInWords
	case TypeBankDetails:
		return data.BankDetails
	case TypeSignature:
		return "For " + data.CompanyName + "\n\n\n\nAuthorized Signatory"
	case TypeItemsTable:
		return "Items table will appear here"
	case TypeCompanyLogo:
		return "[Logo]"
	case TypeDivider, TypeSpacer:
		return ""
	default:
		return c.Label
	}
}

// inlineStyle flattens position, size, and the component style map into
// a deterministic CSS declaration list.
func inlineStyle(c Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, "left:%gpx;top:%gpx;width:%gpx;height:%gpx;",
		c.Position.X, c.Position.Y, c.Size.Width, c.Size.Height)

	keys := make([]string, 0, len(c.Style))
	for k := range c.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prop := cssProperty(k)
		if prop == "" {
			continue
		}
		fmt.Fprintf(&b, "%s:%s;", prop, sanitizeStyleValue(c.Style[k]))
	}
	return b.String()
}

// cssProperty maps a camelCase style key to its CSS property name,
// rejecting keys outside the supported set.
func cssProperty(key string) string {
	switch key {
	case "fontSize":
		return "font-size"
	case "fontWeight":
		return "font-weight"
	case "fontStyle":
		return "font-style"
	case "fontFamily":
		return "font-family"
	case "color":
		return "color"
	case "backgroundColor":
		return "background-color"
	case "textAlign":
		return "text-align"
	case "padding":
		return "padding"
	case "margin":
		return "margin"
	case "borderWidth":
		return "border-width"
	case "borderColor":
		return "border-color"
	case "borderStyle":
		return "border-style"
	case "width":
		return "width"
	case "height":
		return "height"
	case "display":
		return "display"
	case "flexDirection":
		return "flex-direction"
	case "justifyContent":
		return "justify-content"
	case "alignItems":
		return "align-items"
	case "gap":
		return "gap"
	default:
		return ""
	}
}

var styleValueReplacer = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", "\"", "", "'", "")

func sanitizeStyleValue(v string) string {
	return styleValueReplacer.Replace(strings.TrimSpace(v))
}

func sanitizeFontFamily(v string) string {
	v = sanitizeStyleValue(v)
	if v == "" {
		return "Roboto, sans-serif"
	}
	return v
}
