package builder

// Configurable flags which attributes of a component the property editor
// may change.
type Configurable struct {
	Content  bool `json:"content,omitempty"`
	Style    bool `json:"style,omitempty"`
	Size     bool `json:"size,omitempty"`
	Position bool `json:"position,omitempty"`
}

// Definition is the static catalog entry for a component type.
type Definition struct {
	Type         ComponentType `json:"type"`
	Label        string        `json:"label"`
	Category     Category      `json:"category"`
	Description  string        `json:"description"`
	DefaultStyle Style         `json:"defaultStyle"`
	DefaultSize  Size          `json:"defaultSize"`
	Configurable Configurable  `json:"configurable"`
}

// componentLibrary lists every placeable component type with its palette
// defaults. Order matters: it is the palette display order.
var componentLibrary = []Definition{
	// Header components
	{
		Type: TypeCompanyLogo, Label: "Company Logo", Category: CategoryHeader,
		Description:  "Your company logo",
		DefaultStyle: Style{"width": "100px", "height": "100px"},
		DefaultSize:  Size{Width: 100, Height: 100},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeCompanyName, Label: "Company Name", Category: CategoryHeader,
		Description:  "Company name from profile",
		DefaultStyle: Style{"fontSize": "24px", "fontWeight": "bold", "textAlign": "center"},
		DefaultSize:  Size{Width: 300, Height: 40},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeCompanyAddress, Label: "Company Address", Category: CategoryHeader,
		Description:  "Company address from profile",
		DefaultStyle: Style{"fontSize": "12px", "textAlign": "center"},
		DefaultSize:  Size{Width: 300, Height: 60},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeCompanyContact, Label: "Company Contact", Category: CategoryHeader,
		Description:  "Phone and email",
		DefaultStyle: Style{"fontSize": "12px", "textAlign": "center"},
		DefaultSize:  Size{Width: 300, Height: 40},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeCompanyGSTIN, Label: "Company GSTIN", Category: CategoryHeader,
		Description:  "GSTIN, PAN, CIN",
		DefaultStyle: Style{"fontSize": "11px", "textAlign": "left"},
		DefaultSize:  Size{Width: 250, Height: 30},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},

	// Content components
	{
		Type: TypeHeading, Label: "Heading", Category: CategoryContent,
		Description:  "Custom heading text",
		DefaultStyle: Style{"fontSize": "18px", "fontWeight": "bold", "textAlign": "center"},
		DefaultSize:  Size{Width: 200, Height: 30},
		Configurable: Configurable{Content: true, Style: true, Size: true, Position: true},
	},
	{
		Type: TypeText, Label: "Text", Category: CategoryContent,
		Description:  "Custom text field",
		DefaultStyle: Style{"fontSize": "12px", "textAlign": "left"},
		DefaultSize:  Size{Width: 200, Height: 30},
		Configurable: Configurable{Content: true, Style: true, Size: true, Position: true},
	},
	{
		Type: TypeInvoiceNumber, Label: "Invoice Number", Category: CategoryContent,
		Description:  "Invoice number field",
		DefaultStyle: Style{"fontSize": "12px", "fontWeight": "bold"},
		DefaultSize:  Size{Width: 200, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeInvoiceDate, Label: "Invoice Date", Category: CategoryContent,
		Description:  "Invoice date field",
		DefaultStyle: Style{"fontSize": "12px"},
		DefaultSize:  Size{Width: 200, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeDueDate, Label: "Due Date", Category: CategoryContent,
		Description:  "Payment due date",
		DefaultStyle: Style{"fontSize": "12px"},
		DefaultSize:  Size{Width: 200, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeClientName, Label: "Client Name", Category: CategoryContent,
		Description:  "Client name and address",
		DefaultStyle: Style{"fontSize": "12px", "fontWeight": "bold"},
		DefaultSize:  Size{Width: 250, Height: 30},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeClientAddress, Label: "Client Address", Category: CategoryContent,
		Description:  "Client full address",
		DefaultStyle: Style{"fontSize": "11px"},
		DefaultSize:  Size{Width: 250, Height: 60},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeClientGSTIN, Label: "Client GSTIN", Category: CategoryContent,
		Description:  "Client GSTIN",
		DefaultStyle: Style{"fontSize": "11px"},
		DefaultSize:  Size{Width: 200, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},

	// Table components
	{
		Type: TypeItemsTable, Label: "Items Table", Category: CategoryTable,
		Description:  "Invoice items table",
		DefaultStyle: Style{"fontSize": "11px", "borderWidth": "1px", "borderColor": "#000000", "borderStyle": "solid"},
		DefaultSize:  Size{Width: 700, Height: 200},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeSubtotal, Label: "Subtotal", Category: CategoryTable,
		Description:  "Subtotal amount",
		DefaultStyle: Style{"fontSize": "12px", "textAlign": "right"},
		DefaultSize:  Size{Width: 200, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeTaxBreakdown, Label: "Tax Breakdown", Category: CategoryTable,
		Description:  "CGST, SGST, IGST breakdown",
		DefaultStyle: Style{"fontSize": "11px", "textAlign": "right"},
		DefaultSize:  Size{Width: 250, Height: 80},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeTotalAmount, Label: "Total Amount", Category: CategoryTable,
		Description:  "Final total amount",
		DefaultStyle: Style{"fontSize": "14px", "fontWeight": "bold", "textAlign": "right"},
		DefaultSize:  Size{Width: 200, Height: 30},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeAmountInWords, Label: "Amount in Words", Category: CategoryTable,
		Description:  "Total amount in words",
		DefaultStyle: Style{"fontSize": "11px", "fontStyle": "italic"},
		DefaultSize:  Size{Width: 400, Height: 25},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},

	// Footer components
	{
		Type: TypeBankDetails, Label: "Bank Details", Category: CategoryFooter,
		Description:  "Bank account information",
		DefaultStyle: Style{"fontSize": "10px", "borderWidth": "1px", "borderColor": "#cccccc", "borderStyle": "solid", "padding": "10px"},
		DefaultSize:  Size{Width: 350, Height: 100},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeSignature, Label: "Signature", Category: CategoryFooter,
		Description:  "Authorized signatory section",
		DefaultStyle: Style{"fontSize": "11px", "textAlign": "right"},
		DefaultSize:  Size{Width: 200, Height: 100},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeTermsConditions, Label: "Terms & Conditions", Category: CategoryFooter,
		Description:  "Terms and conditions text",
		DefaultStyle: Style{"fontSize": "9px", "color": "#666666"},
		DefaultSize:  Size{Width: 700, Height: 60},
		Configurable: Configurable{Content: true, Style: true, Size: true, Position: true},
	},

	// Layout components
	{
		Type: TypeDivider, Label: "Divider", Category: CategoryLayout,
		Description:  "Horizontal line separator",
		DefaultStyle: Style{"borderWidth": "1px", "borderColor": "#000000", "borderStyle": "solid", "width": "100%"},
		DefaultSize:  Size{Width: 700, Height: 2},
		Configurable: Configurable{Style: true, Size: true, Position: true},
	},
	{
		Type: TypeSpacer, Label: "Spacer", Category: CategoryLayout,
		Description:  "Empty space for layout",
		DefaultStyle: Style{"backgroundColor": "transparent"},
		DefaultSize:  Size{Width: 100, Height: 20},
		Configurable: Configurable{Size: true, Position: true},
	},
}

var definitionIndex = buildDefinitionIndex()

func buildDefinitionIndex() map[ComponentType]*Definition {
	index := make(map[ComponentType]*Definition, len(componentLibrary))
	for i := range componentLibrary {
		index[componentLibrary[i].Type] = &componentLibrary[i]
	}
	return index
}

// Lookup resolves a component type's definition.
func Lookup(t ComponentType) (Definition, error) {
	def, ok := definitionIndex[t]
	if !ok {
		return Definition{}, ErrUnknownComponentType
	}
	return *def, nil
}

// Definitions returns the full catalog in palette order.
func Definitions() []Definition {
	out := make([]Definition, len(componentLibrary))
	copy(out, componentLibrary)
	return out
}

// DefinitionsByCategory filters the catalog by palette category.
func DefinitionsByCategory(cat Category) []Definition {
	var out []Definition
	for _, def := range componentLibrary {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}
