package builder

import "errors"

// ComponentType tags a placeable template component.
type ComponentType string

const (
	TypeText            ComponentType = "text"
	TypeHeading         ComponentType = "heading"
	TypeCompanyLogo     ComponentType = "company-logo"
	TypeCompanyName     ComponentType = "company-name"
	TypeCompanyAddress  ComponentType = "company-address"
	TypeCompanyContact  ComponentType = "company-contact"
	TypeCompanyGSTIN    ComponentType = "company-gstin"
	TypeClientName      ComponentType = "client-name"
	TypeClientAddress   ComponentType = "client-address"
	TypeClientGSTIN     ComponentType = "client-gstin"
	TypeInvoiceNumber   ComponentType = "invoice-number"
	TypeInvoiceDate     ComponentType = "invoice-date"
	TypeDueDate         ComponentType = "due-date"
	TypeItemsTable      ComponentType = "items-table"
	TypeSubtotal        ComponentType = "subtotal"
	TypeTaxBreakdown    ComponentType = "tax-breakdown"
	TypeTotalAmount     ComponentType = "total-amount"
	TypeAmountInWords   ComponentType = "amount-in-words"
	TypeBankDetails     ComponentType = "bank-details"
	TypeSignature       ComponentType = "signature"
	TypeTermsConditions ComponentType = "terms-conditions"
	TypeDivider         ComponentType = "divider"
	TypeSpacer          ComponentType = "spacer"
)

// Category groups component types in the palette.
type Category string

const (
	CategoryHeader  Category = "header"
	CategoryContent Category = "content"
	CategoryTable   Category = "table"
	CategoryFooter  Category = "footer"
	CategoryLayout  Category = "layout"
)

var (
	ErrUnknownComponentType = errors.New("unknown_component_type")
	ErrComponentNotFound    = errors.New("component_not_found")
	ErrNoLayout             = errors.New("no_layout")
)

// Position is a point in layout pixels (96 DPI equivalence).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an extent in layout pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Margins are page margins in layout pixels.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Style maps CSS-ish attribute names (fontSize, fontWeight, color,
// borderWidth, ...) to values. Stored as free-form strings so the layout
// blob round-trips without a schema.
type Style map[string]string

// Clone returns a copy safe to mutate.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Component is a placed instance on a template page. Components are owned
// by exactly one Layout; ids are unique within it and never reused.
type Component struct {
	ID       string        `json:"id"`
	Type     ComponentType `json:"type"`
	Label    string        `json:"label"`
	Content  string        `json:"content,omitempty"`
	Style    Style         `json:"style"`
	Position Position      `json:"position"`
	Size     Size          `json:"size"`
	Locked   bool          `json:"locked"`
	Visible  bool          `json:"visible"`
}

// Clone deep-copies the component.
func (c Component) Clone() Component {
	out := c
	out.Style = c.Style.Clone()
	return out
}

// ComponentUpdate is a partial edit. Nil fields leave the current value
// untouched; Style merges key-wise rather than replacing the map.
type ComponentUpdate struct {
	Label    *string
	Content  *string
	Style    Style
	Position *PositionUpdate
	Size     *SizeUpdate
	Locked   *bool
	Visible  *bool
}

type PositionUpdate struct {
	X *float64
	Y *float64
}

type SizeUpdate struct {
	Width  *float64
	Height *float64
}

// apply merges the update into the component. Style/position/size are
// merged field-wise so partial edits never clobber unrelated keys.
func (c *Component) apply(u ComponentUpdate) {
	if u.Label != nil {
		c.Label = *u.Label
	}
	if u.Content != nil {
		c.Content = *u.Content
	}
	if len(u.Style) > 0 {
		if c.Style == nil {
			c.Style = make(Style, len(u.Style))
		}
		for k, v := range u.Style {
			c.Style[k] = v
		}
	}
	if u.Position != nil {
		if u.Position.X != nil {
			c.Position.X = *u.Position.X
		}
		if u.Position.Y != nil {
			c.Position.Y = *u.Position.Y
		}
	}
	if u.Size != nil {
		if u.Size.Width != nil {
			c.Size.Width = *u.Size.Width
		}
		if u.Size.Height != nil {
			c.Size.Height = *u.Size.Height
		}
	}
	if u.Locked != nil {
		c.Locked = *u.Locked
	}
	if u.Visible != nil {
		c.Visible = *u.Visible
	}
}

// PositionAt builds a full position update, the form canvas drags emit.
func PositionAt(x, y float64) *PositionUpdate {
	return &PositionUpdate{X: &x, Y: &y}
}

// SizeOf builds a full size update, the form canvas resizes emit.
func SizeOf(w, h float64) *SizeUpdate {
	return &SizeUpdate{Width: &w, Height: &h}
}
