package builder

// PageSize names a paper format.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// Orientation selects portrait or landscape page dimensions.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Pixel page dimensions at 96 DPI.
var pageDimensions = map[PageSize]Size{
	PageA4:     {Width: 794, Height: 1123},
	PageLetter: {Width: 816, Height: 1056},
	PageLegal:  {Width: 816, Height: 1344},
}

// GlobalStyles carry document-wide styling defaults.
type GlobalStyles struct {
	FontFamily     string `json:"fontFamily,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	AccentColor    string `json:"accentColor,omitempty"`
}

// Layout is the in-memory template document: page metadata plus an
// ordered collection of placed components. Component order is paint
// order; insertion order is meaningful.
type Layout struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	PageSize     PageSize     `json:"pageSize"`
	Orientation  Orientation  `json:"orientation"`
	Margins      Margins      `json:"margins"`
	Components   []Component  `json:"components"`
	GlobalStyles GlobalStyles `json:"globalStyles,omitempty"`
}

// PageDimensions returns the pixel page size for the layout's paper
// format and orientation. Unknown sizes fall back to A4.
func (l Layout) PageDimensions() Size {
	dims, ok := pageDimensions[l.PageSize]
	if !ok {
		dims = pageDimensions[PageA4]
	}
	if l.Orientation == OrientationLandscape {
		dims.Width, dims.Height = dims.Height, dims.Width
	}
	return dims
}

// Clone deep-copies the layout, including every component and style map.
func (l Layout) Clone() Layout {
	out := l
	out.Components = make([]Component, len(l.Components))
	for i, c := range l.Components {
		out.Components[i] = c.Clone()
	}
	return out
}

// Component returns a pointer into the layout's component slice, or nil.
func (l *Layout) Component(id string) *Component {
	for i := range l.Components {
		if l.Components[i].ID == id {
			return &l.Components[i]
		}
	}
	return nil
}

// RemoveComponent deletes the component with the given id, preserving
// the order of the rest. Reports whether anything was removed.
func (l *Layout) RemoveComponent(id string) bool {
	for i := range l.Components {
		if l.Components[i].ID == id {
			l.Components = append(l.Components[:i], l.Components[i+1:]...)
			return true
		}
	}
	return false
}
