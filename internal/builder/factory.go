package builder

import (
	"fmt"
	"math/rand"
	"time"
)

const placeholderContent = "Edit this text"

// NewComponent instantiates a component of the given type at the given
// position, seeded from the catalog defaults. Content is set to a
// placeholder only when the definition marks content configurable.
func NewComponent(t ComponentType, pos Position) (Component, error) {
	def, err := Lookup(t)
	if err != nil {
		return Component{}, err
	}

	c := Component{
		ID:       newComponentID(t),
		Type:     t,
		Label:    def.Label,
		Style:    def.DefaultStyle.Clone(),
		Position: pos,
		Size:     def.DefaultSize,
		Locked:   false,
		Visible:  true,
	}
	if def.Configurable.Content {
		c.Content = placeholderContent
	}
	return c, nil
}

// NewBlankLayout produces an empty A4 portrait template with 20px
// margins and the stock global styles.
func NewBlankLayout(name string) Layout {
	return Layout{
		ID:          fmt.Sprintf("template-%d", time.Now().UnixMilli()),
		Name:        name,
		PageSize:    PageA4,
		Orientation: OrientationPortrait,
		Margins:     Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		Components:  []Component{},
		GlobalStyles: GlobalStyles{
			FontFamily:     "Roboto, sans-serif",
			PrimaryColor:   "#000000",
			SecondaryColor: "#666666",
			AccentColor:    "#0066cc",
		},
	}
}

// newComponentID builds a time-plus-random identifier. Uniqueness is
// probabilistic; two ids only collide when generated in the same
// millisecond with the same random suffix.
func newComponentID(t ComponentType) string {
	return fmt.Sprintf("%s-%d-%09d", t, time.Now().UnixMilli(), rand.Intn(1_000_000_000))
}
