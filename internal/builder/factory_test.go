package builder

import (
	"errors"
	"strings"
	"testing"
)

func TestNewComponentSeedsCatalogDefaults(t *testing.T) {
	c, err := NewComponent(TypeCompanyLogo, Position{X: 40, Y: 60})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if c.Size != (Size{Width: 100, Height: 100}) {
		t.Errorf("size = %+v, want 100x100", c.Size)
	}
	if c.Style["width"] != "100px" || c.Style["height"] != "100px" {
		t.Errorf("style = %v, want catalog defaults", c.Style)
	}
	if c.Label != "Company Logo" {
		t.Errorf("label = %q", c.Label)
	}
	if c.Content != "" {
		t.Errorf("content = %q, data-bound components get no placeholder", c.Content)
	}
	if c.Position != (Position{X: 40, Y: 60}) {
		t.Errorf("position = %+v", c.Position)
	}
}

func TestNewComponentPlaceholderOnlyWhenContentConfigurable(t *testing.T) {
	text, err := NewComponent(TypeText, Position{})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if text.Content != placeholderContent {
		t.Errorf("text content = %q, want placeholder", text.Content)
	}

	subtotal, err := NewComponent(TypeSubtotal, Position{})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if subtotal.Content != "" {
		t.Errorf("subtotal content = %q, want empty", subtotal.Content)
	}
}

func TestNewComponentUnknownType(t *testing.T) {
	if _, err := NewComponent(ComponentType("nonsense"), Position{}); !errors.Is(err, ErrUnknownComponentType) {
		t.Errorf("err = %v, want ErrUnknownComponentType", err)
	}
}

func TestNewComponentIDsAreUniqueAndTyped(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		c, err := NewComponent(TypeDivider, Position{})
		if err != nil {
			t.Fatalf("NewComponent: %v", err)
		}
		if !strings.HasPrefix(c.ID, string(TypeDivider)+"-") {
			t.Fatalf("id %q missing type prefix", c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNewComponentStyleIsOwnCopy(t *testing.T) {
	a, _ := NewComponent(TypeCompanyName, Position{})
	b, _ := NewComponent(TypeCompanyName, Position{})
	a.Style["fontSize"] = "99px"
	if b.Style["fontSize"] == "99px" {
		t.Error("components must not share the catalog style map")
	}
	def, _ := Lookup(TypeCompanyName)
	if def.DefaultStyle["fontSize"] == "99px" {
		t.Error("catalog defaults must be immutable")
	}
}

func TestNewBlankLayoutDefaults(t *testing.T) {
	l := NewBlankLayout("My Template")
	if l.PageSize != PageA4 || l.Orientation != OrientationPortrait {
		t.Errorf("page = %s/%s, want a4 portrait", l.PageSize, l.Orientation)
	}
	if l.Margins != (Margins{Top: 20, Right: 20, Bottom: 20, Left: 20}) {
		t.Errorf("margins = %+v", l.Margins)
	}
	if dims := l.PageDimensions(); dims != (Size{Width: 794, Height: 1123}) {
		t.Errorf("dimensions = %+v, want 794x1123", dims)
	}
	if len(l.Components) != 0 {
		t.Errorf("components = %d, want empty", len(l.Components))
	}
}

func TestPageDimensionsLandscapeSwaps(t *testing.T) {
	l := NewBlankLayout("wide")
	l.Orientation = OrientationLandscape
	if dims := l.PageDimensions(); dims != (Size{Width: 1123, Height: 794}) {
		t.Errorf("dimensions = %+v, want swapped 1123x794", dims)
	}
}

func TestPageDimensionsUnknownFallsBackToA4(t *testing.T) {
	l := NewBlankLayout("odd")
	l.PageSize = PageSize("tabloid")
	if dims := l.PageDimensions(); dims != (Size{Width: 794, Height: 1123}) {
		t.Errorf("dimensions = %+v, want a4 fallback", dims)
	}
}

func TestDefinitionsCoverEveryType(t *testing.T) {
	defs := Definitions()
	if len(defs) != 23 {
		t.Fatalf("catalog has %d entries, want 23", len(defs))
	}
	for _, d := range defs {
		if _, err := Lookup(d.Type); err != nil {
			t.Errorf("Lookup(%s): %v", d.Type, err)
		}
	}
}

func TestDefinitionsByCategory(t *testing.T) {
	header := DefinitionsByCategory(CategoryHeader)
	if len(header) == 0 {
		t.Fatal("header category must not be empty")
	}
	for _, d := range header {
		if d.Category != CategoryHeader {
			t.Errorf("%s filed under %s", d.Type, d.Category)
		}
	}
}
