package render

import (
	"strings"
	"testing"
)

func TestRegistryBuiltInGenerators(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Lookup(DefaultGeneratorID); !ok {
		t.Error("default generator missing")
	}
	if _, ok := reg.Lookup(ExtrapeGeneratorID); !ok {
		t.Error("extrape generator missing")
	}
	// the original catalog keys this one "Extrape"
	if _, ok := reg.Lookup("Extrape"); !ok {
		t.Error("lookup must be case-insensitive")
	}
	if _, ok := reg.Lookup("12345"); ok {
		t.Error("saved-template ids must not resolve to a built-in")
	}
	if reg.Default() == nil {
		t.Error("no fallback generator")
	}
}

func TestRegistryRegisterOverrides(t *testing.T) {
	reg := NewRegistry()
	stub := &HTMLRenderer{}
	reg.Register(DefaultGeneratorID, stub)

	if got := reg.Default(); got != Renderer(stub) {
		t.Error("register did not replace the default generator")
	}
}

func TestExtrapeRendererDocument(t *testing.T) {
	html, err := NewExtrapeRenderer().RenderHTML(sampleInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"GST INVOICE",
		"Acme Traders",
		"Invoice No.:</span> 050324INV0001",
		"Place of Supply:</span> Karnataka",
		"Consulting services",
		"Rs. 10000.00",
		"IGST:",
		"TOTAL AMOUNT PAYABLE:",
		"Rupees Eleven Thousand Eight Hundred Only",
		"GST Payable under reverse charge:</strong> NO",
		"Account No:</strong> 000111222333",
		"Director / Authorized Signatory",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("extrape document missing %q", want)
		}
	}
}

func TestExtrapeRendererReverseCharge(t *testing.T) {
	input := sampleInput()
	input.Invoice.GSTPayableReverseCharge = true

	html, err := NewExtrapeRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "GST Payable under reverse charge:</strong> YES") {
		t.Error("reverse charge flag not rendered")
	}
}
