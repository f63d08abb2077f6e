package logger

import (
	"net/http"
	"testing"
)

func TestMaskAuthorizationBearer(t *testing.T) {
	got := MaskAuthorization("Bearer abcdef123456")
	if got != "Bearer ****3456" {
		t.Fatalf("unexpected mask: %q", got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret-token-9999")
	headers.Set("Content-Type", "application/json")

	masked := MaskHeaders(headers)
	if masked["Authorization"] != "Bearer ****9999" {
		t.Fatalf("authorization not masked: %q", masked["Authorization"])
	}
	if masked["Content-Type"] != "application/json" {
		t.Fatalf("content-type should pass through: %q", masked["Content-Type"])
	}
}

func TestMaskJSON(t *testing.T) {
	masked := MaskJSON(map[string]any{
		"secret_access_key": "AKIA000011112222",
		"bucket":            "invoices",
	})
	if masked["secret_access_key"] != "****2222" {
		t.Fatalf("secret not masked: %v", masked["secret_access_key"])
	}
	if masked["bucket"] != "invoices" {
		t.Fatalf("bucket should pass through: %v", masked["bucket"])
	}
}
