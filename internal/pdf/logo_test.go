package pdf

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogoPassthrough(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	if got := ResolveLogo(ctx, http.DefaultClient, nil, log, ""); got != "" {
		t.Errorf("empty logo = %q, want empty", got)
	}
	if got := ResolveLogo(ctx, http.DefaultClient, nil, log, "  "); got != "" {
		t.Errorf("blank logo = %q, want empty", got)
	}

	uri := "data:image/png;base64,AAAA"
	if got := ResolveLogo(ctx, http.DefaultClient, nil, log, uri); got != uri {
		t.Errorf("data uri = %q, want passthrough", got)
	}

	if got := ResolveLogo(ctx, http.DefaultClient, nil, log, "/assets/logo.png"); got != "/assets/logo.png" {
		t.Errorf("relative path = %q, want passthrough", got)
	}

	if got := ResolveLogo(ctx, http.DefaultClient, nil, log, "not a logo at all"); got != LogoPlaceholder {
		t.Errorf("unrecognized reference = %q, want placeholder", got)
	}
}

func TestResolveLogoRejectsMalformedDataURI(t *testing.T) {
	cases := []string{
		"data:image/png;base64,not!!valid##base64",
		"data:image/png;base64,",
		"data:text/html;base64,AAAA",
	}
	for _, uri := range cases {
		if got := ResolveLogo(context.Background(), http.DefaultClient, nil, zap.NewNop(), uri); got != LogoPlaceholder {
			t.Errorf("ResolveLogo(%q) = %q, want placeholder", uri, got)
		}
	}
}

func TestResolveLogoFetchesRemoteImage(t *testing.T) {
	png := testRaster(t, 10, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}))
	defer srv.Close()

	got := ResolveLogo(context.Background(), srv.Client(), nil, zap.NewNop(), srv.URL+"/logo.png")
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	if got != want {
		t.Errorf("fetched logo = %.40q..., want data uri of served bytes", got)
	}
}

func TestResolveLogoSniffsMissingContentType(t *testing.T) {
	png := testRaster(t, 4, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write(png)
	}))
	defer srv.Close()

	got := ResolveLogo(context.Background(), srv.Client(), nil, zap.NewNop(), srv.URL)
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("sniffed logo = %.40q, want image/png data uri", got)
	}
}

func TestResolveLogoRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not a logo</html>"))
	}))
	defer srv.Close()

	if got := ResolveLogo(context.Background(), srv.Client(), nil, zap.NewNop(), srv.URL); got != LogoPlaceholder {
		t.Errorf("non-image logo = %q, want placeholder", got)
	}
}

func TestResolveLogoFetchFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if got := ResolveLogo(context.Background(), srv.Client(), nil, zap.NewNop(), srv.URL); got != LogoPlaceholder {
		t.Errorf("404 logo = %q, want placeholder", got)
	}
}

// signingStore redirects SignedURL calls to a local test server and
// records the requested key.
type signingStore struct {
	fakeStore
	base string
	keys []string
}

func (s *signingStore) SignedURL(ctx context.Context, key string) (string, error) {
	s.keys = append(s.keys, key)
	return s.base + "/" + key + "?signature=test", nil
}

func TestResolveLogoPresignsS3Objects(t *testing.T) {
	png := testRaster(t, 6, 6)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("signature") != "test" {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}))
	defer srv.Close()

	store := &signingStore{base: srv.URL}
	got := ResolveLogo(context.Background(), srv.Client(), store, zap.NewNop(),
		"https://logos.s3.ap-south-1.amazonaws.com/company/logo-1.png")

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	if got != want {
		t.Errorf("s3 logo = %.40q..., want data uri of object bytes", got)
	}
	if len(store.keys) != 1 || store.keys[0] != "company/logo-1.png" {
		t.Errorf("presigned keys = %v", store.keys)
	}
}

func TestResolveLogoS3PresignFailureDegrades(t *testing.T) {
	store := &fakeStore{signErr: context.DeadlineExceeded}
	got := ResolveLogo(context.Background(), http.DefaultClient, store, zap.NewNop(),
		"https://logos.s3.amazonaws.com/company/logo.png")
	if got != LogoPlaceholder {
		t.Errorf("presign failure = %q, want placeholder", got)
	}
}

func TestResolveLogoExtractsMultipartImage(t *testing.T) {
	embedded := "boundary=xyz\r\nContent-Disposition: form-data; name=\"logo\"\r\n\r\ndata:image/png;base64,QUJDRA==\r\n"
	got := ResolveLogo(context.Background(), http.DefaultClient, nil, zap.NewNop(), embedded)
	if got != "data:image/png;base64,QUJDRA==" {
		t.Errorf("embedded data uri = %q", got)
	}

	headerForm := "--boundary\r\nContent-Type: image/jpeg\r\nQUJDRA==\r\n"
	got = ResolveLogo(context.Background(), http.DefaultClient, nil, zap.NewNop(), headerForm)
	if got != "data:image/jpeg;base64,QUJDRA==" {
		t.Errorf("header-form payload = %q", got)
	}

	noImage := "boundary=abc\r\nContent-Disposition: form-data\r\n\r\njust text\r\n"
	got = ResolveLogo(context.Background(), http.DefaultClient, nil, zap.NewNop(), noImage)
	if got != LogoPlaceholder {
		t.Errorf("imageless multipart = %q, want placeholder", got)
	}
}
