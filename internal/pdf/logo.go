package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/silzatelesols/billify/internal/storage"
	"go.uber.org/zap"
)

const (
	logoFetchTimeout = 5 * time.Second
	maxLogoBytes     = 2 << 20 // 2 MiB
)

// LogoPlaceholder is rendered when a stored logo cannot be resolved.
// Inlined so the headless browser needs no network to draw it.
const LogoPlaceholder = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxMjAiIGhlaWdodD0iNjAiPjxyZWN0IHdpZHRoPSIxMjAiIGhlaWdodD0iNjAiIGZpbGw9IiNlNWU3ZWIiLz48dGV4dCB4PSI2MCIgeT0iMzQiIGZvbnQtZmFtaWx5PSJzYW5zLXNlcmlmIiBmb250LXNpemU9IjEyIiBmaWxsPSIjNmI3MjgwIiB0ZXh0LWFuY2hvcj0ibWlkZGxlIj5Zb3VyIExvZ288L3RleHQ+PC9zdmc+"

var (
	base64Payload  = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
	dataURIPattern = regexp.MustCompile(`data:image/[^;]+;base64,[A-Za-z0-9+/=]+`)
	multipartImage = regexp.MustCompile(`(?i)Content-Type:\s*image/([^\r\n;]+)[\r\n]+([A-Za-z0-9+/=\r\n\t ]+)`)
)

// ResolveLogo turns a stored logo reference into something the headless
// browser can load without credentials: S3 references are fetched via a
// presigned link, other remote URLs are fetched directly, data URIs are
// validated and passed through, and base64 images buried in multipart
// payloads are extracted. An unresolvable logo degrades to a placeholder
// rather than failing the document; an empty reference stays empty.
func ResolveLogo(ctx context.Context, client *http.Client, store storage.ObjectStore, log *zap.Logger, logoURL string) string {
	logoURL = strings.TrimSpace(logoURL)
	switch {
	case logoURL == "":
		return ""
	case strings.HasPrefix(logoURL, "data:"):
		if uri, ok := validateDataURI(logoURL); ok {
			return uri
		}
		log.Warn("malformed logo data uri, using placeholder")
		return LogoPlaceholder
	case isS3URL(logoURL):
		uri, err := fetchS3AsDataURI(ctx, client, store, logoURL)
		if err != nil {
			log.Warn("s3 logo fetch failed, using placeholder", zap.Error(err), zap.String("logo_url", logoURL))
			return LogoPlaceholder
		}
		return uri
	case strings.HasPrefix(logoURL, "http://"), strings.HasPrefix(logoURL, "https://"):
		uri, err := fetchAsDataURI(ctx, client, logoURL)
		if err != nil {
			log.Warn("logo fetch failed, using placeholder", zap.Error(err), zap.String("logo_url", logoURL))
			return LogoPlaceholder
		}
		return uri
	case isMultipartPayload(logoURL):
		if uri, ok := extractFromMultipart(logoURL); ok {
			return uri
		}
		log.Warn("no image found in multipart logo payload, using placeholder")
		return LogoPlaceholder
	case strings.HasPrefix(logoURL, "/"), strings.HasPrefix(logoURL, "./"):
		// relative app assets pass through untouched
		return logoURL
	default:
		log.Warn("unsupported logo reference, using placeholder", zap.String("logo_url", logoURL))
		return LogoPlaceholder
	}
}

// validateDataURI accepts only well-formed base64 image data URIs.
func validateDataURI(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, "data:image/")
	if !ok {
		return "", false
	}
	_, payload, ok := strings.Cut(rest, ";base64,")
	if !ok || payload == "" || !base64Payload.MatchString(payload) {
		return "", false
	}
	return uri, true
}

func isS3URL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return strings.Contains(host, "s3") || strings.Contains(host, "amazonaws.com")
}

// fetchS3AsDataURI swaps a bucket URL for a presigned link before
// fetching, so private objects resolve. Without a configured store the
// raw URL is tried as-is.
func fetchS3AsDataURI(ctx context.Context, client *http.Client, store storage.ObjectStore, rawURL string) (string, error) {
	fetchURL := rawURL
	if store != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", err
		}
		key := strings.TrimPrefix(u.Path, "/")
		signed, err := store.SignedURL(ctx, key)
		if err != nil {
			return "", fmt.Errorf("presigning logo object %q: %w", key, err)
		}
		fetchURL = signed
	}
	return fetchAsDataURI(ctx, client, fetchURL)
}

func isMultipartPayload(data string) bool {
	return strings.Contains(data, "boundary=") ||
		strings.Contains(data, "Content-Type: image/") ||
		strings.Contains(data, "Content-Disposition:") ||
		strings.Contains(data, "\r\n\r\n")
}

// extractFromMultipart digs a base64 image out of a multipart form
// payload, either as an embedded data URI or as a body following an
// image Content-Type header.
func extractFromMultipart(data string) (string, bool) {
	if match := dataURIPattern.FindString(data); match != "" {
		return validateDataURI(match)
	}

	groups := multipartImage.FindStringSubmatch(data)
	if groups == nil {
		return "", false
	}
	imageType := groups[1]
	payload := strings.NewReplacer("\r", "", "\n", "", " ", "", "\t", "").Replace(groups[2])
	if payload == "" || !base64Payload.MatchString(payload) {
		return "", false
	}
	return "data:image/" + imageType + ";base64," + payload, true
}

func fetchAsDataURI(ctx context.Context, client *http.Client, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, logoFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logo fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxLogoBytes {
		return "", fmt.Errorf("logo exceeds %d bytes", maxLogoBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("logo content type %q is not an image", contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}
