package pdf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

const rasterizeTimeout = 30 * time.Second

// deviceScaleFactor captures at 2x so text stays sharp after the PDF
// downscales each page slice to print size.
const deviceScaleFactor = 2

// Rasterizer renders an HTML document to a full-height PNG at the given
// viewport width.
type Rasterizer interface {
	RasterizePNG(ctx context.Context, html string, width int) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Rasterizer = (*RodRasterizer)(nil)

// RodRasterizer drives a headless Chromium via go-rod. The browser is
// launched lazily on first use and reused across invocations.
type RodRasterizer struct {
	mu      sync.Mutex
	browser *rod.Browser
	cleanup func()
	log     *zap.Logger
}

func NewRodRasterizer(log *zap.Logger) *RodRasterizer {
	return &RodRasterizer{log: log.Named("pdf.rasterizer")}
}

func (r *RodRasterizer) RasterizePNG(ctx context.Context, html string, width int) ([]byte, error) {
	browser, err := r.connect()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, rasterizeTimeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            1080,
		DeviceScaleFactor: deviceScaleFactor,
	}); err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	// full-page capture so pagination sees the whole document
	png, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}
	return png, nil
}

func (r *RodRasterizer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, err
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, err
	}

	r.browser = browser
	r.cleanup = l.Cleanup
	r.log.Info("headless browser launched")
	return browser, nil
}

func (r *RodRasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	if r.cleanup != nil {
		r.cleanup()
	}
	r.browser = nil
	r.cleanup = nil
	return err
}
