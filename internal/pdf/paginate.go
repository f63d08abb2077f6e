package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// A4 pixel geometry at the 96 DPI equivalence used by the designer.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
)

// A4 physical size in millimetres, for PDF placement.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

var ErrEmptyRaster = errors.New("empty_raster")

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// PaginatePNG slices a full-height raster into A4 pages and assembles
// them into a PDF, reporting the page count. Each slice fills one page
// top-aligned; a short final slice keeps its aspect ratio rather than
// stretching.
func PaginatePNG(raster []byte) ([]byte, int, error) {
	img, err := png.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, 0, fmt.Errorf("decoding raster: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, 0, ErrEmptyRaster
	}
	cropper, ok := img.(subImager)
	if !ok {
		return nil, 0, fmt.Errorf("raster format %T does not support slicing", img)
	}

	// page height in raster pixels, scaled to the raster's actual width
	sliceHeight := bounds.Dx() * PageHeightPx / PageWidthPx

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	pages := 0
	for page, top := 0, bounds.Min.Y; top < bounds.Max.Y; page, top = page+1, top+sliceHeight {
		bottom := top + sliceHeight
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}
		slice := cropper.SubImage(image.Rect(bounds.Min.X, top, bounds.Max.X, bottom))

		var buf bytes.Buffer
		if err := png.Encode(&buf, slice); err != nil {
			return nil, 0, fmt.Errorf("encoding page %d: %w", page+1, err)
		}

		name := fmt.Sprintf("page-%d", page+1)
		doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)

		heightMM := pageWidthMM * float64(bottom-top) / float64(bounds.Dx())
		if heightMM > pageHeightMM {
			heightMM = pageHeightMM
		}

		doc.AddPage()
		doc.ImageOptions(name, 0, 0, pageWidthMM, heightMM, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pages++
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, 0, fmt.Errorf("writing pdf: %w", err)
	}
	return out.Bytes(), pages, nil
}

// PageCount reports how many A4 pages a raster of the given pixel
// height needs.
func PageCount(rasterWidth, rasterHeight int) int {
	if rasterWidth <= 0 || rasterHeight <= 0 {
		return 0
	}
	sliceHeight := rasterWidth * PageHeightPx / PageWidthPx
	return (rasterHeight + sliceHeight - 1) / sliceHeight
}
